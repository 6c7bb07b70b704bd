// Package app coordinates the per-user collections: every mutation is
// persisted first, then every dependent view is re-derived before control
// returns to the caller.
package app

import (
	"context"
	"errors"

	"tableflip.dev/omni/pkg/note"
	"tableflip.dev/omni/pkg/profile"
	"tableflip.dev/omni/pkg/session"
	"tableflip.dev/omni/pkg/store"
	"tableflip.dev/omni/pkg/todo"
	"time"
)

var (
	ErrNotLoggedIn    = errors.New("app: not logged in")
	ErrNotFound       = errors.New("app: not found")
	ErrSessionChanged = errors.New("app: session changed, aborting")
)

// Service wraps persistence, the credential store and the session so CLIs
// and UIs share one mutation path.
type Service struct {
	Persistence store.Persistence
	Profiles    *profile.Store
	Session     *session.Session

	// Month is the displayed calendar month; zero means the current one.
	Month time.Time
	// DetailDay is the open day-detail date key, empty when closed.
	DetailDay string

	// Views holds the derived views, rebuilt by Refresh after every
	// mutation.
	Views Views

	user      string
	notes     []*note.Note
	todos     []*todo.Todo
	editingID string
}

// Open resolves the active session and loads that user's collections.
func (s *Service) Open(ctx context.Context) error {
	user, ok := s.Session.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	if _, err := s.Profiles.Get(user); err != nil {
		return err
	}
	s.user = user
	s.load()
	return nil
}

// Login authenticates a username, auto-registering it on first use. The
// second return reports whether a new profile was created.
func (s *Service) Login(ctx context.Context, username, password string) (*profile.Profile, bool, error) {
	p, err := s.Profiles.Login(username, password)
	registered := false
	if errors.Is(err, profile.ErrUnknownUser) {
		p, err = s.Profiles.Register(username, password)
		registered = true
	}
	if err != nil {
		return nil, false, err
	}
	if err := s.Session.Start(p.Username); err != nil {
		return nil, false, err
	}
	s.user = p.Username
	s.load()
	return p, registered, nil
}

// Logout clears the session pointer and drops the loaded collections.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.Session.End(); err != nil {
		return err
	}
	s.user = ""
	s.notes = nil
	s.todos = nil
	s.editingID = ""
	s.DetailDay = ""
	s.Views = Views{}
	return nil
}

// User returns the active username.
func (s *Service) User() string {
	return s.user
}

func (s *Service) load() {
	data, _ := s.Persistence.Get(store.KeyNotes, s.user)
	s.notes = note.Decode(data)
	data, _ = s.Persistence.Get(store.KeyTodos, s.user)
	s.todos = todo.Decode(data)
	s.editingID = ""
	s.Refresh()
}

// ChangePassword verifies the old password and stores the new hash. The
// digest may resolve after the session moved on (the original host yields
// during hashing), so the active session is re-validated and the write is
// aborted if it no longer matches.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	if current, ok := s.Session.Current(); !ok || current != s.user {
		return ErrSessionChanged
	}
	return s.Profiles.ChangePassword(s.user, oldPassword, newPassword)
}

// Rename moves the profile and every per-user key to a new username, then
// repoints the session.
func (s *Service) Rename(ctx context.Context, newName string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	newName = profile.Normalize(newName)
	if err := s.Profiles.Rename(s.user, newName); err != nil {
		return err
	}
	if err := s.Session.Start(newName); err != nil {
		return err
	}
	s.user = newName
	return nil
}

// SetIcon updates the active profile's icon.
func (s *Service) SetIcon(ctx context.Context, icon string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	return s.Profiles.SetIcon(s.user, icon)
}

// DeleteAccount verifies the password, then removes the active profile and
// all of its data and logs out.
func (s *Service) DeleteAccount(ctx context.Context, password string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	if _, err := s.Profiles.Login(s.user, password); err != nil {
		return err
	}
	if err := s.Profiles.Delete(s.user); err != nil {
		return err
	}
	return s.Logout(ctx)
}

// DeleteAccounts bulk-deletes profiles from the login screen. Unknown
// usernames are skipped. If the active session points at a deleted user it
// is cleared.
func (s *Service) DeleteAccounts(ctx context.Context, usernames ...string) error {
	if err := s.Profiles.Delete(usernames...); err != nil {
		return err
	}
	current, ok := s.Session.Current()
	if !ok {
		return nil
	}
	for _, u := range usernames {
		if profile.Normalize(u) == current {
			return s.Logout(ctx)
		}
	}
	return nil
}
