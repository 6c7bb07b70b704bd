package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/omni/pkg/store"
)

// Store manages the global profile list and is the only component allowed
// to touch the per-user keys it guards (rename migration, deletion).
type Store struct {
	Persistence store.Persistence
}

// Normalize case-folds a username the way the store keys it.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// List loads every profile. Legacy records missing an icon are backfilled
// with the default icon and the rewrite is persisted immediately.
func (s *Store) List() ([]Profile, error) {
	data, ok := s.Persistence.GetGlobal(store.GlobalProfiles)
	if !ok || len(data) == 0 {
		return []Profile{}, nil
	}
	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("profile: decode profile list: %w", err)
	}

	migrated := false
	for i := range profiles {
		if profiles[i].Icon == "" {
			profiles[i].Icon = DefaultIcon
			migrated = true
		}
	}
	if migrated {
		if err := s.save(profiles); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (s *Store) save(profiles []Profile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("profile: encode profile list: %w", err)
	}
	if err := s.Persistence.SetGlobal(store.GlobalProfiles, data); err != nil {
		return err
	}
	return nil
}

// Get returns the profile for a username.
func (s *Store) Get(username string) (*Profile, error) {
	profiles, err := s.List()
	if err != nil {
		return nil, err
	}
	username = Normalize(username)
	for i := range profiles {
		if profiles[i].Username == username {
			p := profiles[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Register creates a profile with a hash of the password and a
// pseudo-random icon. The username must not already be taken.
func (s *Store) Register(username, password string) (*Profile, error) {
	username = Normalize(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredential
	}
	profiles, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Username == username {
			return nil, ErrDuplicateUser
		}
	}
	p := Profile{
		Username: username,
		Hash:     HashPassword(password),
		Icon:     RandomIcon(),
	}
	profiles = append(profiles, p)
	if err := s.save(profiles); err != nil {
		return nil, err
	}
	return &p, nil
}

// Login verifies the password against the stored hash by exact string
// equality of the hex digests.
func (s *Store) Login(username, password string) (*Profile, error) {
	username = Normalize(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredential
	}
	profiles, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Username != username {
			continue
		}
		if HashPassword(password) != profiles[i].Hash {
			return nil, ErrBadCredential
		}
		p := profiles[i]
		return &p, nil
	}
	return nil, ErrUnknownUser
}

// Rename changes a profile's username and migrates every per-user key to
// the new name. Both names are validated before the first write; the caller
// updates the session pointer afterwards.
func (s *Store) Rename(oldName, newName string) error {
	oldName = Normalize(oldName)
	newName = Normalize(newName)
	if newName == "" {
		return ErrMissingCredential
	}
	profiles, err := s.List()
	if err != nil {
		return err
	}
	idx := -1
	for i := range profiles {
		if profiles[i].Username == newName {
			return ErrDuplicateUser
		}
		if profiles[i].Username == oldName {
			idx = i
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	profiles[idx].Username = newName
	if err := s.save(profiles); err != nil {
		return err
	}
	return s.Persistence.MigrateUser(oldName, newName)
}

// ChangePassword verifies the old password before replacing the stored
// hash.
func (s *Store) ChangePassword(username, oldPassword, newPassword string) error {
	username = Normalize(username)
	if newPassword == "" {
		return ErrMissingCredential
	}
	profiles, err := s.List()
	if err != nil {
		return err
	}
	for i := range profiles {
		if profiles[i].Username != username {
			continue
		}
		if HashPassword(oldPassword) != profiles[i].Hash {
			return ErrBadCredential
		}
		profiles[i].Hash = HashPassword(newPassword)
		return s.save(profiles)
	}
	return ErrUnknownUser
}

// SetIcon updates the profile's display icon.
func (s *Store) SetIcon(username, icon string) error {
	username = Normalize(username)
	profiles, err := s.List()
	if err != nil {
		return err
	}
	for i := range profiles {
		if profiles[i].Username == username {
			profiles[i].Icon = icon
			return s.save(profiles)
		}
	}
	return ErrNotFound
}

// Delete removes the named profiles and purges their per-user keys.
// Unknown usernames are skipped, so the operation is idempotent.
func (s *Store) Delete(usernames ...string) error {
	profiles, err := s.List()
	if err != nil {
		return err
	}
	doomed := make(map[string]bool, len(usernames))
	for _, u := range usernames {
		doomed[Normalize(u)] = true
	}

	kept := profiles[:0]
	for _, p := range profiles {
		if doomed[p.Username] {
			if err := s.Persistence.PurgeUser(p.Username); err != nil {
				return err
			}
			continue
		}
		kept = append(kept, p)
	}
	return s.save(kept)
}
