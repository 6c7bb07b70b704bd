// Package session tracks the active username between invocations, plus the
// view selections that deliberately never reach per-user storage.
package session

import (
	"strings"

	"tableflip.dev/omni/pkg/search"
	"tableflip.dev/omni/pkg/store"
)

// Session is the pointer to the active profile. It is persisted under a
// global storage name, independent of the profile list itself.
type Session struct {
	Persistence store.Persistence

	// Filter is the active todo-list filter for this invocation.
	Filter string
	// Order is the todo sort selection. Session-only by design.
	Order search.Order
}

// Current returns the active username, if any.
func (s *Session) Current() (string, bool) {
	data, ok := s.Persistence.GetGlobal(store.GlobalSession)
	if !ok {
		return "", false
	}
	user := strings.TrimSpace(string(data))
	if user == "" {
		return "", false
	}
	return user, true
}

// Start points the session at a username.
func (s *Session) Start(username string) error {
	return s.Persistence.SetGlobal(store.GlobalSession, []byte(username))
}

// End clears the session pointer. Logging out never touches the profile
// list or any per-user data.
func (s *Session) End() error {
	return s.Persistence.RemoveGlobal(store.GlobalSession)
}
