package commands

import (
	"context"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/profile"
	"tableflip.dev/omni/pkg/session"
	"tableflip.dev/omni/pkg/store"
)

// newService wires the store-backed service used by every command.
func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{
		Persistence: p,
		Profiles:    &profile.Store{Persistence: p},
		Session:     &session.Session{Persistence: p},
	}, nil
}

// openService additionally resolves the active session, failing when no
// profile is logged in.
func openService(ctx context.Context) (*app.Service, error) {
	s, err := newService()
	if err != nil {
		return nil, err
	}
	if err := s.Open(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
