package app

import (
	"context"
	"time"

	"tableflip.dev/omni/pkg/bundle"
)

// Export serializes the active user's complete data set and returns the
// document with the conventional backup file name.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	if s.user == "" {
		return nil, "", ErrNotLoggedIn
	}
	c := &bundle.Codec{Persistence: s.Persistence, Profiles: s.Profiles}
	doc, err := c.Export(s.user)
	if err != nil {
		return nil, "", err
	}
	return doc, bundle.Filename(s.user, time.Now()), nil
}

// Import restores a backup document into the active user's keys, then
// reloads the collections so every view reflects the imported data.
func (s *Service) Import(ctx context.Context, doc []byte) (int, error) {
	if s.user == "" {
		return 0, ErrNotLoggedIn
	}
	c := &bundle.Codec{Persistence: s.Persistence, Profiles: s.Profiles}
	n, err := c.Import(s.user, doc)
	if n > 0 {
		s.load()
	}
	return n, err
}
