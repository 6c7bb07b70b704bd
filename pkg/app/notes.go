package app

import (
	"context"

	"tableflip.dev/omni/pkg/note"
	"tableflip.dev/omni/pkg/store"
)

func (s *Service) saveNotes(candidate []*note.Note) error {
	data, err := note.Encode(candidate)
	if err != nil {
		return err
	}
	if err := s.Persistence.Set(store.KeyNotes, s.user, data); err != nil {
		return err
	}
	s.notes = candidate
	s.Refresh()
	return nil
}

// SaveNote creates a note, or updates the one referenced by the active
// edit state. A successful save always clears the edit state.
func (s *Service) SaveNote(ctx context.Context, title, content string) (*note.Note, error) {
	if s.user == "" {
		return nil, ErrNotLoggedIn
	}

	if s.editingID != "" {
		for i, n := range s.notes {
			if n.ID != s.editingID {
				continue
			}
			updated := *n
			if err := updated.Update(title, content); err != nil {
				return nil, err
			}
			candidate := append([]*note.Note{}, s.notes...)
			candidate[i] = &updated
			if err := s.saveNotes(candidate); err != nil {
				return nil, err
			}
			s.editingID = ""
			return &updated, nil
		}
		// The edited note is gone; fall through and create instead.
		s.editingID = ""
	}

	n, err := note.New(title, content)
	if err != nil {
		return nil, err
	}
	if err := s.saveNotes(append(append([]*note.Note{}, s.notes...), n)); err != nil {
		return nil, err
	}
	return n, nil
}

// EditNote points the edit state at a note and returns it for prefilling.
func (s *Service) EditNote(id string) (*note.Note, error) {
	for _, n := range s.notes {
		if n.ID == id {
			s.editingID = id
			return n, nil
		}
	}
	return nil, ErrNotFound
}

// EditingID returns the note id the edit state references, if any.
func (s *Service) EditingID() string {
	return s.editingID
}

// DeleteNote removes a note; deleting the note under edit clears the edit
// state. Confirmation is the caller's responsibility.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	candidate := make([]*note.Note, 0, len(s.notes))
	found := false
	for _, n := range s.notes {
		if n.ID == id {
			found = true
			continue
		}
		candidate = append(candidate, n)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.saveNotes(candidate); err != nil {
		return err
	}
	if s.editingID == id {
		s.editingID = ""
	}
	return nil
}
