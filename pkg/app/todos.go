package app

import (
	"context"

	"tableflip.dev/omni/pkg/store"
	"tableflip.dev/omni/pkg/timeutil"
	"tableflip.dev/omni/pkg/todo"
)

// saveTodos persists a candidate collection and only then swaps it in and
// re-derives the views. On a storage failure the in-memory state is left
// exactly as it was.
func (s *Service) saveTodos(candidate []*todo.Todo) error {
	data, err := todo.Encode(candidate)
	if err != nil {
		return err
	}
	if err := s.Persistence.Set(store.KeyTodos, s.user, data); err != nil {
		return err
	}
	s.todos = candidate
	s.Refresh()
	return nil
}

// AddTodo creates a todo from the inline entry point.
func (s *Service) AddTodo(ctx context.Context, raw, deadline string) (*todo.Todo, error) {
	if s.user == "" {
		return nil, ErrNotLoggedIn
	}
	t, err := todo.New(raw, deadline)
	if err != nil {
		return nil, err
	}
	candidate := append(append([]*todo.Todo{}, s.todos...), t)
	if err := s.saveTodos(candidate); err != nil {
		return nil, err
	}
	return t, nil
}

// AddTodoForDay creates a todo from the calendar-day entry point. The
// record comes out identical to an inline add with that deadline, and the
// day-detail view for the date is opened so it reflects the new task.
func (s *Service) AddTodoForDay(ctx context.Context, raw, day string) (*todo.Todo, error) {
	if _, err := timeutil.ParseDay(day); err != nil {
		return nil, todo.ErrBadDeadline
	}
	s.DetailDay = day
	return s.AddTodo(ctx, raw, day)
}

// ToggleTodo flips the completed flag for the todo with the given id.
func (s *Service) ToggleTodo(ctx context.Context, id string) (*todo.Todo, error) {
	if s.user == "" {
		return nil, ErrNotLoggedIn
	}
	for i, t := range s.todos {
		if t.ID != id {
			continue
		}
		flipped := *t
		flipped.Completed = !t.Completed
		candidate := append([]*todo.Todo{}, s.todos...)
		candidate[i] = &flipped
		if err := s.saveTodos(candidate); err != nil {
			return nil, err
		}
		return &flipped, nil
	}
	return nil, ErrNotFound
}

// DeleteTodo removes the todo with the given id. Confirmation is the
// caller's responsibility.
func (s *Service) DeleteTodo(ctx context.Context, id string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	candidate := make([]*todo.Todo, 0, len(s.todos))
	found := false
	for _, t := range s.todos {
		if t.ID == id {
			found = true
			continue
		}
		candidate = append(candidate, t)
	}
	if !found {
		return ErrNotFound
	}
	return s.saveTodos(candidate)
}

// Todo returns the loaded todo with the given id.
func (s *Service) Todo(id string) (*todo.Todo, error) {
	for _, t := range s.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrNotFound
}
