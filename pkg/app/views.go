package app

import (
	"time"

	"tableflip.dev/omni/pkg/calendar"
	"tableflip.dev/omni/pkg/note"
	"tableflip.dev/omni/pkg/search"
	"tableflip.dev/omni/pkg/timeutil"
	"tableflip.dev/omni/pkg/todo"
)

// Views are the derived read models: the filtered and sorted todo list,
// the dashboard counters and agenda, the calendar index and grid, and the
// open day detail. They are rebuilt as a unit, never patched.
type Views struct {
	Todos []*todo.Todo // list view under the active filter and sort

	NoteCount int
	Pending   int
	Completed int
	Agenda    []*todo.Todo // due today

	Index map[string][]*todo.Todo
	Grid  []calendar.Cell

	Detail []*todo.Todo // tasks for DetailDay, nil when no day is open
}

// Refresh re-derives every view from the loaded collections. Mutation
// paths call this after — and only after — a confirmed write.
func (s *Service) Refresh() {
	now := time.Now()

	v := Views{
		Todos:     search.SortTodos(search.Todos(s.todos, s.Session.Filter), s.Session.Order),
		NoteCount: len(s.notes),
		Index:     calendar.Index(s.todos),
	}

	for _, t := range s.todos {
		if t.Completed {
			v.Completed++
		} else {
			v.Pending++
		}
	}

	today := timeutil.DayKey(now)
	for _, t := range s.todos {
		if t.Deadline == today {
			v.Agenda = append(v.Agenda, t)
		}
	}

	month := s.Month
	if month.IsZero() {
		month = now
	}
	v.Grid = calendar.Grid(month, v.Index, now)

	if s.DetailDay != "" {
		v.Detail = v.Index[s.DetailDay]
	}

	s.Views = v
}

// Notes returns the note list view for a filter, newest first.
func (s *Service) Notes(filter string) []*note.Note {
	return search.Notes(s.notes, filter)
}

// OpenDay opens the day-detail view for a date key and returns its tasks.
func (s *Service) OpenDay(day string) ([]*todo.Todo, error) {
	if _, err := timeutil.ParseDay(day); err != nil {
		return nil, todo.ErrBadDeadline
	}
	s.DetailDay = day
	s.Refresh()
	return s.Views.Detail, nil
}

// CloseDay closes the day-detail view.
func (s *Service) CloseDay() {
	s.DetailDay = ""
	s.Refresh()
}
