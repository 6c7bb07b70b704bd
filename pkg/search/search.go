// Package search filters and orders notes and todos for display.
package search

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/omni/pkg/note"
	"tableflip.dev/omni/pkg/todo"
)

// Order selects how the todo list is sorted. The selection lives in the
// session only, it is never persisted.
type Order string

const (
	// OrderNewest sorts by creation time, newest first.
	OrderNewest Order = "newest"
	// OrderDeadline sorts dated todos ascending by deadline; undated todos
	// sort last, keeping their input order.
	OrderDeadline Order = "deadline"
)

// ParseOrder converts a flag value to an Order.
func ParseOrder(raw string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OrderNewest:
		return OrderNewest, nil
	case OrderDeadline:
		return OrderDeadline, nil
	}
	return "", fmt.Errorf("search: unknown sort order %q", raw)
}

// Notes filters by case-insensitive substring on title or content and
// returns the matches newest first. Filtering never changes the ordering.
func Notes(notes []*note.Note, filter string) []*note.Note {
	needle := strings.ToLower(filter)
	out := make([]*note.Note, 0, len(notes))
	for _, n := range notes {
		if needle == "" ||
			strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Todos filters the todo list. An empty filter matches everything. A filter
// starting with '#' matches tags by case-insensitive prefix on the
// remainder; any other filter matches the task or any tag by substring.
func Todos(todos []*todo.Todo, filter string) []*todo.Todo {
	out := make([]*todo.Todo, 0, len(todos))
	for _, t := range todos {
		if matches(t, filter) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t *todo.Todo, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	if strings.Contains(strings.ToLower(t.Task), needle) {
		return true
	}
	if tag, ok := strings.CutPrefix(needle, "#"); ok {
		for _, have := range t.Tags {
			if strings.HasPrefix(strings.ToLower(have), tag) {
				return true
			}
		}
		return false
	}
	for _, have := range t.Tags {
		if strings.Contains(strings.ToLower(have), needle) {
			return true
		}
	}
	return false
}

// SortTodos returns a sorted copy in the requested order.
func SortTodos(todos []*todo.Todo, order Order) []*todo.Todo {
	out := make([]*todo.Todo, len(todos))
	copy(out, todos)

	switch order {
	case OrderDeadline:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			switch {
			case a.Deadline == "":
				return false
			case b.Deadline == "":
				return true
			case a.Deadline != b.Deadline:
				// Zero-padded date keys order correctly as strings.
				return a.Deadline < b.Deadline
			default:
				return a.CreatedAt.After(b.CreatedAt)
			}
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
