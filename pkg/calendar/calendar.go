// Package calendar derives the day-index and month grid from the todo
// collection. It is pure: the renderer decides how cells look.
package calendar

import (
	"time"

	"tableflip.dev/omni/pkg/timeutil"
	"tableflip.dev/omni/pkg/todo"
)

// Index maps a YYYY-MM-DD deadline key to the todos due that day, in the
// order they appear in the collection.
func Index(todos []*todo.Todo) map[string][]*todo.Todo {
	idx := make(map[string][]*todo.Todo)
	for _, t := range todos {
		if t.Deadline == "" {
			continue
		}
		idx[t.Deadline] = append(idx[t.Deadline], t)
	}
	return idx
}

// Cell is one day slot in the month grid.
type Cell struct {
	Day      int    // day-of-month number shown in the cell
	Date     string // full YYYY-MM-DD key
	Adjacent bool   // trailing day of the previous or next month
	Today    bool
	Tasks    []*todo.Todo // todos due on this date
}

// Grid lays the month out as rows of seven cells starting on Sunday:
// leading cells from the previous month, every day of the month, then
// next-month cells padding the final row. The result length is always a
// multiple of seven. Today is flagged by exact date-key match against now.
func Grid(month time.Time, index map[string][]*todo.Todo, now time.Time) []Cell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday()) // Sunday == 0

	today := timeutil.DayKey(now)
	cells := make([]Cell, 0, lead+daysInMonth+6)

	appendDay := func(d time.Time, adjacent bool) {
		key := timeutil.DayKey(d)
		cells = append(cells, Cell{
			Day:      d.Day(),
			Date:     key,
			Adjacent: adjacent,
			Today:    key == today,
			Tasks:    index[key],
		})
	}

	for i := lead; i > 0; i-- {
		appendDay(first.AddDate(0, 0, -i), true)
	}
	for i := 0; i < daysInMonth; i++ {
		appendDay(first.AddDate(0, 0, i), false)
	}
	if trailing := (lead + daysInMonth) % 7; trailing != 0 {
		for i := 0; i < 7-trailing; i++ {
			appendDay(first.AddDate(0, 1, i), true)
		}
	}
	return cells
}
