package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/omni/pkg/calendar"
	"tableflip.dev/omni/pkg/todo"
	uical "tableflip.dev/omni/pkg/ui/calendar"
)

// Calendar prints the month grid with deadline days highlighted.
func (pp *PrettyPrint) Calendar(month time.Time, cells []calendar.Cell, selected string) {
	fmt.Println(uical.Render(month, cells, selected, uical.DefaultOptions()))
	fmt.Println("")
}

// DayDetail prints the tasks due on one day.
func (pp *PrettyPrint) DayDetail(day string, tasks ...*todo.Todo) {
	pp.Title(day)
	pp.Todos(tasks...)
}

// Dashboard prints the landing view: counters, today's agenda and the
// month grid.
func (pp *PrettyPrint) Dashboard(month time.Time, cells []calendar.Cell, pending, completed, notes int, agenda ...*todo.Todo) {
	pp.Summary(pending, completed, notes)

	if len(agenda) > 0 {
		t := color.New(color.Bold, color.Underline)
		if pp.ShowID {
			_, _ = t.Print(spacing)
		}
		_, _ = t.Println("Today")
		pp.Todos(agenda...)
	}

	pp.Calendar(month, cells, "")
}
