// Package cal provides the runner logic for the calendar views.
package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/printers"
)

const layoutMonth = "2006-01"

// Cal prints the month grid, or one day's tasks when Day is set.
// Month selects the displayed month as yyyy-mm, empty for the current
// one. Dashboard adds the counters and today's agenda above the grid.
type Cal struct {
	Month     string
	Day       string
	Dashboard bool

	Service *app.Service
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	if n.Month != "" {
		month, err := time.ParseInLocation(layoutMonth, n.Month, time.Local)
		if err != nil {
			return fmt.Errorf("bad month %q, want yyyy-mm", n.Month)
		}
		n.Service.Month = month
		n.Service.Refresh()
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Day != "" {
		tasks, err := n.Service.OpenDay(n.Day)
		if err != nil {
			return err
		}
		pp.DayDetail(n.Day, tasks...)
		return nil
	}

	month := n.Service.Month
	if month.IsZero() {
		month = time.Now()
	}
	v := n.Service.Views
	if n.Dashboard {
		pp.Dashboard(month, v.Grid, v.Pending, v.Completed, v.NoteCount, v.Agenda...)
		return nil
	}
	pp.Calendar(month, v.Grid, n.Service.DetailDay)
	return nil
}
