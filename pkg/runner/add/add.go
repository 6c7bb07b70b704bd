// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/printers"
)

// Add creates a task from raw text. Hashtags become lowercased tags and
// are stripped from the task text. Day targets the calendar-day entry
// point; Due sets a deadline on an inline add.
type Add struct {
	ShowID bool
	Raw    string
	Due    string
	Day    string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	var err error
	if n.Day != "" {
		_, err = n.Service.AddTodoForDay(ctx, n.Raw, n.Day)
	} else {
		_, err = n.Service.AddTodo(ctx, n.Raw, n.Due)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("todos", len(n.Service.Views.Todos))
	pp.Todos(n.Service.Views.Todos...)
	return nil
}
