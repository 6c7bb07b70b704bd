// Package toggle provides the runner logic for completing tasks.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/printers"
)

// Toggle flips the completed flag on a task.
type Toggle struct {
	ID string

	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}

	t, err := n.Service.ToggleTodo(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if t.Completed {
		pp.Title("completed")
	} else {
		pp.Title("reopened")
	}
	pp.Todos(n.Service.Views.Todos...)
	return nil
}
