// Package get provides the runner logic for listing tasks and notes.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/printers"
	"tableflip.dev/omni/pkg/search"
)

// Get lists the active user's tasks, or notes when Notes is set. The
// filter matches task text and tags; a #-prefixed filter matches tag
// prefixes only.
type Get struct {
	ShowID bool
	Notes  bool
	Filter string
	Sort   string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Notes {
		notes := n.Service.Notes(n.Filter)
		pp.TitleWithCount("notes", len(notes))
		pp.Notes(notes...)
		return nil
	}

	order, err := search.ParseOrder(n.Sort)
	if err != nil {
		return err
	}
	n.Service.Session.Filter = n.Filter
	n.Service.Session.Order = order
	n.Service.Refresh()

	pp.TitleWithCount("todos", len(n.Service.Views.Todos))
	pp.Todos(n.Service.Views.Todos...)
	return nil
}
