// Package note provides the runner logic for creating and editing notes.
package note

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/printers"
)

// Note saves a note. With Edit set, the referenced note is rewritten in
// place; otherwise a new note is created. An empty title falls back to
// the default. With Delete set, the referenced note is removed instead.
type Note struct {
	ShowID  bool
	Title   string
	Content string
	Edit    string
	Delete  string
	Filter  string

	Service *app.Service
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not note, no service")
	}

	switch {
	case n.Delete != "":
		if err := n.Service.DeleteNote(ctx, n.Delete); err != nil {
			return err
		}
	case n.Edit != "":
		if _, err := n.Service.EditNote(n.Edit); err != nil {
			return err
		}
		if _, err := n.Service.SaveNote(ctx, n.Title, n.Content); err != nil {
			return err
		}
	case n.Content != "":
		if _, err := n.Service.SaveNote(ctx, n.Title, n.Content); err != nil {
			return err
		}
	}

	notes := n.Service.Notes(n.Filter)
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("notes", len(notes))
	pp.Notes(notes...)
	return nil
}
