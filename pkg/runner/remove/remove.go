// Package remove provides the runner logic for deleting tasks and notes.
package remove

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/printers"
)

// Remove deletes a task, or a note when Note is set. Deletion asks for
// confirmation on stdin unless Confirmed is set.
type Remove struct {
	ID        string
	Note      bool
	Confirmed bool

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	if !n.Confirmed {
		fmt.Printf("delete %s? [y/N] ", n.ID)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(line)) != "y" {
			fmt.Println("aborted")
			return nil
		}
	}

	if n.Note {
		if err := n.Service.DeleteNote(ctx, n.ID); err != nil {
			return err
		}
	} else {
		if err := n.Service.DeleteTodo(ctx, n.ID); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if n.Note {
		notes := n.Service.Notes("")
		pp.TitleWithCount("notes", len(notes))
		pp.Notes(notes...)
		return nil
	}
	pp.TitleWithCount("todos", len(n.Service.Views.Todos))
	pp.Todos(n.Service.Views.Todos...)
	return nil
}
