package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/commands/options"
	"tableflip.dev/omni/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.ConfirmOptions{}
	note := false

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a task or note",
		Example: `
omni remove 171dff69f8b99dca
omni remove --note 171dff69f8b99dca --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:        io.ID,
				Note:      note,
				Confirmed: co.Yes,
				Service:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&note, "note", "n", false, "Delete a note instead of a task.")
	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
