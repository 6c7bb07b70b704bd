package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/commands/options"
	"tableflip.dev/omni/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <task id>",
		Aliases: []string{"done", "complete"},
		Short:   "Flip a task between pending and completed",
		Example: `
omni toggle 171dff69f8b99dca
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := toggle.Toggle{
				ID:      io.ID,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
