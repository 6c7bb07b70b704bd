package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/commands/options"
	"tableflip.dev/omni/pkg/runner/add"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DueOptions{}
	io := &options.IDOptions{}
	raw := ""

	cmd := &cobra.Command{
		Use:     "add <task>",
		Aliases: []string{"todo"},
		Short:   "Add a task",
		Long: base.Wrap80("Add creates a task for the active profile. Hashtags in the text " +
			"become tags and are stripped from the task."),
		Example: `
omni add buy milk #errand --due 2026-02-28
omni add water plants --day 2026-03-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			raw = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := add.Add{
				ShowID:  io.ShowID,
				Raw:     raw,
				Due:     do.Due,
				Day:     do.Day,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDueArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
