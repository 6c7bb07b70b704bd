package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/commands/options"
	"tableflip.dev/omni/pkg/runner/get"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	notes := false

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List tasks or notes",
		Long: base.Wrap80("Get lists the active profile's tasks, or notes with --notes. " +
			"Tasks sort newest first by default; --sort deadline puts dated tasks " +
			"first in date order with undated tasks at the end."),
		Example: `
omni get
omni get --filter "#errand" --sort deadline
omni get --notes --filter milk
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := get.Get{
				ShowID:  io.ShowID,
				Notes:   notes,
				Filter:  fo.Filter,
				Sort:    fo.Sort,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&notes, "notes", "n", false, "List notes instead of tasks.")
	options.AddFilterArgs(cmd, fo)
	options.AddSortArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
