package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "omni",
		Short: base.Wrap80("Notes, todos and a calendar for every profile on this machine."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addLogout(topLevel)
	addAdd(topLevel)
	addNote(topLevel)
	addGet(topLevel)
	addToggle(topLevel)
	addRemove(topLevel)
	addCalendar(topLevel)
	addUser(topLevel)
	addPrefs(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}
