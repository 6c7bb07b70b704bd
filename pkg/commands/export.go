package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/runner/export"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addExport(topLevel *cobra.Command) {
	outPath := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of the active profile's data",
		Long: base.Wrap80("Export writes every stored key for the active profile, plus the " +
			"profile icon, as one JSON document."),
		Example: `
omni export
omni export -o ~/backups
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := export.Export{Output: outPath, Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Directory or file to write to.")
	topLevel.AddCommand(cmd)
}
