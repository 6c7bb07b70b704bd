package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/runner/importer"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "import <file>",
		Aliases: []string{"restore"},
		Short:   "Restore a backup into the active profile",
		Long: base.Wrap80("Import reads a backup document and overwrites the keys it " +
			"contains. Keys absent from the file are left alone. A file with no " +
			"recognizable data is rejected before anything is written."),
		Example: `
omni import omni_backup_alice_2026-02-28.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := importer.Import{Path: args[0], Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
