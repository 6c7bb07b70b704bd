package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/commands/options"
	"tableflip.dev/omni/pkg/runner/note"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addNote(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	title := ""
	edit := ""
	remove := ""
	content := ""

	cmd := &cobra.Command{
		Use:     "note [content]",
		Aliases: []string{"notes"},
		Short:   "Add or list notes",
		Long: base.Wrap80("Note saves a note for the active profile. Without content it " +
			"lists notes. Hashtags in the content become tags but the content " +
			"itself is stored untouched."),
		Example: `
omni note remember the milk #errand
omni note --title "Ideas" big plans here
omni note --edit 171dff69f8b99dca updated text
omni note --rm 171dff69f8b99dca
`,
		Args: func(cmd *cobra.Command, args []string) error {
			content = strings.Join(args, " ")
			if remove == "" && edit == "" && content == "" && title != "" {
				return errors.New("requires note content")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := note.Note{
				ShowID:  io.ShowID,
				Title:   title,
				Content: content,
				Edit:    edit,
				Delete:  remove,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title, defaults to Untitled Note.")
	cmd.Flags().StringVar(&edit, "edit", "", "Rewrite the note with this id.")
	cmd.Flags().StringVar(&remove, "rm", "", "Delete the note with this id.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
