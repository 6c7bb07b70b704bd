package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/runner/prefs"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addPrefs(topLevel *cobra.Command) {
	accent := ""
	fontsize := 0
	theme := ""
	var layout []string
	var hidden []string
	reset := false

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change display preferences",
		Long: base.Wrap80("Prefs shows the display preferences, applying any flags first. " +
			"Accent, font size, layout and hidden widgets are stored per profile; " +
			"the theme is shared by every profile."),
		Example: `
omni prefs
omni prefs --accent "#ff8800" --fontsize 18
omni prefs --theme light
omni prefs --reset
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := prefs.Prefs{
				Accent:   accent,
				FontSize: fontsize,
				Theme:    theme,
				Layout:   layout,
				Hidden:   hidden,
				Reset:    reset,
				Service:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&accent, "accent", "", "Accent color, any CSS color string.")
	cmd.Flags().IntVar(&fontsize, "fontsize", 0, "Font size in pixels.")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme, 'dark' or 'light'.")
	cmd.Flags().StringSliceVar(&layout, "layout", nil, "Widget order, comma separated.")
	cmd.Flags().StringSliceVar(&hidden, "hidden", nil, "Hidden widgets, comma separated.")
	cmd.Flags().BoolVar(&reset, "reset", false, "Restore theme, accent and font size defaults.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
