package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/runner/cal"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addCalendar(topLevel *cobra.Command) {
	month := ""
	day := ""
	dashboard := false

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show the deadline calendar",
		Long: base.Wrap80("Cal shows a month grid with deadline days highlighted. Days " +
			"from the adjacent months pad the grid to whole weeks. Use --day to " +
			"list one day's tasks."),
		Example: `
omni cal
omni cal --month 2026-03
omni cal --day 2026-03-09
omni cal --dashboard
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := cal.Cal{
				Month:     month,
				Day:       day,
				Dashboard: dashboard,
				Service:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to display as yyyy-mm.")
	cmd.Flags().StringVarP(&day, "day", "d", "", "List tasks due on a day, yyyy-mm-dd.")
	cmd.Flags().BoolVar(&dashboard, "dashboard", false, "Include counters and today's agenda.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
