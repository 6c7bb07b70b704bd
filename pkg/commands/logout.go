package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Close the active session",
		Example: `
omni logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			_ = s.Open(context.Background())
			r := logout.Logout{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
