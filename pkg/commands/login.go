package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/commands/options"
	"tableflip.dev/omni/pkg/runner/login"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addLogin(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Open a profile session",
		Long: base.Wrap80("Login opens a session for a profile. The first login with a " +
			"new username creates the profile. Usernames are case-insensitive."),
		Example: `
omni login alice -p hunter2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				co.Username = args[0]
			}
			if co.Username == "" {
				return errors.New("requires a username")
			}
			if co.Password == "" {
				return errors.New("requires a password")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := login.Login{
				Username: co.Username,
				Password: co.Password,
				Service:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCredentialArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
