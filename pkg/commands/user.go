package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/runner/users"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addUser(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users", "profile"},
		Short:   "Manage profiles",
		Example: `
omni user list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addUserList(cmd)
	addUserRename(cmd)
	addUserPasswd(cmd)
	addUserIcon(cmd)
	addUserDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addUserList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			_ = s.Open(context.Background())
			r := users.List{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(cmd)
}

func addUserRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <new username>",
		Short: "Rename the active profile, keeping its data",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires the new username")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := users.Rename{NewName: args[0], Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(cmd)
}

func addUserPasswd(topLevel *cobra.Command) {
	oldPassword := ""
	newPassword := ""

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the active profile's password",
		Example: `
omni user passwd --old hunter2 --new hunter3
`,
		Args: func(_ *cobra.Command, _ []string) error {
			if oldPassword == "" || newPassword == "" {
				return errors.New("requires --old and --new")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			r := users.Passwd{
				OldPassword: oldPassword,
				NewPassword: newPassword,
				Service:     s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&oldPassword, "old", "", "Current password.")
	cmd.Flags().StringVar(&newPassword, "new", "", "New password.")
	topLevel.AddCommand(cmd)
}

func addUserIcon(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "icon [icon]",
		Short: "Set the profile icon, or show the picker",
		Example: `
omni user icon
omni user icon 🦊
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(context.Background())
			if err != nil {
				return err
			}
			icon := ""
			if len(args) > 0 {
				icon = args[0]
			}
			r := users.Icon{Icon: icon, Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(cmd)
}

func addUserDelete(topLevel *cobra.Command) {
	password := ""

	cmd := &cobra.Command{
		Use:     "delete [username...]",
		Aliases: []string{"rm"},
		Short:   "Delete profiles and all of their data",
		Long: base.Wrap80("With no arguments, delete deletes the active profile after " +
			"verifying its password. With usernames it bulk-deletes those profiles " +
			"without a password check, the way the login screen manages accounts; " +
			"unknown usernames are skipped."),
		Example: `
omni user delete -p hunter2
omni user delete alice bob
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 && password == "" {
				return errors.New("requires the password or usernames")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *app.Service
			var err error
			if len(args) > 0 {
				// Bulk delete works from the login screen, no session needed.
				s, err = newService()
				if err == nil {
					_ = s.Open(context.Background())
				}
			} else {
				s, err = openService(context.Background())
			}
			if err != nil {
				return err
			}
			r := users.Delete{
				Password:  password,
				Usernames: args,
				Service:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Profile password.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
