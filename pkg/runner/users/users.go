// Package users provides the runner logic for profile management.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/omni/pkg/app"
	"tableflip.dev/omni/pkg/printers"
	"tableflip.dev/omni/pkg/profile"
)

// List prints every profile, marking the active one.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list users, no service")
	}
	profiles, err := n.Service.Profiles.List()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("profiles", len(profiles))
	pp.Profiles(n.Service.User(), profiles...)
	return nil
}

// Rename moves the active profile and all of its data to a new username.
type Rename struct {
	NewName string

	Service *app.Service
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename, no service")
	}
	old := n.Service.User()
	if err := n.Service.Rename(ctx, n.NewName); err != nil {
		return err
	}
	fmt.Printf("renamed %s to %s\n", old, n.Service.User())
	return nil
}

// Passwd replaces the active profile's password.
type Passwd struct {
	OldPassword string
	NewPassword string

	Service *app.Service
}

func (n *Passwd) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not change password, no service")
	}
	if err := n.Service.ChangePassword(ctx, n.OldPassword, n.NewPassword); err != nil {
		return err
	}
	fmt.Println("password updated")
	return nil
}

// Icon sets the active profile's icon, or prints the picker when no
// icon is given.
type Icon struct {
	Icon string

	Service *app.Service
}

func (n *Icon) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set icon, no service")
	}
	if n.Icon == "" {
		for i, icon := range profile.Icons {
			fmt.Printf("%s ", icon)
			if (i+1)%10 == 0 {
				fmt.Println("")
			}
		}
		fmt.Println("")
		return nil
	}
	if err := n.Service.SetIcon(ctx, n.Icon); err != nil {
		return err
	}
	fmt.Printf("icon set to %s\n", n.Icon)
	return nil
}

// Delete removes profiles and every piece of their data. Without
// usernames it deletes the active profile after verifying the password;
// with usernames it bulk-deletes, skipping unknown names.
type Delete struct {
	Password  string
	Usernames []string

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if len(n.Usernames) > 0 {
		if err := n.Service.DeleteAccounts(ctx, n.Usernames...); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", strings.Join(n.Usernames, ", "))
		return nil
	}
	user := n.Service.User()
	if err := n.Service.DeleteAccount(ctx, n.Password); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", user)
	return nil
}
