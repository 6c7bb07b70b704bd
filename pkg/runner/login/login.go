// Package login provides the runner logic for opening a profile session.
package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/omni/pkg/app"
)

// Login authenticates a username, creating the profile on first use.
type Login struct {
	Username string
	Password string

	Service *app.Service
}

func (n *Login) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not login, no service")
	}

	p, registered, err := n.Service.Login(ctx, n.Username, n.Password)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	if registered {
		fmt.Printf("%s welcome, %s\n", p.Icon, p.Username)
		_, _ = f.Println("new profile created")
		return nil
	}
	fmt.Printf("%s welcome back, %s\n", p.Icon, p.Username)
	return nil
}
