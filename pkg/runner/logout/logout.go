// Package logout provides the runner logic for closing the session.
package logout

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/omni/pkg/app"
)

// Logout clears the active session pointer. Profile data is untouched.
type Logout struct {
	Service *app.Service
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not logout, no service")
	}
	user := n.Service.User()
	if err := n.Service.Logout(ctx); err != nil {
		return err
	}
	if user == "" {
		fmt.Println("logged out")
		return nil
	}
	fmt.Printf("logged out %s\n", user)
	return nil
}
