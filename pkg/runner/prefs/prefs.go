// Package prefs provides the runner logic for display preferences.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/omni/pkg/app"
)

// Prefs shows the active preferences, applying any that are set first.
// Accent and font size are per user, theme is shared by every profile.
type Prefs struct {
	Accent   string
	FontSize int
	Theme    string
	Layout   []string
	Hidden   []string
	Reset    bool

	Service *app.Service
}

func (n *Prefs) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show preferences, no service")
	}

	if n.Reset {
		if err := n.Service.ResetPreferences(); err != nil {
			return err
		}
	}
	if n.Accent != "" {
		if err := n.Service.SetAccent(n.Accent); err != nil {
			return err
		}
	}
	if n.FontSize > 0 {
		if err := n.Service.SetFontSize(n.FontSize); err != nil {
			return err
		}
	}
	if n.Theme != "" {
		if err := n.Service.SetTheme(n.Theme); err != nil {
			return err
		}
	}
	if len(n.Layout) > 0 {
		if err := n.Service.SetLayout(n.Layout); err != nil {
			return err
		}
	}
	if len(n.Hidden) > 0 {
		if err := n.Service.SetHidden(n.Hidden); err != nil {
			return err
		}
	}

	f := color.New(color.Faint)
	fmt.Printf("theme     %s\n", n.Service.Theme())
	fmt.Printf("accent    %s\n", n.Service.Accent())
	fmt.Printf("fontsize  %d\n", n.Service.FontSize())
	if layout := n.Service.Layout(); len(layout) > 0 {
		fmt.Printf("layout    %s\n", strings.Join(layout, ", "))
	} else {
		_, _ = f.Println("layout    default")
	}
	if hidden := n.Service.Hidden(); len(hidden) > 0 {
		fmt.Printf("hidden    %s\n", strings.Join(hidden, ", "))
	}
	return nil
}
