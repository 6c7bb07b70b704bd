// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

// FilterOptions captures the list filter and sort selection.
type FilterOptions struct {
	Filter string
	Sort   string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"Filter by text or tag. Prefix with # to match tag prefixes only.")
}

func AddSortArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Sort, "sort", "s", "newest",
		"Sort order. One of 'newest' or 'deadline'.")
}

// DueOptions captures deadline flags for task creation.
type DueOptions struct {
	Due string
	Day string
}

func AddDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		`Specify a deadline, example: --due="2026-02-28".`)
	cmd.Flags().StringVar(&o.Day, "day", "",
		"Add from the calendar, setting the deadline and opening that day.")
}

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}

// CredentialOptions captures the username and password flags.
type CredentialOptions struct {
	Username string
	Password string
}

func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Username, "user", "u", "",
		"Profile username.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Profile password.")
}
