// Package importer provides the runner logic for restoring backups.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/omni/pkg/app"
)

// Import restores a backup document into the active user's data. Keys
// present in the file overwrite the stored ones; keys absent from the
// file are left alone.
type Import struct {
	Path string

	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}

	doc, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}
	count, err := n.Service.Import(ctx, doc)
	if err != nil {
		return err
	}
	fmt.Printf("restored %d keys from %s\n", count, n.Path)
	return nil
}
