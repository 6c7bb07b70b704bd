// Package export provides the runner logic for writing backups.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/omni/pkg/app"
)

// Export writes the active user's backup document. Output selects a
// directory or an exact file path; with neither, the conventional file
// name is written to the working directory.
type Export struct {
	Output string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	doc, name, err := n.Service.Export(ctx)
	if err != nil {
		return err
	}

	path := name
	if n.Output != "" {
		if info, err := os.Stat(n.Output); err == nil && info.IsDir() {
			path = filepath.Join(n.Output, name)
		} else {
			path = n.Output
		}
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
