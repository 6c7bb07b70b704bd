// Package bundle encodes a user's complete data set as a portable JSON
// document and restores it again. Values travel as the raw stored strings,
// so a bundle round-trips byte for byte even when a collection blob is
// malformed.
package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/omni/pkg/profile"
	"tableflip.dev/omni/pkg/store"
	"tableflip.dev/omni/pkg/timeutil"
)

var (
	// ErrNoData reports an export for a user with nothing stored.
	ErrNoData = errors.New("bundle: no data to export")
	// ErrFormat reports a document that is not a JSON object.
	ErrFormat = errors.New("bundle: not a backup document")
	// ErrNoValidData reports a document with no recognized keys. Nothing is
	// written when this is returned.
	ErrNoValidData = errors.New("bundle: no valid data in backup")
)

// Meta carries the non-data extras included in a backup.
type Meta struct {
	Icon string `json:"icon,omitempty"`
}

// Codec exports and imports per-user bundles.
type Codec struct {
	Persistence store.Persistence
	Profiles    *profile.Store
}

// Filename returns the conventional backup file name for a user at a
// moment in time.
func Filename(username string, now time.Time) string {
	return fmt.Sprintf("omni_backup_%s_%s.json", username, timeutil.DayKey(now))
}

// Export collects every stored per-user key plus the profile icon into an
// indented JSON document.
func (c *Codec) Export(username string) ([]byte, error) {
	doc := map[string]any{}
	for _, key := range store.UserKeys() {
		data, ok := c.Persistence.Get(key, username)
		if !ok {
			continue
		}
		doc[string(key)] = string(data)
	}
	if len(doc) == 0 {
		return nil, ErrNoData
	}

	if p, err := c.Profiles.Get(username); err == nil && p.Icon != "" {
		doc["profile"] = Meta{Icon: p.Icon}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("bundle: encode backup: %w", err)
	}
	return out, nil
}

// Import restores a backup document into the user's keys and returns how
// many data keys were written. Each recognized key is restored
// independently, so one bad entry never blocks the rest, but a document
// with zero recognized keys is rejected before anything is written.
func (c *Codec) Import(username string, doc []byte) (int, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return 0, ErrFormat
	}

	type entry struct {
		key  store.Key
		blob []byte
	}
	var entries []entry
	for _, key := range store.UserKeys() {
		msg, ok := raw[string(key)]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(msg, &value); err != nil {
			continue
		}
		entries = append(entries, entry{key: key, blob: []byte(value)})
	}
	if len(entries) == 0 {
		return 0, ErrNoValidData
	}

	written := 0
	for _, e := range entries {
		if err := c.Persistence.Set(e.key, username, e.blob); err != nil {
			return written, err
		}
		written++
	}

	if msg, ok := raw["profile"]; ok {
		var meta Meta
		if err := json.Unmarshal(msg, &meta); err == nil && meta.Icon != "" {
			if err := c.Profiles.SetIcon(username, meta.Icon); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}
