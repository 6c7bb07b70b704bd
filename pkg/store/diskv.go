package store

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// prefix namespaces every physical key written by this application.
const prefix = "omni"

// Key is one of the fixed per-user data keys. Every per-user feature stores
// through exactly one of these.
type Key string

const (
	KeyNotes    Key = "notes"
	KeyTodos    Key = "todos"
	KeyLayout   Key = "layout"
	KeyHidden   Key = "hidden"
	KeyAccent   Key = "accent"
	KeyFontSize Key = "fontsize"
)

// UserKeys returns the complete per-user key set, the unit of rename
// migration, account deletion and export.
func UserKeys() []Key {
	return []Key{KeyNotes, KeyTodos, KeyLayout, KeyHidden, KeyAccent, KeyFontSize}
}

// Global storage names, not namespaced by user.
const (
	GlobalProfiles = "profiles"
	GlobalTheme    = "theme"
	GlobalSession  = "session"
)

// Persistence maps (key, username) pairs and a handful of global names to
// blobs. There is no transaction across keys; callers that need multi-key
// consistency sequence their writes.
type Persistence interface {
	Get(key Key, username string) ([]byte, bool)
	Set(key Key, username string, blob []byte) error
	Remove(key Key, username string) error

	GetGlobal(name string) ([]byte, bool)
	SetGlobal(name string, blob []byte) error
	RemoveGlobal(name string) error

	// MigrateUser copies then deletes every per-user key from oldName to
	// newName.
	MigrateUser(oldName, newName string) error
	// PurgeUser removes every per-user key for the username. Unknown
	// usernames are a no-op.
	PurgeUser(username string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key Key, username string) ([]byte, bool) {
	val, err := p.d.Read(userKey(key, username))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (p *persistence) Set(key Key, username string, blob []byte) error {
	if err := p.d.Write(userKey(key, username), blob); err != nil {
		return fmt.Errorf("store: write %s for %s: %w", key, username, err)
	}
	return nil
}

func (p *persistence) Remove(key Key, username string) error {
	if err := p.d.Erase(userKey(key, username)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("store: erase %s for %s: %w", key, username, err)
	}
	return nil
}

func (p *persistence) GetGlobal(name string) ([]byte, bool) {
	val, err := p.d.Read(globalKey(name))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (p *persistence) SetGlobal(name string, blob []byte) error {
	if err := p.d.Write(globalKey(name), blob); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}

func (p *persistence) RemoveGlobal(name string) error {
	if err := p.d.Erase(globalKey(name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("store: erase %s: %w", name, err)
	}
	return nil
}

func (p *persistence) MigrateUser(oldName, newName string) error {
	for _, key := range UserKeys() {
		data, ok := p.Get(key, oldName)
		if !ok {
			continue
		}
		if err := p.Set(key, newName, data); err != nil {
			return err
		}
		if err := p.Remove(key, oldName); err != nil {
			return err
		}
	}
	return nil
}

func (p *persistence) PurgeUser(username string) error {
	for _, key := range UserKeys() {
		if err := p.Remove(key, username); err != nil {
			return err
		}
	}
	return nil
}

// userKey builds the physical key omni-<key>-<user>. The username is hex
// encoded so arbitrary graphemes stay safe as a file name and never collide
// with the '-' separators.
func userKey(key Key, username string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, key, hex.EncodeToString([]byte(username)))
}

func globalKey(name string) string {
	return fmt.Sprintf("%s-%s", prefix, name)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
