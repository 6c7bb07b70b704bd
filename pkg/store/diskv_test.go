package store

import (
	"testing"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return p
}

func TestSetGetRemove(t *testing.T) {
	p := load(t)

	if _, ok := p.Get(KeyNotes, "alice"); ok {
		t.Fatalf("expected absent before write")
	}
	if err := p.Set(KeyNotes, "alice", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := p.Get(KeyNotes, "alice")
	if !ok || string(got) != `[{"id":"1"}]` {
		t.Fatalf("get mismatch: %q ok=%v", got, ok)
	}
	if err := p.Remove(KeyNotes, "alice"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := p.Get(KeyNotes, "alice"); ok {
		t.Fatalf("expected absent after remove")
	}
	// Removing again is a no-op.
	if err := p.Remove(KeyNotes, "alice"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestNamespacingIsolatesUsers(t *testing.T) {
	p := load(t)

	if err := p.Set(KeyTodos, "alice", []byte("a")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := p.Set(KeyTodos, "bob", []byte("b")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := p.Get(KeyTodos, "alice")
	if string(got) != "a" {
		t.Fatalf("alice sees %q", got)
	}
	got, _ = p.Get(KeyTodos, "bob")
	if string(got) != "b" {
		t.Fatalf("bob sees %q", got)
	}
}

func TestAwkwardUsernames(t *testing.T) {
	p := load(t)

	// Separator characters and emoji must survive the physical key scheme.
	for _, user := range []string{"a-b-c", "user/with/slashes", "émile", "🙂"} {
		if err := p.Set(KeyAccent, user, []byte("#ff0000")); err != nil {
			t.Fatalf("set %q: %v", user, err)
		}
		got, ok := p.Get(KeyAccent, user)
		if !ok || string(got) != "#ff0000" {
			t.Fatalf("get %q: %q ok=%v", user, got, ok)
		}
	}
}

func TestMigrateUserMovesEveryKey(t *testing.T) {
	p := load(t)

	for _, key := range UserKeys() {
		if err := p.Set(key, "alice", []byte("v-"+string(key))); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
	if err := p.MigrateUser("alice", "bob"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, key := range UserKeys() {
		if _, ok := p.Get(key, "alice"); ok {
			t.Fatalf("key %s still present for alice", key)
		}
		got, ok := p.Get(key, "bob")
		if !ok || string(got) != "v-"+string(key) {
			t.Fatalf("key %s missing for bob: %q ok=%v", key, got, ok)
		}
	}
}

func TestMigrateUserSkipsAbsentKeys(t *testing.T) {
	p := load(t)

	if err := p.Set(KeyNotes, "alice", []byte("n")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := p.MigrateUser("alice", "bob"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, ok := p.Get(KeyLayout, "bob"); ok {
		t.Fatalf("absent key must not materialize on migrate")
	}
}

func TestPurgeUser(t *testing.T) {
	p := load(t)

	for _, key := range UserKeys() {
		if err := p.Set(key, "bob", []byte("x")); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
	if err := p.PurgeUser("bob"); err != nil {
		t.Fatalf("purge: %v", err)
	}
	for _, key := range UserKeys() {
		if _, ok := p.Get(key, "bob"); ok {
			t.Fatalf("key %s survived purge", key)
		}
	}
	// Purging an unknown user is a no-op.
	if err := p.PurgeUser("ghost"); err != nil {
		t.Fatalf("purge unknown: %v", err)
	}
}

func TestGlobals(t *testing.T) {
	p := load(t)

	if err := p.SetGlobal(GlobalTheme, []byte("light")); err != nil {
		t.Fatalf("set global: %v", err)
	}
	got, ok := p.GetGlobal(GlobalTheme)
	if !ok || string(got) != "light" {
		t.Fatalf("get global: %q ok=%v", got, ok)
	}
	if err := p.RemoveGlobal(GlobalTheme); err != nil {
		t.Fatalf("remove global: %v", err)
	}
	if _, ok := p.GetGlobal(GlobalTheme); ok {
		t.Fatalf("expected global absent after remove")
	}
}
