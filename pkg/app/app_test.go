package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/omni/pkg/profile"
	"tableflip.dev/omni/pkg/session"
	"tableflip.dev/omni/pkg/store"
	"tableflip.dev/omni/pkg/timeutil"
)

type memStore struct {
	user    map[string][]byte
	global  map[string][]byte
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{user: map[string][]byte{}, global: map[string][]byte{}}
}

func (m *memStore) Get(key store.Key, username string) ([]byte, bool) {
	v, ok := m.user[string(key)+"/"+username]
	return v, ok
}

func (m *memStore) Set(key store.Key, username string, blob []byte) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.user[string(key)+"/"+username] = blob
	return nil
}

func (m *memStore) Remove(key store.Key, username string) error {
	delete(m.user, string(key)+"/"+username)
	return nil
}

func (m *memStore) GetGlobal(name string) ([]byte, bool) {
	v, ok := m.global[name]
	return v, ok
}

func (m *memStore) SetGlobal(name string, blob []byte) error {
	m.global[name] = blob
	return nil
}

func (m *memStore) RemoveGlobal(name string) error {
	delete(m.global, name)
	return nil
}

func (m *memStore) MigrateUser(oldName, newName string) error {
	for _, key := range store.UserKeys() {
		data, ok := m.Get(key, oldName)
		if !ok {
			continue
		}
		if err := m.Set(key, newName, data); err != nil {
			return err
		}
		if err := m.Remove(key, oldName); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) PurgeUser(username string) error {
	for _, key := range store.UserKeys() {
		if err := m.Remove(key, username); err != nil {
			return err
		}
	}
	return nil
}

func newService() (*Service, *memStore) {
	mem := newMemStore()
	return &Service{
		Persistence: mem,
		Profiles:    &profile.Store{Persistence: mem},
		Session:     &session.Session{Persistence: mem},
	}, mem
}

func loggedIn(t *testing.T) (*Service, *memStore) {
	t.Helper()
	s, mem := newService()
	if _, _, err := s.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s, mem
}

func TestLoginAutoRegisters(t *testing.T) {
	s, _ := newService()
	p, registered, err := s.Login(context.Background(), "Alice ", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !registered {
		t.Fatalf("expected first login to register")
	}
	if p.Username != "alice" {
		t.Fatalf("expected normalized username, got %q", p.Username)
	}
	if s.User() != "alice" {
		t.Fatalf("service user not set, got %q", s.User())
	}
	if current, ok := s.Session.Current(); !ok || current != "alice" {
		t.Fatalf("session not started, got %q %v", current, ok)
	}

	// Second login with the wrong password must fail, not re-register.
	s2, _ := newService()
	s2.Persistence = s.Persistence
	s2.Profiles.Persistence = s.Persistence
	s2.Session.Persistence = s.Persistence
	if _, _, err := s2.Login(context.Background(), "alice", "nope"); !errors.Is(err, profile.ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential, got %v", err)
	}
}

func TestAddTodoShapesRecord(t *testing.T) {
	s, _ := loggedIn(t)
	got, err := s.AddTodo(context.Background(), "Buy milk #Errand", "2025-03-10")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Task != "Buy milk" {
		t.Fatalf("task not stripped, got %q", got.Task)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "errand" {
		t.Fatalf("tags not lowered, got %v", got.Tags)
	}
	if got.Deadline != "2025-03-10" {
		t.Fatalf("deadline not kept, got %q", got.Deadline)
	}
	if len(s.Views.Index["2025-03-10"]) != 1 {
		t.Fatalf("day index not rebuilt: %v", s.Views.Index)
	}
	if s.Views.Pending != 1 || s.Views.Completed != 0 {
		t.Fatalf("counts wrong: pending=%d completed=%d", s.Views.Pending, s.Views.Completed)
	}
}

func TestAddTodoForDayMatchesInlineAdd(t *testing.T) {
	s, _ := loggedIn(t)
	a, err := s.AddTodo(context.Background(), "one #x", "2025-03-10")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b, err := s.AddTodoForDay(context.Background(), "one #x", "2025-03-10")
	if err != nil {
		t.Fatalf("add for day: %v", err)
	}
	if a.Task != b.Task || a.Deadline != b.Deadline || len(a.Tags) != len(b.Tags) {
		t.Fatalf("calendar add differs from inline add: %+v vs %+v", a, b)
	}
	if s.DetailDay != "2025-03-10" {
		t.Fatalf("day detail not opened, got %q", s.DetailDay)
	}
	if len(s.Views.Detail) != 2 {
		t.Fatalf("detail view not rebuilt, got %d tasks", len(s.Views.Detail))
	}

	if _, err := s.AddTodoForDay(context.Background(), "bad", "03/10/2025"); err == nil {
		t.Fatalf("expected bad day key to be rejected")
	}
}

func TestToggleUpdatesCounts(t *testing.T) {
	s, _ := loggedIn(t)
	added, err := s.AddTodo(context.Background(), "task", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	flipped, err := s.ToggleTodo(context.Background(), added.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !flipped.Completed {
		t.Fatalf("expected completed after toggle")
	}
	if s.Views.Pending != 0 || s.Views.Completed != 1 {
		t.Fatalf("counts wrong after toggle: pending=%d completed=%d", s.Views.Pending, s.Views.Completed)
	}
	if _, err := s.ToggleTodo(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStorageFailureLeavesStateUntouched(t *testing.T) {
	s, mem := loggedIn(t)
	if _, err := s.AddTodo(context.Background(), "kept", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	mem.failSet = true
	if _, err := s.AddTodo(context.Background(), "dropped", ""); err == nil {
		t.Fatalf("expected storage failure to surface")
	}
	if len(s.Views.Todos) != 1 || s.Views.Todos[0].Task != "kept" {
		t.Fatalf("in-memory state changed after failed write: %+v", s.Views.Todos)
	}
	mem.failSet = false
	if _, err := s.SaveNote(context.Background(), "", "note body"); err != nil {
		t.Fatalf("save note: %v", err)
	}
	mem.failSet = true
	if _, err := s.SaveNote(context.Background(), "", "lost"); err == nil {
		t.Fatalf("expected storage failure to surface")
	}
	if s.Views.NoteCount != 1 {
		t.Fatalf("note count changed after failed write: %d", s.Views.NoteCount)
	}
}

func TestNoteEditFlow(t *testing.T) {
	s, _ := loggedIn(t)
	n, err := s.SaveNote(context.Background(), "", "first #Tag")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n.Title != "Untitled Note" {
		t.Fatalf("default title missing, got %q", n.Title)
	}
	if _, err := s.EditNote(n.ID); err != nil {
		t.Fatalf("edit: %v", err)
	}
	updated, err := s.SaveNote(context.Background(), "Renamed", "second")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != n.ID {
		t.Fatalf("edit created a new note")
	}
	if updated.Title != "Renamed" || updated.Content != "second" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if s.EditingID() != "" {
		t.Fatalf("edit state not cleared after save")
	}
	if s.Views.NoteCount != 1 {
		t.Fatalf("expected one note, got %d", s.Views.NoteCount)
	}

	if err := s.DeleteNote(context.Background(), n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Views.NoteCount != 0 {
		t.Fatalf("note not deleted")
	}
}

func TestAgendaListsTodayOnly(t *testing.T) {
	s, _ := loggedIn(t)
	today := timeutil.DayKey(time.Now())
	if _, err := s.AddTodo(context.Background(), "due today", today); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddTodo(context.Background(), "undated", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(s.Views.Agenda) != 1 || s.Views.Agenda[0].Task != "due today" {
		t.Fatalf("agenda wrong: %+v", s.Views.Agenda)
	}
}

func TestRenameKeepsData(t *testing.T) {
	s, _ := loggedIn(t)
	if _, err := s.AddTodo(context.Background(), "carried", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Rename(context.Background(), "Alicia"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if s.User() != "alicia" {
		t.Fatalf("user not updated, got %q", s.User())
	}
	if current, _ := s.Session.Current(); current != "alicia" {
		t.Fatalf("session not repointed, got %q", current)
	}

	reopened, _ := newService()
	reopened.Persistence = s.Persistence
	reopened.Profiles.Persistence = s.Persistence
	reopened.Session.Persistence = s.Persistence
	if err := reopened.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(reopened.Views.Todos) != 1 || reopened.Views.Todos[0].Task != "carried" {
		t.Fatalf("data did not follow rename: %+v", reopened.Views.Todos)
	}
}

func TestDeleteAccountPurges(t *testing.T) {
	s, mem := loggedIn(t)
	if _, err := s.AddTodo(context.Background(), "gone", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.DeleteAccount(context.Background(), "wrong"); !errors.Is(err, profile.ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential, got %v", err)
	}
	if err := s.DeleteAccount(context.Background(), "pw"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.User() != "" {
		t.Fatalf("expected logout after delete")
	}
	if _, ok := mem.Get(store.KeyTodos, "alice"); ok {
		t.Fatalf("todos not purged")
	}
	if _, err := s.Profiles.Get("alice"); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("profile not removed, got %v", err)
	}
	if _, ok := s.Session.Current(); ok {
		t.Fatalf("session not cleared")
	}
}

func TestChangePasswordChecksSession(t *testing.T) {
	s, _ := loggedIn(t)
	if err := s.ChangePassword(context.Background(), "pw", "pw2"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := s.Profiles.Login("alice", "pw2"); err != nil {
		t.Fatalf("new password not accepted: %v", err)
	}

	// Another invocation moved the session elsewhere.
	if err := s.Session.Start("mallory"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.ChangePassword(context.Background(), "pw2", "pw3"); !errors.Is(err, ErrSessionChanged) {
		t.Fatalf("expected ErrSessionChanged, got %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := loggedIn(t)
	if _, err := s.AddTodo(context.Background(), "keep me #tag", "2025-03-10"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.SaveNote(context.Background(), "T", "body"); err != nil {
		t.Fatalf("save note: %v", err)
	}
	if err := s.SetAccent("#123456"); err != nil {
		t.Fatalf("set accent: %v", err)
	}
	doc, name, err := s.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "omni_backup_alice_" + timeutil.DayKey(time.Now()) + ".json"
	if name != want {
		t.Fatalf("filename %q, want %q", name, want)
	}

	other, _ := newService()
	if _, _, err := other.Login(context.Background(), "bob", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	n, err := other.Import(context.Background(), doc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 keys imported, got %d", n)
	}
	if len(other.Views.Todos) != 1 || other.Views.Todos[0].Task != "keep me" {
		t.Fatalf("todos not reloaded after import: %+v", other.Views.Todos)
	}
	if other.Views.NoteCount != 1 {
		t.Fatalf("notes not reloaded after import")
	}
	if other.Accent() != "#123456" {
		t.Fatalf("accent not imported, got %q", other.Accent())
	}
}

func TestPreferenceDefaults(t *testing.T) {
	s, _ := loggedIn(t)
	if got := s.Accent(); got != DefaultAccent {
		t.Fatalf("accent default %q, want %q", got, DefaultAccent)
	}
	if got := s.FontSize(); got != DefaultFontSize {
		t.Fatalf("fontsize default %d, want %d", got, DefaultFontSize)
	}
	if got := s.Theme(); got != DefaultTheme {
		t.Fatalf("theme default %q, want %q", got, DefaultTheme)
	}
	if err := s.SetFontSize(18); err != nil {
		t.Fatalf("set fontsize: %v", err)
	}
	if got := s.FontSize(); got != 18 {
		t.Fatalf("fontsize %d, want 18", got)
	}
	if err := s.SetLayout([]string{"todos", "notes"}); err != nil {
		t.Fatalf("set layout: %v", err)
	}
	if got := s.Layout(); len(got) != 2 || got[0] != "todos" {
		t.Fatalf("layout %v", got)
	}
	if err := s.SetTheme("light"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if got := s.Theme(); got != "light" {
		t.Fatalf("theme %q", got)
	}
	if err := s.ResetPreferences(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.Theme() != DefaultTheme || s.FontSize() != DefaultFontSize {
		t.Fatalf("reset did not restore defaults")
	}
}

func TestOperationsRequireLogin(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	if _, err := s.AddTodo(ctx, "x", ""); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.SaveNote(ctx, "", "x"); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("save note: %v", err)
	}
	if _, _, err := s.Export(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("export: %v", err)
	}
	if err := s.Open(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("open: %v", err)
	}
}
