package note

import (
	"reflect"
	"testing"
	"time"
)

func TestNewDefaultsTitle(t *testing.T) {
	n, err := New("  ", "remember the #Milk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", n.Title)
	}
	if n.Content != "remember the #Milk" {
		t.Fatalf("content must be left unmodified, got %q", n.Content)
	}
	if !reflect.DeepEqual(n.Tags, []string{"Milk"}) {
		t.Fatalf("expected case-preserved tags, got %v", n.Tags)
	}
	if n.ID == "" {
		t.Fatalf("expected an id")
	}
	if !n.UpdatedAt.Equal(n.CreatedAt) {
		t.Fatalf("new note must have updatedAt == createdAt")
	}
}

func TestNewRejectsEmptyContent(t *testing.T) {
	if _, err := New("title", "   "); err != ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestUpdateBumpsTimestampAndTags(t *testing.T) {
	n, err := New("t", "old #a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n.CreatedAt = n.CreatedAt.Add(-time.Hour)
	n.UpdatedAt = n.CreatedAt
	if err := n.Update("", "new #b #c"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !n.UpdatedAt.After(n.CreatedAt) {
		t.Fatalf("updatedAt must move past createdAt")
	}
	if !reflect.DeepEqual(n.Tags, []string{"b", "c"}) {
		t.Fatalf("tags not re-derived: %v", n.Tags)
	}
	if n.Title != DefaultTitle {
		t.Fatalf("blank title on update should fall back, got %q", n.Title)
	}
}

func TestDecodeBestEffort(t *testing.T) {
	if got := Decode(nil); len(got) != 0 {
		t.Fatalf("absent blob should decode empty, got %v", got)
	}
	if got := Decode([]byte("{not json")); len(got) != 0 {
		t.Fatalf("malformed blob should decode empty, got %v", got)
	}
	n, _ := New("a", "b")
	data, err := Encode([]*Note{n})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back := Decode(data)
	if len(back) != 1 || back[0].ID != n.ID {
		t.Fatalf("round trip lost note: %v", back)
	}
}
