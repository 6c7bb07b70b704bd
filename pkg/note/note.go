// Package note defines the note record and its tag metadata.
package note

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tableflip.dev/omni/pkg/tags"
	"tableflip.dev/omni/pkg/timeutil"
)

// DefaultTitle is used when a note is saved with a blank title.
const DefaultTitle = "Untitled Note"

var ErrEmptyContent = errors.New("note: content required")

// Note is a saved note. Tags are derived from the content on every save;
// the content itself is never rewritten.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Tags      []string  `json:"tags"`
}

// New builds a note from user input. Content is required; a blank title
// falls back to DefaultTitle.
func New(title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if title == "" {
		title = DefaultTitle
	}
	now := time.Now()
	return &Note{
		ID:        timeutil.NewID(now),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      tags.Values(content),
	}, nil
}

// Update rewrites the note's title and content, bumping UpdatedAt and
// re-deriving the tags.
func (n *Note) Update(title, content string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	if title == "" {
		title = DefaultTitle
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now()
	n.Tags = tags.Values(content)
	return nil
}

// Decode unmarshals a stored note collection. Absent or malformed blobs
// decode to an empty collection rather than failing the load.
func Decode(data []byte) []*Note {
	if len(data) == 0 {
		return []*Note{}
	}
	var notes []*Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return []*Note{}
	}
	out := notes[:0]
	for _, n := range notes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Encode marshals a note collection for storage.
func Encode(notes []*Note) ([]byte, error) {
	return json.Marshal(notes)
}
