// Package todo defines the task record shared by the inline and
// calendar-day entry points.
package todo

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tableflip.dev/omni/pkg/tags"
	"tableflip.dev/omni/pkg/timeutil"
)

var (
	ErrEmptyTask   = errors.New("todo: task required")
	ErrBadDeadline = errors.New("todo: deadline must be YYYY-MM-DD")
)

// Todo is a single task. The task text has its tag tokens stripped; the
// lowercased tokens live in Tags. Deadline is a YYYY-MM-DD date key or
// empty.
type Todo struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	Deadline  string    `json:"deadline,omitempty"`
	Tags      []string  `json:"tags"`
}

// New builds a todo from raw input. Tags are extracted lowercased and
// removed from the task text; input that is only tags is rejected. Both
// creation paths (inline add and calendar-day add) go through here so the
// records come out identically shaped.
func New(raw, deadline string) (*Todo, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyTask
	}
	if deadline != "" {
		d, err := timeutil.ParseDay(deadline)
		if err != nil || timeutil.DayKey(d) != deadline {
			return nil, ErrBadDeadline
		}
	}
	task := tags.Strip(raw)
	if task == "" {
		return nil, ErrEmptyTask
	}
	now := time.Now()
	return &Todo{
		ID:        timeutil.NewID(now),
		Task:      task,
		CreatedAt: now,
		Deadline:  deadline,
		Tags:      tags.Lowered(raw),
	}, nil
}

// Decode unmarshals a stored todo collection. Absent or malformed blobs
// decode to an empty collection.
func Decode(data []byte) []*Todo {
	if len(data) == 0 {
		return []*Todo{}
	}
	var todos []*Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return []*Todo{}
	}
	out := todos[:0]
	for _, t := range todos {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Encode marshals a todo collection for storage.
func Encode(todos []*Todo) ([]byte, error) {
	return json.Marshal(todos)
}
