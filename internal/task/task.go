// Package task defines the task model and the pure list transitions.
package task

import (
	"strings"

	"github.com/google/uuid"
)

// Task represents a single to-do entry.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// List is an ordered sequence of tasks. The slice order is the canonical
// (storage) order: insertion order modulo deletions.
type List []Task

// IDGen produces a fresh unique task id.
type IDGen func() string

// NewID is the default id generator.
func NewID() string {
	return uuid.NewString()
}

// Add appends a new incomplete task with the given id to the end of the
// list and reports whether the title was accepted. Titles are trimmed;
// an empty or whitespace-only title is rejected and the input list is
// returned unchanged.
func Add(l List, title, id string) (List, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return l, false
	}
	next := make(List, len(l), len(l)+1)
	copy(next, l)
	return append(next, Task{ID: id, Title: title}), true
}

// Toggle flips the completed flag of the task with the given id. All
// other tasks are untouched. An unknown id returns an equal list.
func Toggle(l List, id string) List {
	next := make(List, len(l))
	copy(next, l)
	for i := range next {
		if next[i].ID == id {
			next[i].Completed = !next[i].Completed
			break
		}
	}
	return next
}

// Delete removes the task with the given id. An unknown id returns an
// equal list.
func Delete(l List, id string) List {
	next := make(List, 0, len(l))
	for _, t := range l {
		if t.ID == id {
			continue
		}
		next = append(next, t)
	}
	return next
}

// Find returns the task with the given id.
func Find(l List, id string) (Task, bool) {
	for _, t := range l {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// DisplayOrder returns the derived rendering order: incomplete tasks
// before completed ones, canonical order within each group. The input
// list is never mutated.
func DisplayOrder(l List) List {
	out := make(List, 0, len(l))
	for _, t := range l {
		if !t.Completed {
			out = append(out, t)
		}
	}
	for _, t := range l {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}
