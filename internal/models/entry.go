// Package models defines the records managed by medikom: entries (tasks and
// information notes) and the lightweight projections returned by the store.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/medikom/internal/common"
)

// Kind discriminates tasks from information notes. It is fixed when the
// entry is created.
type Kind int

const (
	KindTask        Kind = 0
	KindInformation Kind = 1
)

// PriorityMarker marks an entry as high priority when it prefixes the title.
const PriorityMarker = "!"

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindInformation:
		return "information"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindTask || k == KindInformation
}

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "task", "t", "0":
		return KindTask, nil
	case "information", "info", "i", "1":
		return KindInformation, nil
	default:
		return 0, fmt.Errorf("%w: %q", common.ErrorInvalidKind, s)
	}
}

// Entry is a task or an information note.
type Entry struct {
	ID   int64
	Kind Kind

	// LastModified is bumped on every mutation, attachment changes included.
	// It is persisted with second resolution.
	LastModified time.Time

	Title string
	Notes string
}

// IsPriority reports whether the title starts with the priority marker.
func (e Entry) IsPriority() bool {
	return IsPriorityTitle(e.Title)
}

// Overview is the row returned by title listings.
type Overview struct {
	ID           int64
	LastModified time.Time
	Title        string
}

func (o Overview) IsPriority() bool {
	return IsPriorityTitle(o.Title)
}

// Details is a single entry together with the paths attached to it.
type Details struct {
	Entry
	Attachments []string
}

// IsPriorityTitle reports whether title is marked as high priority.
func IsPriorityTitle(title string) bool {
	return strings.HasPrefix(title, PriorityMarker)
}
