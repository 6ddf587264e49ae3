// Package app provides high-level operations over the note collection.
// It owns the in-memory collection and wraps persistence so the TUI and CLI
// share one store.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/store"
)

var (
	// ErrNotFound reports a mutation aimed at an id no longer in the store.
	// Callers treat it as a no-op; the note may have been deleted while an
	// action was pending.
	ErrNotFound = errors.New("app: note not found")

	errNoPersistence = errors.New("app: no persistence configured")
)

// Service is the sole owner of the note collection. The collection is kept
// newest-first; consumers receive copied slices, never the backing array.
// Every mutation rewrites the whole blob through Persistence; a persist
// failure is logged and swallowed, the in-memory state stays authoritative
// for the session.
type Service struct {
	Persistence store.Persistence

	notes []*note.Note
}

// New creates a Service backed by the given persistence.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

// Fetch reads the persisted collection without touching in-memory state, so
// it is safe to call off the owning goroutine and hand the result back. A
// missing or malformed blob yields an empty collection.
func (s *Service) Fetch(ctx context.Context) ([]*note.Note, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.LoadAll(ctx), nil
}

// Replace installs notes as the in-memory collection. Only the single
// goroutine that owns the Service may call it.
func (s *Service) Replace(notes []*note.Note) {
	s.notes = notes
}

// Load replaces the in-memory collection with the persisted one.
func (s *Service) Load(ctx context.Context) error {
	notes, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Replace(notes)
	return nil
}

// All returns the current collection, newest-created first.
func (s *Service) All() []*note.Note {
	out := make([]*note.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Add validates and prepends a new note, then persists.
func (s *Service) Add(n *note.Note) error {
	if err := n.Validate(); err != nil {
		return err
	}
	s.notes = append([]*note.Note{n}, s.notes...)
	s.persist()
	return nil
}

// UpdateContent replaces the content of the note matching id. Only content
// changes; date, timestamp, color, and rotation are untouched. Returns
// ErrNotFound when the id is absent.
func (s *Service) UpdateContent(id, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return note.ErrEmptyContent
	}
	for _, n := range s.notes {
		if n.ID == id {
			n.Content = content
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the note matching id. Removing an absent id is a no-op.
func (s *Service) Remove(id string) {
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.persist()
			return
		}
	}
}

// Get returns the note matching id, or nil.
func (s *Service) Get(id string) *note.Note {
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// NotesForDate returns the day bucket for the canonical day string, sorted by
// creation instant descending. Equal instants keep their insertion order.
func (s *Service) NotesForDate(day string) []*note.Note {
	bucket := make([]*note.Note, 0)
	for _, n := range s.notes {
		if n.Date == day {
			bucket = append(bucket, n)
		}
	}
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].Created.After(bucket[j].Created.Time)
	})
	return bucket
}

// LastColorOn returns the color of the most recently created note on the
// given day, used to avoid visual repetition when picking a new color.
func (s *Service) LastColorOn(day string) (note.Color, bool) {
	bucket := s.NotesForDate(day)
	if len(bucket) == 0 {
		return "", false
	}
	return bucket[0].Color, true
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// persist rewrites the full collection. Fire-and-forget: a failure never
// surfaces to the user and nothing is rolled back in memory.
func (s *Service) persist() {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.SaveAll(s.notes); err != nil {
		fmt.Fprintf(os.Stderr, "app: persist notes: %v\n", err)
	}
}
