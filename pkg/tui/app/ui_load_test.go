package teaui

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/ideapops/pkg/app"
	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/store"
	"tableflip.dev/ideapops/pkg/timeutil"
)

// stubPersistence serves a fixed collection and no watch channel.
type stubPersistence struct {
	notes []*note.Note
}

func (s *stubPersistence) LoadAll(ctx context.Context) []*note.Note {
	return s.notes
}

func (s *stubPersistence) SaveAll(notes []*note.Note) error {
	return nil
}

func (s *stubPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, errors.New("no watch")
}

// The load command runs on a command goroutine while the event loop keeps
// reading the collection through View. The command must only fetch; the
// collection may change hands nowhere but Update.
func TestLoadCommandInstallsNotesInUpdate(t *testing.T) {
	today := timeutil.Today()
	disk := &stubPersistence{notes: []*note.Note{
		newTestNote("n1", "from disk", today, note.Green, time.Now()),
	}}
	m := New(app.New(disk))
	m.termWidth = 80
	m.termHeight = 24

	cmd := m.loadNotes()
	msg := cmd()

	if got := len(m.svc.All()); got != 0 {
		t.Fatalf("fetch command must not mutate the collection, found %d notes", got)
	}
	loaded, ok := msg.(notesLoadedMsg)
	if !ok {
		t.Fatalf("expected notesLoadedMsg, got %T", msg)
	}
	if len(loaded.notes) != 1 {
		t.Fatalf("expected one fetched note, got %d", len(loaded.notes))
	}

	m.Update(loaded)
	notes := m.svc.NotesForDate(today)
	if len(notes) != 1 || notes[0].Content != "from disk" {
		t.Fatalf("Update should install the fetched collection, got %+v", notes)
	}
}

// Reading views while the fetch command runs elsewhere must be safe; the
// command returns data instead of writing the service.
func TestLoadCommandConcurrentWithView(t *testing.T) {
	today := timeutil.Today()
	disk := &stubPersistence{notes: []*note.Note{
		newTestNote("n1", "from disk", today, note.Yellow, time.Now()),
	}}
	m := New(app.New(disk))
	m.termWidth = 80
	m.termHeight = 24

	cmd := m.loadNotes()
	done := make(chan struct{})
	go func() {
		defer close(done)
		cmd()
	}()
	for i := 0; i < 50; i++ {
		_ = m.View()
	}
	<-done
}
