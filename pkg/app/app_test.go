package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/store"
)

// fakePersistence records saves and can simulate write failures.
type fakePersistence struct {
	saved   [][]*note.Note
	loaded  []*note.Note
	saveErr error
}

func (f *fakePersistence) LoadAll(ctx context.Context) []*note.Note {
	return f.loaded
}

func (f *fakePersistence) SaveAll(notes []*note.Note) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	snapshot := make([]*note.Note, len(notes))
	copy(snapshot, notes)
	f.saved = append(f.saved, snapshot)
	return nil
}

func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func mkNote(id, content, day string, at time.Time, c note.Color) *note.Note {
	return &note.Note{
		ID:      id,
		Content: content,
		Date:    day,
		Created: note.Timestamp{Time: at},
		Color:   c,
	}
}

func TestNotesForDateFiltersAndSorts(t *testing.T) {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc := New(&fakePersistence{})

	_ = svc.Add(mkNote("a", "first", "2024-03-01", base, note.Yellow))
	_ = svc.Add(mkNote("b", "other day", "2024-03-02", base.Add(time.Minute), note.Pink))
	_ = svc.Add(mkNote("c", "second", "2024-03-01", base.Add(2*time.Minute), note.Blue))

	got := svc.NotesForDate("2024-03-01")
	if len(got) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "a" {
		t.Fatalf("expected [c a], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestNotesForDateTiesAreStable(t *testing.T) {
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc := New(&fakePersistence{})

	// Same instant; insertion order (newest-added first) must hold.
	_ = svc.Add(mkNote("a", "one", "2024-03-01", at, note.Yellow))
	_ = svc.Add(mkNote("b", "two", "2024-03-01", at, note.Pink))
	_ = svc.Add(mkNote("c", "three", "2024-03-01", at, note.Blue))

	got := svc.NotesForDate("2024-03-01")
	if got[0].ID != "c" || got[1].ID != "b" || got[2].ID != "a" {
		t.Fatalf("expected insertion order [c b a], got [%s %s %s]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestAddRejectsEmptyContent(t *testing.T) {
	p := &fakePersistence{}
	svc := New(p)
	err := svc.Add(mkNote("a", "   \n\t", "2024-03-01", time.Now(), note.Yellow))
	if !errors.Is(err, note.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if len(svc.All()) != 0 {
		t.Fatalf("store mutated by rejected add")
	}
	if len(p.saved) != 0 {
		t.Fatalf("rejected add must not persist")
	}
}

func TestUpdateContentChangesOnlyContent(t *testing.T) {
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc := New(&fakePersistence{})
	orig := mkNote("a", "before", "2024-03-01", at, note.Purple)
	orig.Rotation = 2.5
	_ = svc.Add(orig)

	if err := svc.UpdateContent("a", "after"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := svc.Get("a")
	if got.Content != "after" {
		t.Fatalf("expected updated content, got %q", got.Content)
	}
	if got.ID != "a" || got.Date != "2024-03-01" || !got.Created.Equal(at) ||
		got.Color != note.Purple || got.Rotation != 2.5 {
		t.Fatalf("edit changed more than content: %#v", got)
	}
}

func TestUpdateContentAbsentIDReportsNotFound(t *testing.T) {
	p := &fakePersistence{}
	svc := New(p)
	if err := svc.UpdateContent("ghost", "hello"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(p.saved) != 0 {
		t.Fatalf("no-op update must not persist")
	}
}

func TestUpdateContentRejectsEmpty(t *testing.T) {
	svc := New(&fakePersistence{})
	_ = svc.Add(mkNote("a", "keep me", "2024-03-01", time.Now(), note.Green))
	if err := svc.UpdateContent("a", "  "); !errors.Is(err, note.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if svc.Get("a").Content != "keep me" {
		t.Fatalf("rejected update mutated content")
	}
}

func TestRemove(t *testing.T) {
	p := &fakePersistence{}
	svc := New(p)
	_ = svc.Add(mkNote("a", "one", "2024-03-01", time.Now(), note.Yellow))
	_ = svc.Add(mkNote("b", "two", "2024-03-01", time.Now(), note.Pink))

	svc.Remove("a")
	if len(svc.All()) != 1 || svc.Get("a") != nil {
		t.Fatalf("expected exactly one removal")
	}

	saves := len(p.saved)
	svc.Remove("a") // already gone
	if len(svc.All()) != 1 {
		t.Fatalf("absent removal mutated store")
	}
	if len(p.saved) != saves {
		t.Fatalf("absent removal must not persist")
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	p := &fakePersistence{saveErr: errors.New("disk full")}
	svc := New(p)
	if err := svc.Add(mkNote("a", "still here", "2024-03-01", time.Now(), note.Blue)); err != nil {
		t.Fatalf("persist failure surfaced: %v", err)
	}
	if svc.Get("a") == nil {
		t.Fatalf("in-memory state must stay authoritative")
	}
}

func TestLastColorOn(t *testing.T) {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc := New(&fakePersistence{})
	if _, ok := svc.LastColorOn("2024-03-01"); ok {
		t.Fatalf("expected no color on empty day")
	}
	_ = svc.Add(mkNote("a", "old", "2024-03-01", base, note.Yellow))
	_ = svc.Add(mkNote("b", "new", "2024-03-01", base.Add(time.Hour), note.Orange))
	c, ok := svc.LastColorOn("2024-03-01")
	if !ok || c != note.Orange {
		t.Fatalf("expected orange from the newest note, got %s (%v)", c, ok)
	}
}

func TestCreateFlowEndToEnd(t *testing.T) {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc := New(&fakePersistence{})

	_ = svc.Add(mkNote("1", "Buy milk", "2024-03-01", base, note.Yellow))
	got := svc.NotesForDate("2024-03-01")
	if len(got) != 1 || got[0].Content != "Buy milk" {
		t.Fatalf("expected [Buy milk], got %v", got)
	}

	_ = svc.Add(mkNote("2", "Call mom", "2024-03-01", base.Add(time.Second), note.Pink))
	got = svc.NotesForDate("2024-03-01")
	if len(got) != 2 || got[0].Content != "Call mom" || got[1].Content != "Buy milk" {
		t.Fatalf(`expected ["Call mom" "Buy milk"], got [%q %q]`, got[0].Content, got[1].Content)
	}
}

func TestLoadReplacesCollection(t *testing.T) {
	p := &fakePersistence{loaded: []*note.Note{
		mkNote("a", "persisted", "2024-03-01", time.Now(), note.Green),
	}}
	svc := New(p)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(svc.All()) != 1 || svc.Get("a") == nil {
		t.Fatalf("expected persisted collection")
	}
}

func TestFetchLeavesCollectionUntouched(t *testing.T) {
	p := &fakePersistence{loaded: []*note.Note{
		mkNote("a", "persisted", "2024-03-01", time.Now(), note.Green),
	}}
	svc := New(p)
	_ = svc.Add(mkNote("b", "in memory", "2024-03-01", time.Now(), note.Blue))

	fetched, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(fetched) != 1 || fetched[0].ID != "a" {
		t.Fatalf("expected the persisted collection, got %+v", fetched)
	}
	if len(svc.All()) != 1 || svc.Get("b") == nil {
		t.Fatalf("fetch must not replace the in-memory collection")
	}

	svc.Replace(fetched)
	if svc.Get("a") == nil || svc.Get("b") != nil {
		t.Fatalf("replace should install the fetched collection")
	}
}
