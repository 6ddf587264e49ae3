// Package store persists the note collection as a single blob on disk.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/ideapops/pkg/note"
)

// notesKey is the one slot holding the entire serialized collection. Every
// mutation rewrites it wholesale; the collection is small enough that partial
// writes are not worth their complexity.
const notesKey = "notes"

// Persistence is the blob boundary for the note collection.
type Persistence interface {
	// LoadAll reads the persisted collection. A missing or malformed blob
	// yields an empty collection; parse failures are logged, never returned.
	LoadAll(ctx context.Context) []*note.Note
	// SaveAll overwrites the blob with the full collection.
	SaveAll(notes []*note.Note) error
	// Watch streams change events for the blob until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadAll(ctx context.Context) []*note.Note {
	val, err := p.d.Read(notesKey)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", notesKey, err)
		}
		return []*note.Note{}
	}

	var notes []*note.Note
	if err := json.Unmarshal(val, &notes); err != nil {
		fmt.Fprintf(os.Stderr, "store: discard malformed %s blob: %v\n", notesKey, err)
		return []*note.Note{}
	}

	kept := notes[:0]
	for _, n := range notes {
		if n == nil || n.ID == "" {
			continue
		}
		n.Normalize()
		kept = append(kept, n)
	}
	return kept
}

func (p *persistence) SaveAll(notes []*note.Note) error {
	if notes == nil {
		notes = []*note.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("store: marshal notes: %w", err)
	}
	if err := p.d.Write(notesKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", notesKey, err)
	}
	return nil
}

// notesFilePath is where the flat transform places the blob.
func (p *persistence) notesFilePath() string {
	return filepath.Join(p.basePath, notesKey)
}
