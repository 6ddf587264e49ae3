// Package note defines the sticky-note record and its cosmetic palette.
package note

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/ideapops/pkg/timeutil"
)

// ErrEmptyContent rejects notes whose trimmed content is empty.
var ErrEmptyContent = errors.New("note: content is empty")

// Note is a single dated, colored, user-authored text entry. Everything but
// Content is fixed at creation.
type Note struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Date     string    `json:"date"` // local calendar day, YYYY-MM-DD
	Created  Timestamp `json:"created"`
	Color    Color     `json:"color"`
	Rotation float64   `json:"rotation,omitempty"`
}

// New creates a note for the given local day. The id and creation instant are
// assigned here; content is stored trimmed.
func New(content, date string, c Color, rotation float64) *Note {
	return &Note{
		ID:       uuid.New().String(),
		Content:  strings.TrimSpace(content),
		Date:     date,
		Created:  Timestamp{Time: time.Now()},
		Color:    c,
		Rotation: rotation,
	}
}

// Validate checks the persisted-note invariants.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Content) == "" {
		return ErrEmptyContent
	}
	if !timeutil.IsDay(n.Date) {
		return errors.New("note: invalid date " + n.Date)
	}
	if !n.Color.Known() {
		return errors.New("note: color outside palette: " + string(n.Color))
	}
	return nil
}

// Normalize repairs recoverable field drift in loaded notes: stale palette
// values fall back to the default color.
func (n *Note) Normalize() {
	n.Color = n.Color.Normalize()
}
