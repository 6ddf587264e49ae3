// Package stack tracks and renders the one-at-a-time daily card pile.
package stack

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/tui/theme"
)

// State is the forward-only cursor over a day's notes. Only its value modulo
// the day's note count matters, so it grows without bound and wraps naturally
// when notes are added or removed underneath it.
type State struct {
	cursor int
}

// Advance moves the cursor forward by one. There is no backward navigation;
// the pile always cycles.
func (s *State) Advance() {
	s.cursor++
}

// Reset rewinds to the top of the pile, used when the selected day changes.
func (s *State) Reset() {
	s.cursor = 0
}

// Active returns the index of the frontmost note, or -1 when the day is empty.
func (s *State) Active(count int) int {
	if count <= 0 {
		return -1
	}
	return s.cursor % count
}

// Next returns the index of the peeked note behind the active one, or -1 when
// the day is empty. With a single note the pile self-loops.
func (s *State) Next(count int) int {
	if count <= 0 {
		return -1
	}
	return (s.cursor + 1) % count
}

// CardWidth is the rendered width of a stack card, borders included.
const CardWidth = 34

// baseIndent leaves room for negative tilt offsets.
const baseIndent = 4

// Indent translates a note's tilt into a horizontal shift. Terminals cannot
// rotate glyphs, so the tilt becomes a column offset around a common base.
func Indent(rotation float64) int {
	off := baseIndent + int(math.Round(rotation))
	if off < 0 {
		off = 0
	}
	return off
}

// Card renders a sticky note at the stack width, shifted by its tilt.
func Card(n *note.Note, style lipgloss.Style) string {
	body := wordwrap.String(n.Content, CardWidth-4)
	card := style.Width(CardWidth - 2).Render(body)
	return shift(card, Indent(n.Rotation))
}

// Render draws the active card, the peek of the next one, and the position
// counter. With no notes it renders the empty-day placeholder.
func Render(notes []*note.Note, s *State, th theme.Theme) string {
	active := s.Active(len(notes))
	if active < 0 {
		return shift(th.Card.Empty.Render("No ideas yet. Press o to pop one."), baseIndent)
	}
	next := s.Next(len(notes))

	sections := []string{Card(notes[active], theme.CardStyle(notes[active].Color))}
	if next != active {
		peek := notes[next]
		preview := wordwrap.String(firstLine(peek.Content), CardWidth-4)
		sections = append(sections, shift(
			theme.PreviewStyle(peek.Color).Width(CardWidth-2).Render(preview),
			Indent(peek.Rotation)))
	}
	sections = append(sections, shift(
		th.Card.Counter.Render(fmt.Sprintf("%d/%d", active+1, len(notes))),
		baseIndent))
	return strings.Join(sections, "\n")
}

func firstLine(content string) string {
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		return content[:idx]
	}
	return content
}

func shift(block string, indent int) string {
	if indent <= 0 {
		return block
	}
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
