// Package calendar provides the month grid used to browse between days.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/timeutil"
)

// MaxDots caps the distinct color dots drawn under a day cell. More colors
// collapse into an overflow marker.
const MaxDots = 3

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	IsToday    bool
	IsSelected bool
	IsCursor   bool
	Dots       []note.Color
	Overflow   bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	NoteStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	CursorStyle   lipgloss.Style
	OverflowStyle lipgloss.Style
	DotStyle      func(note.Color) lipgloss.Style
	ShowHeader    bool
	ShowDots      bool
}

// cellWidth fits a 2-digit day or three dots plus an overflow marker.
const cellWidth = 4

// Render produces a multi-line month grid: leading blanks for the weekday of
// the 1st, then one cell per day. With ShowDots each week gets a second line
// of note-presence dots.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(headerRow()))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	blank := strings.Repeat(" ", cellWidth)
	for row := 0; row < rows; row++ {
		var cells, dots []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, blank)
				dots = append(dots, blank)
				continue
			}
			info := byDay[day]
			cells = append(cells, renderDay(info, day, opts))
			dots = append(dots, renderDots(info, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
		if opts.ShowDots {
			lines = append(lines, strings.Join(dots, " "))
		}
	}

	return strings.Join(lines, "\n")
}

func headerRow() string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	cells := make([]string, len(names))
	for i, n := range names {
		cells[i] = pad(" " + n)
	}
	return strings.Join(cells, " ")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%3d ", day)

	style := opts.EmptyStyle
	if len(info.Dots) > 0 {
		style = opts.NoteStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	if info.IsCursor {
		style = style.Inherit(opts.CursorStyle)
	}
	return style.Render(text)
}

func renderDots(info Day, opts Options) string {
	if len(info.Dots) == 0 {
		return strings.Repeat(" ", cellWidth)
	}
	var b strings.Builder
	for _, c := range info.Dots {
		if opts.DotStyle != nil {
			b.WriteString(opts.DotStyle(c).Render("•"))
		} else {
			b.WriteString("•")
		}
	}
	if info.Overflow {
		b.WriteString(opts.OverflowStyle.Render("+"))
	}
	width := len(info.Dots)
	if info.Overflow {
		width++
	}
	return b.String() + strings.Repeat(" ", max(0, cellWidth-width))
}

func pad(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DotsFor reduces a day bucket (newest-first) to its distinct colors, capped
// at MaxDots, reporting whether any were dropped.
func DotsFor(notes []*note.Note) ([]note.Color, bool) {
	seen := make(map[note.Color]bool, MaxDots)
	dots := make([]note.Color, 0, MaxDots)
	overflow := false
	for _, n := range notes {
		if seen[n.Color] {
			continue
		}
		if len(dots) == MaxDots {
			overflow = true
			break
		}
		seen[n.Color] = true
		dots = append(dots, n.Color)
	}
	return dots, overflow
}

// Cursor is the independent month-and-day position used while browsing the
// calendar. Moving between months never changes the app's selected date; only
// committing the cursor does.
type Cursor struct {
	year  int
	month time.Month
	day   int
}

// NewCursor starts at the given canonical day, falling back to today when the
// day does not parse.
func NewCursor(selected string) Cursor {
	t, err := timeutil.ParseDay(selected)
	if err != nil {
		t = time.Now().Local()
	}
	return Cursor{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Month returns midnight local on the first of the cursor month.
func (c Cursor) Month() time.Time {
	return time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local)
}

// Day returns the day-of-month the keyboard cursor rests on.
func (c Cursor) Day() int {
	return c.day
}

// Date returns the canonical day string under the cursor.
func (c Cursor) Date() string {
	return timeutil.Day(time.Date(c.year, c.month, c.day, 12, 0, 0, 0, time.Local))
}

// Prev moves back one month, clamping the day cursor to the shorter month.
func (c *Cursor) Prev() {
	c.shift(-1)
}

// Next moves forward one month, clamping the day cursor to the shorter month.
func (c *Cursor) Next() {
	c.shift(1)
}

func (c *Cursor) shift(months int) {
	t := time.Date(c.year, c.month+time.Month(months), 1, 0, 0, 0, 0, time.Local)
	c.year = t.Year()
	c.month = t.Month()
	if limit := DaysIn(t); c.day > limit {
		c.day = limit
	}
}

// MoveDay shifts the day cursor within the month, clamped to its bounds.
func (c *Cursor) MoveDay(delta int) {
	c.day += delta
	if c.day < 1 {
		c.day = 1
	}
	if limit := DaysIn(c.Month()); c.day > limit {
		c.day = limit
	}
}
