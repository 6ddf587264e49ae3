// Package theme centralizes Lip Gloss styles for the IdeaPops TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/ideapops/pkg/note"
)

// Theme groups the styles used across the UI.
type Theme struct {
	Header   HeaderTheme
	Card     CardTheme
	Calendar CalendarTheme
	Footer   FooterTheme
	Modal    ModalTheme
}

// HeaderTheme styles the tab row at the top of the screen.
type HeaderTheme struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Date        lipgloss.Style
}

// CardTheme styles sticky-note cards in the stack and grid.
type CardTheme struct {
	Empty   lipgloss.Style
	Counter lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Notes    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Overflow lipgloss.Style
	Month    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Mode   lipgloss.Style
}

// ModalTheme styles the editor, drawer, and confirmation overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			ActiveTab: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Padding(0, 1),
			InactiveTab: lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(0, 1),
			Date: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		},
		Card: CardTheme{
			Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Notes:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Reverse(true),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Overflow: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Month:    lipgloss.NewStyle().Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Mode:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

// CardStyle returns the filled card style for a palette color.
func CardStyle(c note.Color) lipgloss.Style {
	hex := c.Hex()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(Shade(hex, 0.45))).
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(Shade(hex, 0.75))).
		Padding(0, 1)
}

// PreviewStyle returns the dimmed card style used for the next-note peek.
func PreviewStyle(c note.Color) lipgloss.Style {
	hex := Shade(c.Hex(), 0.55)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(Shade(hex, 0.4))).
		Foreground(lipgloss.Color(hex)).
		Padding(0, 1)
}

// DotStyle colors a calendar note-presence dot.
func DotStyle(c note.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// Shade darkens a hex color by the given amount in [0, 1].
func Shade(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l *= 1 - amount
	if l < 0 {
		l = 0
	}
	return colorful.Hsl(h, s, l).Hex()
}
