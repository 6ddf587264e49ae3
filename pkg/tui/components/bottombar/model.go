// Package bottombar renders the footer status and help line.
package bottombar

import (
	"strings"

	"tableflip.dev/ideapops/pkg/tui/theme"
)

// Mode labels the footer with the active flow.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditor
	ModeDrawer
	ModeConfirm
)

func (m Mode) label() string {
	switch m {
	case ModeEditor:
		return "editing"
	case ModeDrawer:
		return "actions"
	case ModeConfirm:
		return "confirm"
	default:
		return ""
	}
}

// Model tracks footer rendering state.
type Model struct {
	theme  theme.FooterTheme
	mode   Mode
	help   string
	status string
	place  string
}

// New returns a footer model styled by the given theme.
func New(th theme.FooterTheme) Model {
	return Model{theme: th}
}

// SetMode updates the flow label.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
}

// SetHelp sets the contextual key hints.
func (m *Model) SetHelp(help string) {
	m.help = help
}

// SetStatus sets the transient status message.
func (m *Model) SetStatus(status string) {
	m.status = status
}

// SetPlace describes where the user is (view, mode, and date).
func (m *Model) SetPlace(place string) {
	m.place = place
}

// View renders the single footer row.
func (m Model) View() string {
	var segments []string
	if m.help != "" {
		segments = append(segments, m.theme.Help.Render(m.help))
	}
	if m.status != "" {
		segments = append(segments, m.theme.Status.Render(m.status))
	}
	if label := m.mode.label(); label != "" {
		segments = append(segments, m.theme.Mode.Render(label))
	}
	if m.place != "" {
		segments = append(segments, m.theme.Mode.Render(m.place))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}
