package teaui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/ideapops/pkg/timeutil"
	"tableflip.dev/ideapops/pkg/tui/components/calendar"
	"tableflip.dev/ideapops/pkg/tui/components/stack"
	"tableflip.dev/ideapops/pkg/tui/theme"
)

const gridCardWidth = 20

// View renders the UI.
func (m *Model) View() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	switch m.mode {
	case modeEditor:
		sections = append(sections, m.renderEditor())
	case modeDrawer:
		sections = append(sections, m.renderDrawer())
	case modeConfirm:
		sections = append(sections, m.renderConfirm())
	default:
		sections = append(sections, m.renderBody())
	}

	sections = append(sections, m.bottom.View())
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader() string {
	daily := m.theme.Header.InactiveTab.Render("Daily")
	cal := m.theme.Header.InactiveTab.Render("Calendar")
	if m.view == viewDaily {
		daily = m.theme.Header.ActiveTab.Render("Daily")
	} else {
		cal = m.theme.Header.ActiveTab.Render("Calendar")
	}

	date := m.selectedDate
	if date == timeutil.Day(m.now()) {
		date += " · today"
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, daily, cal)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, m.theme.Header.Date.Render(" "+date))
}

func (m *Model) renderBody() string {
	if m.view == viewCalendar {
		return m.renderCalendar()
	}
	if m.present == presentGrid {
		return m.renderGrid()
	}
	return stack.Render(m.dayNotes(), &m.stack, m.theme)
}

// renderGrid lays the day's notes out as mini cards, newest first.
func (m *Model) renderGrid() string {
	notes := m.dayNotes()
	if len(notes) == 0 {
		return m.theme.Card.Empty.Render("  No ideas yet. Press o to pop one.")
	}

	perRow := 1
	if m.termWidth > 0 {
		perRow = m.termWidth / (gridCardWidth + 2)
	}
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(notes); start += perRow {
		end := start + perRow
		if end > len(notes) {
			end = len(notes)
		}
		var cards []string
		for _, n := range notes[start:end] {
			style := theme.CardStyle(n.Color).Width(gridCardWidth - 2)
			content := wordwrap.String(n.Content, gridCardWidth-4)
			cards = append(cards, style.Render(content), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderCalendar() string {
	month := m.cal.Month()
	title := m.theme.Calendar.Month.Render(" " + month.Format("January 2006"))
	grid := calendar.Render(month, m.calendarDays(), calendar.Options{
		HeaderStyle:   m.theme.Calendar.Header,
		EmptyStyle:    m.theme.Calendar.Empty,
		NoteStyle:     m.theme.Calendar.Notes,
		TodayStyle:    m.theme.Calendar.Today,
		SelectedStyle: m.theme.Calendar.Selected,
		CursorStyle:   m.theme.Calendar.Cursor,
		OverflowStyle: m.theme.Calendar.Overflow,
		DotStyle:      theme.DotStyle,
		ShowHeader:    true,
		ShowDots:      true,
	})
	return lipgloss.JoinVertical(lipgloss.Left, title, "", grid)
}

// calendarDays builds per-day decorations for the cursor's month.
func (m *Model) calendarDays() []calendar.Day {
	month := m.cal.Month()
	today := timeutil.Day(m.now())
	total := calendar.DaysIn(month)

	days := make([]calendar.Day, 0, total)
	for d := 1; d <= total; d++ {
		key := dayKey(month, d)
		notes := m.svc.NotesForDate(key)
		dots, overflow := calendar.DotsFor(notes)
		days = append(days, calendar.Day{
			Day:        d,
			IsToday:    key == today,
			IsSelected: key == m.selectedDate,
			IsCursor:   d == m.cal.Day(),
			Dots:       dots,
			Overflow:   overflow,
		})
	}
	return days
}

func (m *Model) renderEditor() string {
	title := "New idea"
	if m.editingID != "" {
		title = "Edit idea"
	}
	swatch := theme.DotStyle(m.editorColor).Render("●") + " " + string(m.editorColor)
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Modal.Title.Render(title),
		swatch,
		"",
		m.input.View(),
	)
	return m.theme.Modal.Frame.Render(body)
}

func (m *Model) renderDrawer() string {
	if m.target == nil {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Modal.Title.Render("Idea"),
		stack.Card(m.target, theme.CardStyle(m.target.Color)),
		"",
		m.theme.Modal.Body.Render("e edit · d delete · esc keep"),
	)
	return m.theme.Modal.Frame.Render(body)
}

func (m *Model) renderConfirm() string {
	content := ""
	if m.target != nil {
		content = m.target.Content
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Modal.Title.Render("Discard this idea?"),
		m.theme.Modal.Body.Render(wordwrap.String(content, stack.CardWidth)),
		"",
		m.theme.Modal.Body.Render("y discard · n keep"),
	)
	return m.theme.Modal.Frame.Render(body)
}

// dayKey formats a day of the cursor's month as a canonical local day string.
func dayKey(month time.Time, day int) string {
	t := time.Date(month.Year(), month.Month(), day, 12, 0, 0, 0, time.Local)
	return timeutil.Day(t)
}
