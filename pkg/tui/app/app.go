// Package teaui hosts the Bubble Tea program for the IdeaPops TUI.
package teaui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ideapops/pkg/app"
	"tableflip.dev/ideapops/pkg/gesture"
	"tableflip.dev/ideapops/pkg/note"
	"tableflip.dev/ideapops/pkg/store"
	"tableflip.dev/ideapops/pkg/timeutil"
	"tableflip.dev/ideapops/pkg/tui/components/bottombar"
	"tableflip.dev/ideapops/pkg/tui/components/calendar"
	"tableflip.dev/ideapops/pkg/tui/components/stack"
	"tableflip.dev/ideapops/pkg/tui/theme"
)

// mode is the single mutually-exclusive active flow. Collapsing the editor,
// drawer, and confirmation into one variant makes "editor and drawer open at
// once" unrepresentable.
type mode int

const (
	modeNormal mode = iota
	modeEditor
	modeDrawer
	modeConfirm
)

type topView int

const (
	viewDaily topView = iota
	viewCalendar
)

type presentation int

const (
	presentStack presentation = iota
	presentGrid
)

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc

	mode         mode
	view         topView
	present      presentation
	selectedDate string

	// editor flow; editingID is empty while creating
	editingID   string
	editorColor note.Color
	input       textinput.Model

	// action flow target
	target *note.Note

	picker *note.Picker
	stack  stack.State
	cal    calendar.Cursor
	gest   *gesture.Recognizer

	termWidth  int
	termHeight int

	bottom bottombar.Model
	theme  theme.Theme

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	now func() time.Time
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "What's the idea?"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())
	today := timeutil.Today()

	m := &Model{
		svc:          svc,
		ctx:          ctx,
		cancel:       cancel,
		mode:         modeNormal,
		view:         viewDaily,
		present:      presentStack,
		selectedDate: today,
		input:        ti,
		picker:       note.NewPicker(),
		cal:          calendar.NewCursor(today),
		gest:         gesture.NewRecognizer(),
		bottom:       bottombar.New(th.Footer),
		theme:        th,
		now:          time.Now,
	}
	m.updateFooter()
	return m
}

// Init loads initial data and subscribes to blob changes on disk.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadNotes(), startWatchCmd(m.ctx, m.svc))
}

// messages
type errMsg struct{ err error }
type holdTickMsg struct{ seq int }

// notesLoadedMsg carries the freshly read collection back to the event loop.
// The command goroutine never touches the service; Update installs the notes,
// keeping the store single-writer.
type notesLoadedMsg struct {
	notes []*note.Note
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{}
type watchStoppedMsg struct{}

func (m *Model) loadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.svc.Fetch(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return notesLoadedMsg{notes: notes}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return watchEventMsg{}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles incoming events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	case tea.MouseClickMsg:
		m.handleMousePress(msg, &cmds)
	case tea.MouseMotionMsg:
		m.handleMouseMove(msg)
	case tea.MouseReleaseMsg:
		m.handleMouseRelease(msg)
	case holdTickMsg:
		if _, ok := m.gest.HoldExpired(msg.seq); ok && m.mode == modeNormal {
			m.openDrawer(m.activeNote())
		}
	case tea.FocusMsg:
		m.checkDayRollover()
	case notesLoadedMsg:
		m.svc.Replace(msg.notes)
	case watchStartedMsg:
		if msg.err == nil {
			m.watchCh = msg.ch
			m.watchCancel = msg.cancel
			cmds = append(cmds, m.waitForWatch())
		}
	case watchEventMsg:
		cmds = append(cmds, m.loadNotes(), m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case errMsg:
		m.setStatus("ERR: " + msg.err.Error())
	}

	m.updateFooter()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeEditor:
		m.handleEditorKey(msg, cmds)
	case modeDrawer:
		m.handleDrawerKey(msg)
	case modeConfirm:
		m.handleConfirmKey(msg)
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.stopWatch()
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		*cmds = append(*cmds, tea.Quit)
	case "d", "1":
		// Back to Daily; presentation survives the round trip.
		m.view = viewDaily
	case "c", "2":
		// The hidden daily pane is forced back to stack mode.
		m.view = viewCalendar
		m.present = presentStack
		m.cal = calendar.NewCursor(m.selectedDate)
	case "tab":
		if m.view == viewDaily {
			m.view = viewCalendar
			m.present = presentStack
			m.cal = calendar.NewCursor(m.selectedDate)
		} else {
			m.view = viewDaily
		}
	case "g":
		if m.view == viewDaily {
			if m.present == presentStack {
				m.present = presentGrid
			} else {
				m.present = presentStack
			}
		}
	case "o", "a":
		m.beginCreate(cmds)
	case "r":
		*cmds = append(*cmds, m.loadNotes())
	case "t":
		if m.view == viewCalendar {
			m.cal = calendar.NewCursor(timeutil.Day(m.now()))
		}
	case "space":
		if m.view == viewDaily && m.present == presentStack {
			m.advanceStack()
		}
	case "enter":
		switch m.view {
		case viewCalendar:
			m.selectDay(m.cal.Date())
		default:
			if m.present == presentStack {
				m.openDrawer(m.activeNote())
			}
		}
	case "left", "h":
		if m.view == viewCalendar {
			m.cal.MoveDay(-1)
		}
	case "right", "l":
		if m.view == viewCalendar {
			m.cal.MoveDay(1)
		} else if m.present == presentStack {
			m.advanceStack()
		}
	case "up", "k":
		if m.view == viewCalendar {
			m.cal.MoveDay(-7)
		}
	case "down", "j":
		if m.view == viewCalendar {
			m.cal.MoveDay(7)
		}
	case "pgup", "[":
		if m.view == viewCalendar {
			m.cal.Prev()
		}
	case "pgdown", "]":
		if m.view == viewCalendar {
			m.cal.Next()
		}
	}
}

func (m *Model) handleEditorKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submitEditor()
	case "esc":
		m.cancelEditor()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) handleDrawerKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "e":
		target := m.target
		m.closeFlow()
		m.beginEditOf(target)
	case "d":
		// Drawer closes; deletion still needs confirmation.
		m.mode = modeConfirm
	default:
		// Any other dismissal keeps the note.
		m.closeFlow()
		m.setStatus("Kept")
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "y", "enter":
		if m.target != nil {
			m.svc.Remove(m.target.ID)
		}
		m.closeFlow()
		m.setStatus("Idea discarded")
	default:
		m.closeFlow()
		m.setStatus("Kept")
	}
}

// Mouse input drives the stack's swipe and long-press gestures. Gestures only
// exist in the daily stack when no flow is open.
func (m *Model) gesturesActive() bool {
	return m.mode == modeNormal && m.view == viewDaily && m.present == presentStack
}

func (m *Model) handleMousePress(msg tea.MouseClickMsg, cmds *[]tea.Cmd) {
	if !m.gesturesActive() || msg.Button != tea.MouseLeft {
		return
	}
	seq := m.gest.Press(msg.X, msg.Y)
	hold := m.gest.HoldDuration
	*cmds = append(*cmds, tea.Tick(hold, func(time.Time) tea.Msg {
		return holdTickMsg{seq: seq}
	}))
}

func (m *Model) handleMouseMove(msg tea.MouseMotionMsg) {
	if !m.gesturesActive() {
		m.gest.Cancel()
		return
	}
	if ev, ok := m.gest.Move(msg.X, msg.Y); ok && ev.Kind == gesture.Swipe {
		m.advanceStack()
	}
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) {
	if !m.gesturesActive() {
		m.gest.Cancel()
		return
	}
	if ev, ok := m.gest.Release(msg.X, msg.Y); ok && ev.Kind == gesture.Swipe {
		m.advanceStack()
	}
}

func (m *Model) advanceStack() {
	if len(m.dayNotes()) == 0 {
		return
	}
	m.stack.Advance()
}

func (m *Model) dayNotes() []*note.Note {
	return m.svc.NotesForDate(m.selectedDate)
}

func (m *Model) activeNote() *note.Note {
	notes := m.dayNotes()
	idx := m.stack.Active(len(notes))
	if idx < 0 {
		return nil
	}
	return notes[idx]
}

// selectDay commits a calendar choice: back to the daily view, stack mode,
// pile rewound.
func (m *Model) selectDay(day string) {
	m.selectedDate = day
	m.view = viewDaily
	m.present = presentStack
	m.stack.Reset()
}

// checkDayRollover advances the selection when the app regains focus on a
// later local calendar day. Comparison is on canonical day strings; raw
// timestamps would be off by one around midnight in non-UTC zones. Only the
// selection moves; whatever view the user is in stays put.
func (m *Model) checkDayRollover() {
	today := timeutil.Day(m.now())
	if timeutil.After(today, m.selectedDate) {
		m.selectedDate = today
		m.stack.Reset()
		m.setStatus("New day")
	}
}

func (m *Model) beginCreate(cmds *[]tea.Cmd) {
	m.mode = modeEditor
	m.editingID = ""
	m.input.Reset()
	exclude, ok := m.svc.LastColorOn(m.selectedDate)
	if !ok {
		exclude = ""
	}
	m.editorColor = m.picker.Color(exclude)
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) beginEditOf(n *note.Note) {
	if n == nil {
		return
	}
	m.mode = modeEditor
	m.editingID = n.ID
	m.editorColor = n.Color
	m.input.SetValue(n.Content)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) submitEditor() {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		// Refused; the editor stays open so the buffer can be fixed.
		m.setStatus("Idea is empty")
		return
	}
	if m.editingID == "" {
		n := note.New(content, m.selectedDate, m.editorColor, m.picker.Rotation())
		if err := m.svc.Add(n); err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.setStatus("Popped")
	} else {
		if err := m.svc.UpdateContent(m.editingID, content); err != nil {
			m.setStatus("Idea vanished")
		} else {
			m.setStatus("Updated")
		}
	}
	m.closeEditor()
}

func (m *Model) cancelEditor() {
	m.closeEditor()
	m.setStatus("Cancelled")
}

func (m *Model) closeEditor() {
	m.mode = modeNormal
	m.editingID = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) openDrawer(n *note.Note) {
	if n == nil {
		return
	}
	m.target = n
	m.mode = modeDrawer
}

// closeFlow returns to normal mode and drops the action target.
func (m *Model) closeFlow() {
	m.mode = modeNormal
	m.target = nil
}

func (m *Model) setStatus(s string) {
	m.bottom.SetStatus(s)
}

func (m *Model) updateFooter() {
	switch m.mode {
	case modeEditor:
		m.bottom.SetMode(bottombar.ModeEditor)
		m.bottom.SetHelp("enter save · esc cancel")
	case modeDrawer:
		m.bottom.SetMode(bottombar.ModeDrawer)
		m.bottom.SetHelp("e edit · d delete · esc keep")
	case modeConfirm:
		m.bottom.SetMode(bottombar.ModeConfirm)
		m.bottom.SetHelp("y discard · n keep")
	default:
		m.bottom.SetMode(bottombar.ModeNormal)
		switch {
		case m.view == viewCalendar:
			m.bottom.SetHelp("arrows move · [/] month · enter open day · tab daily · q quit")
		case m.present == presentGrid:
			m.bottom.SetHelp("g stack · o new · tab calendar · q quit")
		default:
			m.bottom.SetHelp("space next · enter actions · o new · g grid · tab calendar · q quit")
		}
	}
	m.bottom.SetPlace(m.placeLabel())
}

func (m *Model) placeLabel() string {
	switch {
	case m.view == viewCalendar:
		return "calendar"
	case m.present == presentGrid:
		return "grid · " + m.selectedDate
	default:
		return "stack · " + m.selectedDate
	}
}

// Run launches the interactive TUI program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
