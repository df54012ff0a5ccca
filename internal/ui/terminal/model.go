// Package terminal hosts the session engine in a bubbletea program.
package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuscycle/internal/core/model"
	"focuscycle/internal/core/timekeeper"
	"focuscycle/internal/ui/format"
)

const (
	minBarWidth     = 10
	defaultBarWidth = 40
	padding         = 2
)

// Controls is the part of the TimeKeeper the terminal drives.
type Controls interface {
	TogglePause()
	Reset()
	IncreaseFocus() bool
	DecreaseFocus() bool
	IncreaseBreak() bool
	DecreaseBreak() bool
	Snapshot() timekeeper.Snapshot
}

type eventMsg timekeeper.Event

type closedMsg struct{}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6F61"))
	breakStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#43BF6D"))
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	boxStyle      = lipgloss.NewStyle().Padding(1, padding)
)

// Model is the bubbletea model for the terminal session view.
type Model struct {
	controls    Controls
	events      <-chan timekeeper.Event
	onDurations func(model.Durations)
	snapshot    timekeeper.Snapshot
	bar         progress.Model
}

// New creates a terminal model. events should come from TimeKeeper.Subscribe;
// onDurations is called after every accepted duration change.
func New(controls Controls, events <-chan timekeeper.Event, onDurations func(model.Durations)) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = defaultBarWidth
	return Model{
		controls:    controls,
		events:      events,
		onDurations: onDurations,
		snapshot:    controls.Snapshot(),
		bar:         bar,
	}
}

// Init starts listening for engine events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles key presses, window resizes and engine events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.bar.Width = max(minBarWidth, min(defaultBarWidth, msg.Width-2*padding))
		return m, nil
	case eventMsg:
		m.snapshot = msg.Snapshot
		return m, waitForEvent(m.events)
	case closedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "space", "p":
		m.controls.TogglePause()
	case "s", "x":
		m.controls.Reset()
	case "up", "k":
		m.changeDuration(m.controls.IncreaseFocus)
	case "down", "j":
		m.changeDuration(m.controls.DecreaseFocus)
	case "right", "l":
		m.changeDuration(m.controls.IncreaseBreak)
	case "left", "h":
		m.changeDuration(m.controls.DecreaseBreak)
	default:
		return m, nil
	}
	m.snapshot = m.controls.Snapshot()
	return m, nil
}

func (m Model) changeDuration(change func() bool) {
	if !change() || m.onDurations == nil {
		return
	}
	m.onDurations(m.controls.Snapshot().Durations)
}

// View renders the durations, the current session and the key help.
func (m Model) View() string {
	snapshot := m.snapshot

	var b strings.Builder
	b.WriteString(headerStyle.Render("FocusCycle"))
	b.WriteString("\n\n")

	durations := lockedStyle
	if snapshot.DurationsEditable() {
		durations = durationStyle
	}
	b.WriteString(durations.Render(format.FocusDuration(snapshot)))
	b.WriteString("\n")
	b.WriteString(durations.Render(format.BreakDuration(snapshot)))
	b.WriteString("\n\n")

	if snapshot.Session == nil {
		b.WriteString(format.Status(snapshot))
		b.WriteString("\n")
	} else {
		kindStyle := focusStyle
		if snapshot.Session.Kind == timekeeper.KindOnBreak {
			kindStyle = breakStyle
		}
		b.WriteString(kindStyle.Render(format.Title(snapshot)))
		b.WriteString("\n")
		b.WriteString(format.Subtitle(snapshot))
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(snapshot.Progress()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))

	return boxStyle.Render(b.String())
}

func (m Model) help() string {
	toggle := "space start"
	switch {
	case m.snapshot.Running:
		toggle = "space pause"
	case m.snapshot.Paused():
		toggle = "space resume"
	}
	parts := []string{toggle}
	if m.snapshot.CanReset() {
		parts = append(parts, "s stop")
	}
	if m.snapshot.DurationsEditable() {
		parts = append(parts, "↑/↓ focus", "←/→ break")
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " • ")
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}
