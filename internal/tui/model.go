// Package tui implements the interactive terminal frontend.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/internal/hibi"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmDelete
)

// addField identifies which input of the add form has focus.
type addField int

const (
	fieldTitle addField = iota
	fieldGenre
	fieldStart
	fieldDuration
	fieldCount
)

type tickMsg time.Time

// Model is the top-level bubbletea model. It holds a cursor into the
// selected day's task list plus the add-form inputs; all task state
// lives in the service.
type Model struct {
	svc  *hibi.Service
	log  zerolog.Logger
	keys keyMap

	mode  mode
	tasks []task.Task
	index int

	titleInput    textinput.Model
	startInput    textinput.Model
	durationInput textinput.Model
	genres        []string
	genreIndex    int
	focused       addField
	formErr       string

	width  int
	height int
}

// New creates a TUI model bound to the service.
func New(svc *hibi.Service, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = 256

	si := textinput.New()
	si.Placeholder = "09:00"
	si.CharLimit = 5

	di := textinput.New()
	di.Placeholder = "30"
	di.CharLimit = 4

	m := Model{
		svc:           svc,
		log:           log.With().Str("component", "tui").Logger(),
		keys:          newKeyMap(),
		titleInput:    ti,
		startInput:    si,
		durationInput: di,
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reload refreshes the task slice for the selected day and clamps the
// cursor.
func (m *Model) reload() {
	m.tasks = m.svc.TasksForDate(m.svc.SelectedDate())
	if m.index >= len(m.tasks) {
		m.index = len(m.tasks) - 1
	}
	if m.index < 0 {
		m.index = 0
	}
}

func (m *Model) selected() (task.Task, bool) {
	if len(m.tasks) == 0 || m.index >= len(m.tasks) {
		return task.Task{}, false
	}
	return m.tasks[m.index], true
}

// refreshElapsed pushes live counters for in-progress tasks so the
// list renders a ticking timer.
func (m *Model) refreshElapsed(now time.Time) {
	for _, t := range m.tasks {
		if t.Status == task.StatusInProgress && t.AccrualStart != nil {
			m.svc.UpdateElapsed(t.ID, int64(now.Sub(*t.AccrualStart).Seconds()))
		}
	}
}
