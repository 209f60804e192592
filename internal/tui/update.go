package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/internal/hibi"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refreshElapsed(time.Time(msg))
		return m, tick()
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Tab):
		next := task.TabAnalytics
		if m.svc.ActiveTab() == task.TabAnalytics {
			next = task.TabTasks
		}
		m.svc.SetActiveTab(next)
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.index > 0 {
			m.index--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.index < len(m.tasks)-1 {
			m.index++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevDay):
		m.svc.SetSelectedDate(m.svc.SelectedDate().AddDays(-1))
		m.index = 0
		m.reload()
		return m, nil

	case key.Matches(keyMsg, m.keys.NextDay):
		m.svc.SetSelectedDate(m.svc.SelectedDate().AddDays(1))
		m.index = 0
		m.reload()
		return m, nil

	case key.Matches(keyMsg, m.keys.Today):
		m.svc.SetSelectedDate(task.DayOf(m.svc.Now()))
		m.index = 0
		m.reload()
		return m, nil

	case key.Matches(keyMsg, m.keys.Add):
		m.mode = modeAdd
		m.focused = fieldTitle
		m.formErr = ""
		m.titleInput.Reset()
		m.startInput.Reset()
		m.durationInput.Reset()
		m.genres = m.svc.Genres()
		m.genreIndex = 0
		m.startInput.Blur()
		m.durationInput.Blur()
		return m, m.titleInput.Focus()

	case key.Matches(keyMsg, m.keys.Start):
		if t, ok := m.selected(); ok {
			m.svc.Start(t.ID)
			m.reload()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Pause):
		if t, ok := m.selected(); ok {
			m.svc.Pause(t.ID)
			m.reload()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Complete):
		if t, ok := m.selected(); ok {
			m.svc.Complete(t.ID)
			m.reload()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Reset):
		if t, ok := m.selected(); ok {
			m.svc.ResetStatus(t.ID)
			m.reload()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = modeList
		return m, nil

	case "enter":
		return m.submitAdd()

	case "tab", "down":
		return m.focusField((m.focused + 1) % fieldCount)

	case "shift+tab", "up":
		return m.focusField((m.focused + fieldCount - 1) % fieldCount)

	case "left", "right":
		if m.focused == fieldGenre && len(m.genres) > 0 {
			if keyMsg.String() == "left" {
				m.genreIndex = (m.genreIndex + len(m.genres) - 1) % len(m.genres)
			} else {
				m.genreIndex = (m.genreIndex + 1) % len(m.genres)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focused {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case fieldDuration:
		m.durationInput, cmd = m.durationInput.Update(msg)
	}
	return m, cmd
}

func (m Model) focusField(f addField) (tea.Model, tea.Cmd) {
	m.focused = f
	m.titleInput.Blur()
	m.startInput.Blur()
	m.durationInput.Blur()

	switch f {
	case fieldTitle:
		return m, m.titleInput.Focus()
	case fieldStart:
		return m, m.startInput.Focus()
	case fieldDuration:
		return m, m.durationInput.Focus()
	default:
		return m, nil
	}
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.formErr = "title is required"
		return m, nil
	}

	mins := 0
	if v := strings.TrimSpace(m.durationInput.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			m.formErr = "duration must be a number of minutes"
			return m, nil
		}
		mins = n
	}

	genre := ""
	if len(m.genres) > 0 {
		genre = m.genres[m.genreIndex]
	}

	if _, err := m.svc.Add(hibi.AddInput{
		Title:          title,
		Genre:          genre,
		ScheduledStart: strings.TrimSpace(m.startInput.Value()),
		ScheduledMins:  mins,
		Day:            m.svc.SelectedDate(),
	}); err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	m.mode = modeList
	m.reload()
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if t, ok := m.selected(); ok {
			m.svc.Delete(t.ID)
		}
		m.mode = modeList
		m.reload()
		return m, nil
	case "n", "esc":
		m.mode = modeList
		return m, nil
	}
	return m, nil
}
