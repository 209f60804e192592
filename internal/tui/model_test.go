package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibi-cli/hibi/internal/core/config"
	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/internal/hibi"
	"github.com/hibi-cli/hibi/internal/store/jsonfile"
)

func newTestModel(t *testing.T) (Model, *hibi.Service) {
	t.Helper()
	store := jsonfile.NewStateStore(filepath.Join(t.TempDir(), "state.json"))
	cfg := config.DefaultConfig()
	svc := hibi.NewService(store, &cfg, zerolog.Nop())
	return New(svc, zerolog.Nop()), svc
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func seed(t *testing.T, svc *hibi.Service, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := svc.Add(hibi.AddInput{Title: title, Genre: "Client Work"})
		require.NoError(t, err)
	}
}

func TestModel_Navigation(t *testing.T) {
	m, svc := newTestModel(t)
	seed(t, svc, "first", "second", "third")
	m.reload()

	var model tea.Model = m
	model = press(t, model, "j", "j")
	assert.Equal(t, 2, model.(Model).index)

	model = press(t, model, "j")
	assert.Equal(t, 2, model.(Model).index, "cursor stops at last task")

	model = press(t, model, "k", "k", "k")
	assert.Equal(t, 0, model.(Model).index, "cursor stops at first task")
}

func TestModel_Lifecycle(t *testing.T) {
	m, svc := newTestModel(t)
	seed(t, svc, "deep work")
	m.reload()

	var model tea.Model = m
	model = press(t, model, "s")
	cur := model.(Model)
	require.Len(t, cur.tasks, 1)
	assert.Equal(t, task.StatusInProgress, cur.tasks[0].Status)

	model = press(t, model, "p")
	assert.Equal(t, task.StatusPaused, model.(Model).tasks[0].Status)

	model = press(t, model, "c")
	assert.Equal(t, task.StatusCompleted, model.(Model).tasks[0].Status)

	model = press(t, model, "r")
	assert.Equal(t, task.StatusPending, model.(Model).tasks[0].Status)
}

func TestModel_DeleteRequiresConfirmation(t *testing.T) {
	m, svc := newTestModel(t)
	seed(t, svc, "doomed")
	m.reload()

	var model tea.Model = m
	model = press(t, model, "d")
	assert.Equal(t, modeConfirmDelete, model.(Model).mode)

	model = press(t, model, "n")
	assert.Equal(t, modeList, model.(Model).mode)
	assert.Len(t, svc.All(), 1, "declining keeps the task")

	model = press(t, model, "d", "y")
	assert.Equal(t, modeList, model.(Model).mode)
	assert.Empty(t, svc.All())
	_ = model
}

func TestModel_DateCursor(t *testing.T) {
	m, svc := newTestModel(t)
	today := task.DayOf(svc.Now())

	var model tea.Model = m
	model = press(t, model, "h")
	assert.Equal(t, today.AddDays(-1), svc.SelectedDate())

	model = press(t, model, "l", "l")
	assert.Equal(t, today.AddDays(1), svc.SelectedDate())

	model = press(t, model, "t")
	assert.Equal(t, today, svc.SelectedDate())
	_ = model
}

func TestModel_TabSwitchPersists(t *testing.T) {
	m, svc := newTestModel(t)

	var model tea.Model = m
	model = press(t, model, "tab")
	assert.Equal(t, task.TabAnalytics, svc.ActiveTab())

	model = press(t, model, "tab")
	assert.Equal(t, task.TabTasks, svc.ActiveTab())
	_ = model
}

func TestModel_AddForm(t *testing.T) {
	t.Run("creates a task on the selected day", func(t *testing.T) {
		m, svc := newTestModel(t)

		var model tea.Model = m
		model = press(t, model, "a")
		assert.Equal(t, modeAdd, model.(Model).mode)

		model = press(t, model, "w", "r", "i", "t", "e", "enter")
		cur := model.(Model)
		assert.Equal(t, modeList, cur.mode)

		all := svc.All()
		require.Len(t, all, 1)
		assert.Equal(t, "write", all[0].Title)
		assert.Equal(t, task.DayOf(svc.Now()), all[0].Day)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		m, _ := newTestModel(t)

		var model tea.Model = m
		model = press(t, model, "a", "enter")
		cur := model.(Model)
		assert.Equal(t, modeAdd, cur.mode)
		assert.NotEmpty(t, cur.formErr)
	})

	t.Run("esc cancels without creating", func(t *testing.T) {
		m, svc := newTestModel(t)

		var model tea.Model = m
		model = press(t, model, "a", "x", "esc")
		assert.Equal(t, modeList, model.(Model).mode)
		assert.Empty(t, svc.All())
	})
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(0))
	assert.Equal(t, "1:05", formatClock(65))
	assert.Equal(t, "1:00:05", formatClock(3605))
}
