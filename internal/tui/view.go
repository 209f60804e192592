package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hibi-cli/hibi/internal/core/styles"
	"github.com/hibi-cli/hibi/internal/core/task"
)

var appStyle = lipgloss.NewStyle().Padding(1, 2)

func (m Model) View() string {
	switch m.mode {
	case modeAdd:
		return appStyle.Render(m.viewAdd())
	case modeConfirmDelete:
		return appStyle.Render(m.viewConfirmDelete())
	}

	var body string
	if m.svc.ActiveTab() == task.TabAnalytics {
		body = m.viewAnalytics()
	} else {
		body = m.viewTasks()
	}

	return appStyle.Render(m.viewHeader() + "\n\n" + body + "\n\n" + m.viewHelp())
}

func (m Model) viewHeader() string {
	tabs := make([]string, 0, 2)
	if m.svc.ActiveTab() == task.TabAnalytics {
		tabs = append(tabs,
			styles.TabInactiveStyle.Render("Tasks"),
			styles.TabActiveStyle.Render("Analytics"),
		)
	} else {
		tabs = append(tabs,
			styles.TabActiveStyle.Render("Tasks"),
			styles.TabInactiveStyle.Render("Analytics"),
		)
	}

	day := m.svc.SelectedDate()
	dateLabel := string(day)
	if day == task.DayOf(m.svc.Now()) {
		dateLabel += " (today)"
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		strings.Join(tabs, " "),
		"  ",
		styles.TitleStyle.Render(dateLabel),
	)
}

func (m Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return styles.MutedStyle.Render("no tasks for this day; press a to add one")
	}

	var b strings.Builder
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.index {
			cursor = styles.TitleStyle.Render("> ")
		}

		carried := " "
		if t.CarriedOver {
			carried = styles.WarningStyle.Render("*")
		}

		schedule := "     "
		if t.ScheduledStart != "" {
			schedule = t.ScheduledStart
		}

		status := statusLabel(t.Status)
		timer := formatClock(m.svc.Elapsed(t.ID))
		if t.Status == task.StatusInProgress {
			timer = styles.TimerStyle.Render(timer)
		} else {
			timer = styles.MutedStyle.Render(timer)
		}

		title := t.Title
		if t.Status == task.StatusCompleted {
			title = styles.StatusCompletedStyle.Render(title)
		} else if i == m.index {
			title = styles.SelectedStyle.Render(title)
		}

		genre := ""
		if t.Genre != "" {
			genre = styles.MutedStyle.Render("[" + t.Genre + "]")
		}

		fmt.Fprintf(&b, "%s%s %s %s %s %s %s\n",
			cursor, carried, schedule, status, timer, title, genre)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewAnalytics() string {
	day := m.svc.SelectedDate()
	stats := m.svc.Stats(day)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styles.TableHeadStyle.Render("Day"))
	fmt.Fprintf(&b, "  tasks      %d (%d done, %.0f%%)\n",
		stats.TotalTasks, stats.CompletedTasks, stats.CompletionRate*100)
	fmt.Fprintf(&b, "  time spent %s\n", formatClock(stats.TotalTime))

	genreRows := m.svc.GenreStats(day)
	if len(genreRows) > 0 {
		b.WriteString("\n" + styles.TableHeadStyle.Render("By genre") + "\n")
		writeGenreBars(&b, genreRows)
	}

	weekly := m.svc.WeeklyStats()
	if len(weekly) > 0 {
		b.WriteString("\n" + styles.TableHeadStyle.Render("Last 7 days") + "\n")
		writeGenreBars(&b, weekly)
	}

	return b.String()
}

func writeGenreBars(b *strings.Builder, rows []task.GenreStat) {
	var max int64
	nameWidth := 0
	for _, r := range rows {
		if r.TotalTime > max {
			max = r.TotalTime
		}
		if len(r.Genre) > nameWidth {
			nameWidth = len(r.Genre)
		}
	}

	for _, r := range rows {
		width := 0
		if max > 0 {
			width = int(r.TotalTime * 20 / max)
		}
		bar := styles.BarStyle.Render(strings.Repeat("█", width))
		fmt.Fprintf(b, "  %-*s %8s %s\n", nameWidth, r.Genre, formatClock(r.TotalTime), bar)
	}
}

func (m Model) viewAdd() string {
	genre := styles.MutedStyle.Render("(none)")
	if len(m.genres) > 0 {
		genre = m.genres[m.genreIndex]
	}
	if m.focused == fieldGenre {
		genre = styles.SelectedStyle.Render("< " + genre + " >")
	}

	lines := []string{
		styles.TitleStyle.Render("New Task"),
		"",
		"title:    " + m.titleInput.View(),
		"genre:    " + genre,
		"start:    " + m.startInput.View(),
		"duration: " + m.durationInput.View(),
	}
	if m.formErr != "" {
		lines = append(lines, "", styles.ErrorStyle.Render(m.formErr))
	}
	lines = append(lines, "", styles.MutedStyle.Render("tab: next field • enter: save • esc: cancel"))
	return strings.Join(lines, "\n")
}

func (m Model) viewConfirmDelete() string {
	t, _ := m.selected()
	return styles.WarningStyle.Render("Delete task?") + "\n\n" +
		"  " + t.Title + "\n\n" +
		styles.MutedStyle.Render("y: delete • n/esc: cancel")
}

func (m Model) viewHelp() string {
	return styles.MutedStyle.Render(
		"s start  p pause  c complete  r reset  d delete  a add  h/l day  t today  tab view  q quit")
}

func statusLabel(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return styles.StatusInProgressStyle.Render("▶ running  ")
	case task.StatusPaused:
		return styles.StatusPausedStyle.Render("⏸ paused   ")
	case task.StatusCompleted:
		return styles.StatusCompletedStyle.Render("✓ done     ")
	default:
		return styles.StatusPendingStyle.Render("· pending  ")
	}
}

// formatClock renders seconds as h:mm:ss, dropping the hour when zero.
func formatClock(seconds int64) string {
	h := seconds / 3600
	mnt := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mnt, s)
	}
	return fmt.Sprintf("%d:%02d", mnt, s)
}
