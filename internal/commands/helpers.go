package commands

import (
	"fmt"

	"github.com/hibi-cli/hibi/internal/core/styles"
	"github.com/hibi-cli/hibi/internal/core/task"
)

// formatDuration renders accrued seconds as "1h23m45s" style, trimming
// leading zero units.
func formatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// statusStyle returns the lipgloss style matching a task status.
func statusStyle(s task.Status) func(...string) string {
	switch s {
	case task.StatusInProgress:
		return styles.StatusInProgressStyle.Render
	case task.StatusPaused:
		return styles.StatusPausedStyle.Render
	case task.StatusCompleted:
		return styles.StatusCompletedStyle.Render
	default:
		return styles.StatusPendingStyle.Render
	}
}

// parseDayFlag interprets an optional --date value, defaulting to today.
func parseDayFlag(value string, today task.Day) (task.Day, error) {
	if value == "" {
		return today, nil
	}
	d, err := task.ParseDay(value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return d, nil
}
