package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibi-cli/hibi/internal/core/task"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{name: "zero", seconds: 0, want: "0s"},
		{name: "seconds only", seconds: 42, want: "42s"},
		{name: "minutes", seconds: 90, want: "1m30s"},
		{name: "hours", seconds: 3723, want: "1h02m03s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.seconds))
		})
	}
}

func TestParseDayFlag(t *testing.T) {
	today := task.Day("2024-05-02")

	t.Run("empty defaults to today", func(t *testing.T) {
		d, err := parseDayFlag("", today)
		require.NoError(t, err)
		assert.Equal(t, today, d)
	})

	t.Run("explicit day", func(t *testing.T) {
		d, err := parseDayFlag("2024-01-31", today)
		require.NoError(t, err)
		assert.Equal(t, task.Day("2024-01-31"), d)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parseDayFlag("05/02/2024", today)
		assert.Error(t, err)
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("123456789abcdef"))
}
