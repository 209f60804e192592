package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf_BucketsByCalendarDay(t *testing.T) {
	// Two minutes apart across midnight land in different buckets.
	before := time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local)
	after := time.Date(2024, 5, 2, 0, 1, 0, 0, time.Local)

	assert.Equal(t, Day("2024-05-01"), DayOf(before))
	assert.Equal(t, Day("2024-05-02"), DayOf(after))
	assert.NotEqual(t, DayOf(before), DayOf(after))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, Day("2024-05-01"), d)

	_, err = ParseDay("05/01/2024")
	assert.Error(t, err)
}

func TestDay_AddDays(t *testing.T) {
	tests := []struct {
		name string
		day  Day
		n    int
		want Day
	}{
		{"previous day", "2024-05-01", -1, "2024-04-30"},
		{"next day", "2024-05-01", 1, "2024-05-02"},
		{"month boundary", "2024-03-01", -1, "2024-02-29"},
		{"year boundary", "2024-01-01", -1, "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.day.AddDays(tt.n))
		})
	}
}

func TestDay_Contains(t *testing.T) {
	d := Day("2024-05-01")
	assert.True(t, d.Contains(time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, d.Contains(time.Date(2024, 5, 1, 23, 59, 59, 0, time.Local)))
	assert.False(t, d.Contains(time.Date(2024, 5, 2, 0, 0, 1, 0, time.Local)))
}

func TestDay_Valid(t *testing.T) {
	assert.True(t, Day("2024-05-01").Valid())
	assert.False(t, Day("").Valid())
	assert.False(t, Day("2024-13-01").Valid())
	assert.False(t, Day("yesterday").Valid())
}
