package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

func at(minutes int) time.Time {
	return t0.Add(time.Duration(minutes) * time.Minute)
}

func TestTask_Start(t *testing.T) {
	t.Run("from pending sets both start markers", func(t *testing.T) {
		tk := Task{Status: StatusPending}

		require.True(t, tk.Start(t0))

		assert.Equal(t, StatusInProgress, tk.Status)
		require.NotNil(t, tk.StartedAt)
		assert.Equal(t, t0, *tk.StartedAt)
		require.NotNil(t, tk.AccrualStart)
		assert.Equal(t, t0, *tk.AccrualStart)
		assert.Zero(t, tk.TotalTime, "starting must not touch accrued time")
	})

	t.Run("resume keeps original StartedAt and folds pause gap", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))
		require.True(t, tk.Pause(at(30)))

		require.True(t, tk.Start(at(40)))

		assert.Equal(t, StatusInProgress, tk.Status)
		assert.Equal(t, t0, *tk.StartedAt, "resume must not reset the display start")
		assert.Equal(t, at(40), *tk.AccrualStart, "resume must open a fresh accrual interval")
		assert.Nil(t, tk.PausedAt)
		assert.Equal(t, int64(600), tk.TotalPaused)
	})

	t.Run("no-op from in-progress", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))

		assert.False(t, tk.Start(at(5)))
		assert.Equal(t, t0, *tk.AccrualStart)
	})

	t.Run("no-op from completed", func(t *testing.T) {
		tk := Task{Status: StatusCompleted}
		assert.False(t, tk.Start(t0))
		assert.Equal(t, StatusCompleted, tk.Status)
	})
}

func TestTask_Pause(t *testing.T) {
	t.Run("closes open interval into total time", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))

		require.True(t, tk.Pause(at(30)))

		assert.Equal(t, StatusPaused, tk.Status)
		assert.Equal(t, int64(1800), tk.TotalTime)
		assert.NotNil(t, tk.StartedAt, "pause keeps the display start")
		assert.Nil(t, tk.AccrualStart)
		require.NotNil(t, tk.PausedAt)
		assert.Equal(t, at(30), *tk.PausedAt)
	})

	t.Run("immediate pause leaves total time unchanged", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))
		require.True(t, tk.Pause(t0))
		assert.Zero(t, tk.TotalTime)
	})

	t.Run("pause cycles accrue additively without double counting", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))
		require.True(t, tk.Pause(at(10)))
		require.True(t, tk.Start(at(20)))
		require.True(t, tk.Pause(at(35)))

		assert.Equal(t, int64(25*60), tk.TotalTime)
		assert.Equal(t, int64(10*60), tk.TotalPaused)
	})

	t.Run("no-op unless in-progress", func(t *testing.T) {
		for _, status := range []Status{StatusPending, StatusPaused, StatusCompleted} {
			tk := Task{Status: status}
			assert.False(t, tk.Pause(t0), "pause from %s", status)
			assert.Equal(t, status, tk.Status)
		}
	})
}

func TestTask_Complete(t *testing.T) {
	t.Run("folds exactly one open interval", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))

		require.True(t, tk.Complete(at(30)))

		assert.Equal(t, StatusCompleted, tk.Status)
		assert.Equal(t, int64(1800), tk.TotalTime)
		require.NotNil(t, tk.CompletedAt)
		assert.Equal(t, at(30), *tk.CompletedAt)
		assert.NotNil(t, tk.StartedAt, "complete keeps the start for audit")
	})

	t.Run("from paused folds pause gap, not active time", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))
		require.True(t, tk.Pause(at(30)))

		require.True(t, tk.Complete(at(45)))

		assert.Equal(t, int64(1800), tk.TotalTime)
		assert.Equal(t, int64(900), tk.TotalPaused)
		assert.Nil(t, tk.PausedAt)
	})

	t.Run("from pending records completion with zero time", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Complete(t0))
		assert.Zero(t, tk.TotalTime)
		assert.Equal(t, StatusCompleted, tk.Status)
	})

	t.Run("second complete is a no-op", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))
		require.True(t, tk.Complete(at(30)))

		assert.False(t, tk.Complete(at(60)))
		assert.Equal(t, int64(1800), tk.TotalTime, "no further accrual after completion")
		assert.Equal(t, at(30), *tk.CompletedAt)
	})
}

func TestTask_Reset(t *testing.T) {
	t.Run("zeroes timing and returns to pending", func(t *testing.T) {
		tk := Task{Status: StatusPending}
		require.True(t, tk.Start(t0))
		require.True(t, tk.Pause(at(30)))
		require.True(t, tk.Complete(at(40)))

		require.True(t, tk.Reset())

		assert.Equal(t, StatusPending, tk.Status)
		assert.Nil(t, tk.StartedAt)
		assert.Nil(t, tk.CompletedAt)
		assert.Nil(t, tk.PausedAt)
		assert.Nil(t, tk.AccrualStart)
		assert.Zero(t, tk.TotalTime)
		assert.Zero(t, tk.TotalPaused)
	})

	t.Run("only valid from completed", func(t *testing.T) {
		for _, status := range []Status{StatusPending, StatusInProgress, StatusPaused} {
			tk := Task{Status: status, TotalTime: 100}
			assert.False(t, tk.Reset(), "reset from %s", status)
			assert.Equal(t, int64(100), tk.TotalTime)
		}
	})
}

func TestTask_TotalTimeMonotonic(t *testing.T) {
	// TotalTime must never decrease across any transition sequence.
	tk := Task{Status: StatusPending}
	prev := tk.TotalTime

	steps := []func() bool{
		func() bool { return tk.Start(at(0)) },
		func() bool { return tk.Pause(at(7)) },
		func() bool { return tk.Start(at(9)) },
		func() bool { return tk.Pause(at(9)) },
		func() bool { return tk.Start(at(12)) },
		func() bool { return tk.Complete(at(20)) },
		func() bool { return tk.Complete(at(25)) },
	}
	for i, step := range steps {
		step()
		require.GreaterOrEqual(t, tk.TotalTime, prev, "step %d decreased total time", i)
		prev = tk.TotalTime
	}
	assert.Equal(t, int64(15*60), tk.TotalTime)
}

func TestTask_Elapsed(t *testing.T) {
	tk := Task{Status: StatusPending}
	assert.Zero(t, tk.Elapsed(t0))

	require.True(t, tk.Start(t0))
	assert.Equal(t, int64(300), tk.Elapsed(at(5)), "in-progress shows accrued plus open interval")

	require.True(t, tk.Pause(at(10)))
	assert.Equal(t, int64(600), tk.Elapsed(at(25)), "paused shows accrued time only")
}

func TestTask_ScheduledEnd(t *testing.T) {
	tests := []struct {
		name  string
		start string
		mins  int
		want  string
	}{
		{"start plus duration", "09:00", 60, "10:00"},
		{"crosses the hour", "09:45", 30, "10:15"},
		{"no start", "", 60, ""},
		{"unparsable start", "nine", 60, ""},
		{"zero duration", "14:00", 0, "14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := Task{ScheduledStart: tt.start, ScheduledMins: tt.mins}
			assert.Equal(t, tt.want, tk.ScheduledEnd())
		})
	}
}

func TestTask_CloneFor(t *testing.T) {
	started := at(10)
	src := Task{
		ID:             "src",
		Title:          "Edit photos",
		Genre:          "Photo Editing",
		ScheduledStart: "09:00",
		ScheduledMins:  60,
		Status:         StatusInProgress,
		Day:            Day("2024-05-01"),
		StartedAt:      &started,
		AccrualStart:   &started,
		TotalTime:      1200,
		Memo:           "raw batch",
	}

	clone := src.CloneFor("fresh", Day("2024-05-02"), at(60))

	assert.Equal(t, "fresh", clone.ID)
	assert.Equal(t, src.Title, clone.Title)
	assert.Equal(t, src.Genre, clone.Genre)
	assert.Equal(t, src.ScheduledStart, clone.ScheduledStart)
	assert.Equal(t, src.ScheduledMins, clone.ScheduledMins)
	assert.Equal(t, src.Memo, clone.Memo)
	assert.Equal(t, StatusPending, clone.Status)
	assert.Equal(t, Day("2024-05-02"), clone.Day)
	assert.Nil(t, clone.StartedAt)
	assert.Nil(t, clone.AccrualStart)
	assert.Zero(t, clone.TotalTime)
	assert.False(t, clone.CarriedOver)
}
