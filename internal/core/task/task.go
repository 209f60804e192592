// Package task defines the task domain model, its lifecycle state machine,
// and the time-accounting rules for the start/pause/complete timer.
package task

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("task not found")
	// ErrAmbiguous is returned when an ID prefix matches more than one task.
	ErrAmbiguous = errors.New("ambiguous task id")
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
)

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Task is a single unit of work scheduled for a calendar day.
//
// Timestamps split two concerns the timer needs to keep apart:
// StartedAt is the display-facing "most recent start" of the current run,
// while AccrualStart is the origin of the currently open accrual interval.
// TotalTime is the sum of all closed intervals; it only grows by closing
// the open interval against AccrualStart, so pause/resume cycles never
// double-count.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Genre          string     `json:"genre"`
	ScheduledStart string     `json:"scheduled_start,omitempty"` // "15:04"
	ScheduledMins  int        `json:"scheduled_minutes,omitempty"`
	Status         Status     `json:"status"`
	Day            Day        `json:"day"`        // calendar bucket used by all date queries
	CreatedAt      time.Time  `json:"created_at"` // wall-clock creation instant, audit only
	StartedAt      *time.Time `json:"started_at,omitempty"`
	AccrualStart   *time.Time `json:"accrual_start,omitempty"`
	PausedAt       *time.Time `json:"paused_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	TotalTime      int64      `json:"total_time"`                  // accrued active seconds
	TotalPaused    int64      `json:"total_paused_time,omitempty"` // accrued paused seconds, informational
	Memo           string     `json:"memo,omitempty"`
	CarriedOver    bool       `json:"carried_over,omitempty"`
	CarriedFrom    string     `json:"carried_from,omitempty"`   // source task id of a carry-over clone
	RoutineSource  string     `json:"routine_source,omitempty"` // source task id of a routine clone
}

// Start moves the task into in-progress. Valid from pending or paused;
// any other state is a no-op. Resuming from paused folds the open pause
// gap into TotalPaused and keeps the original StartedAt.
func (t *Task) Start(now time.Time) bool {
	switch t.Status {
	case StatusPending:
		t.Status = StatusInProgress
		t.StartedAt = timePtr(now)
		t.AccrualStart = timePtr(now)
		return true
	case StatusPaused:
		if t.PausedAt != nil {
			t.TotalPaused += seconds(now.Sub(*t.PausedAt))
		}
		t.PausedAt = nil
		t.Status = StatusInProgress
		t.AccrualStart = timePtr(now)
		return true
	default:
		return false
	}
}

// Pause closes the open accrual interval into TotalTime and records the
// pause instant. Valid only from in-progress. StartedAt is preserved so
// the display keeps showing when the current run began.
func (t *Task) Pause(now time.Time) bool {
	if t.Status != StatusInProgress {
		return false
	}
	t.TotalTime += t.openInterval(now)
	t.AccrualStart = nil
	t.Status = StatusPaused
	t.PausedAt = timePtr(now)
	return true
}

// Complete finishes the task from pending, in-progress, or paused.
// An open accrual interval is folded into TotalTime first; an open pause
// gap is folded into TotalPaused. Completing a completed task is a no-op.
func (t *Task) Complete(now time.Time) bool {
	switch t.Status {
	case StatusInProgress:
		t.TotalTime += t.openInterval(now)
		t.AccrualStart = nil
	case StatusPaused:
		if t.PausedAt != nil {
			t.TotalPaused += seconds(now.Sub(*t.PausedAt))
		}
		t.PausedAt = nil
	case StatusPending:
	default:
		return false
	}
	t.Status = StatusCompleted
	t.CompletedAt = timePtr(now)
	return true
}

// Reset rewinds a completed task to pending and zeroes every timing
// field. This is a destructive rewind, not an undo of the last step.
func (t *Task) Reset() bool {
	if t.Status != StatusCompleted {
		return false
	}
	t.Status = StatusPending
	t.StartedAt = nil
	t.AccrualStart = nil
	t.PausedAt = nil
	t.CompletedAt = nil
	t.TotalTime = 0
	t.TotalPaused = 0
	return true
}

// Elapsed returns the seconds to display for the task: accrued time plus
// the currently open interval while in-progress, accrued time otherwise.
func (t *Task) Elapsed(now time.Time) int64 {
	if t.Status == StatusInProgress {
		return t.TotalTime + t.openInterval(now)
	}
	return t.TotalTime
}

// ScheduledEnd returns the planned end time ("15:04") computed from the
// scheduled start plus the scheduled duration, or "" if no start is set.
func (t *Task) ScheduledEnd() string {
	if t.ScheduledStart == "" {
		return ""
	}
	start, err := time.Parse("15:04", t.ScheduledStart)
	if err != nil {
		return ""
	}
	return start.Add(time.Duration(t.ScheduledMins) * time.Minute).Format("15:04")
}

// CloneFor returns a fresh pending copy of the task rebucketed to day,
// with a new id and all timing fields cleared. Planning fields (title,
// genre, schedule, memo) carry over.
func (t Task) CloneFor(id string, day Day, now time.Time) Task {
	return Task{
		ID:             id,
		Title:          t.Title,
		Genre:          t.Genre,
		ScheduledStart: t.ScheduledStart,
		ScheduledMins:  t.ScheduledMins,
		Status:         StatusPending,
		Day:            day,
		CreatedAt:      now,
		Memo:           t.Memo,
	}
}

func (t *Task) openInterval(now time.Time) int64 {
	if t.AccrualStart == nil {
		return 0
	}
	return seconds(now.Sub(*t.AccrualStart))
}

func seconds(d time.Duration) int64 {
	s := int64(d / time.Second)
	if s < 0 {
		return 0
	}
	return s
}

func timePtr(t time.Time) *time.Time { return &t }
