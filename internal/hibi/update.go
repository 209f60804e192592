package hibi

import (
	"fmt"
	"strings"
	"time"

	"github.com/hibi-cli/hibi/internal/core/task"
)

// Patch is a partial task edit. Nil fields are left untouched. Timing
// fields are manual corrections: they bypass the state machine, but the
// resulting record must stay internally consistent.
type Patch struct {
	Title          *string
	Genre          *string
	ScheduledStart *string // "15:04"
	ScheduledMins  *int
	Memo           *string
	Day            *task.Day

	StartedAt   *time.Time
	CompletedAt *time.Time
	TotalTime   *int64
}

// Update applies a patch to a task. A rejected edit leaves every field
// at its prior value and reports why; rejection is the only user-facing
// error channel the store has.
func (s *Service) Update(id string, p Patch) error {
	t := s.find(id)
	if t == nil {
		return task.ErrNotFound
	}

	candidate := *t
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return ErrEmptyTitle
		}
		candidate.Title = title
	}
	if p.Genre != nil {
		candidate.Genre = *p.Genre
	}
	if p.ScheduledStart != nil {
		if *p.ScheduledStart != "" {
			if _, err := time.Parse("15:04", *p.ScheduledStart); err != nil {
				return fmt.Errorf("%w: scheduled start %q", ErrInvalidCorrection, *p.ScheduledStart)
			}
		}
		candidate.ScheduledStart = *p.ScheduledStart
	}
	if p.ScheduledMins != nil {
		if *p.ScheduledMins < 0 {
			return fmt.Errorf("%w: negative duration", ErrInvalidCorrection)
		}
		candidate.ScheduledMins = *p.ScheduledMins
	}
	if p.Memo != nil {
		candidate.Memo = *p.Memo
	}
	if p.Day != nil {
		if !p.Day.Valid() {
			return fmt.Errorf("%w: day %q", ErrInvalidCorrection, *p.Day)
		}
		candidate.Day = *p.Day
	}
	if p.StartedAt != nil {
		candidate.StartedAt = p.StartedAt
	}
	if p.CompletedAt != nil {
		candidate.CompletedAt = p.CompletedAt
	}
	if p.TotalTime != nil {
		if *p.TotalTime < 0 {
			return fmt.Errorf("%w: negative total time", ErrInvalidCorrection)
		}
		candidate.TotalTime = *p.TotalTime
	}

	// Corrections skip transition checks but may not invert the record.
	if candidate.StartedAt != nil && candidate.CompletedAt != nil &&
		candidate.CompletedAt.Before(*candidate.StartedAt) {
		return fmt.Errorf("%w: completed before started", ErrInvalidCorrection)
	}

	if p.Genre != nil {
		s.registerGenre(candidate.Genre)
	}

	*t = candidate
	s.persist()
	s.log.Debug().Str("id", id).Msg("task updated")
	return nil
}
