package hibi

import "github.com/hibi-cli/hibi/internal/core/task"

// Rollover evaluates the daily rollover policy relative to the actual
// current date: unfinished tasks from yesterday are carried over into
// today, and yesterday's routine-genre tasks regenerate unconditionally.
// Tasks older than yesterday are never touched.
//
// Both clone kinds record their source id, so re-running within the same
// yesterday-to-today boundary appends nothing. Returns the number of
// clones appended.
func (s *Service) Rollover() int {
	now := s.now()
	today := task.DayOf(now)
	yesterday := today.AddDays(-1)

	carried := make(map[string]bool)
	regenerated := make(map[string]bool)
	for _, t := range s.state.Tasks {
		if t.Day != today {
			continue
		}
		if t.CarriedFrom != "" {
			carried[t.CarriedFrom] = true
		}
		if t.RoutineSource != "" {
			regenerated[t.RoutineSource] = true
		}
	}

	var clones []task.Task
	for _, t := range s.state.Tasks {
		if t.Day != yesterday {
			continue
		}

		unfinished := t.Status == task.StatusPending || t.Status == task.StatusInProgress
		if unfinished && !t.CarriedOver && !carried[t.ID] {
			clone := t.CloneFor(s.newID(), today, now)
			clone.CarriedOver = true
			clone.CarriedFrom = t.ID
			clones = append(clones, clone)
		}

		// Routine tasks regenerate regardless of completion.
		if t.Genre == s.routineGenre && !regenerated[t.ID] {
			clone := t.CloneFor(s.newID(), today, now)
			clone.RoutineSource = t.ID
			clones = append(clones, clone)
		}
	}

	if len(clones) == 0 {
		return 0
	}

	s.state.Tasks = append(s.state.Tasks, clones...)
	s.persist()
	s.log.Info().Int("clones", len(clones)).Str("day", today.String()).Msg("rollover applied")
	return len(clones)
}
