// Package hibi wires the task collection, genre registry, and rollover
// policy into a single service. All mutation funnels through the Service
// so the single-writer model holds for both the CLI and the TUI.
package hibi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hibi-cli/hibi/internal/core/config"
	"github.com/hibi-cli/hibi/internal/core/task"
)

// ErrEmptyTitle is returned when a task is created or edited with no title.
var ErrEmptyTitle = errors.New("task title cannot be empty")

// ErrInvalidCorrection is returned when a manual edit would leave the
// timing record internally inconsistent.
var ErrInvalidCorrection = errors.New("invalid manual correction")

// Service owns the in-memory store state and writes it through to the
// state store on every mutation.
type Service struct {
	store task.StateStore
	log   zerolog.Logger
	now   func() time.Time
	newID func() string

	defaultGenres []string
	routineGenre  string

	state   task.State
	elapsed map[string]int64 // transient display counters, never persisted
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock, used by tests to simulate time.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// WithIDFunc overrides task id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService loads state from the store and builds the service.
// A corrupt blob falls back to an empty state; rehydration is never
// fatal. The rollover policy runs once after load completes.
func NewService(store task.StateStore, cfg *config.Config, logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		store:         store,
		log:           logger.With().Str("component", "task-service").Logger(),
		now:           time.Now,
		newID:         uuid.NewString,
		defaultGenres: cfg.DefaultGenres,
		routineGenre:  cfg.RoutineGenre,
		elapsed:       make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("state blob unreadable, starting empty")
		state = task.State{}
	}
	if !state.SelectedDate.Valid() {
		state.SelectedDate = task.DayOf(s.now())
	}
	if !state.ActiveTab.IsValid() {
		state.ActiveTab = task.TabTasks
	}
	s.state = state

	s.Rollover()

	return s
}

// Add creates a new pending task. A zero day buckets the task to today.
// A genre not yet known to the registry is registered as a custom genre.
func (s *Service) Add(in AddInput) (task.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return task.Task{}, ErrEmptyTitle
	}

	now := s.now()
	day := in.Day
	if day == "" {
		day = task.DayOf(now)
	}
	if !day.Valid() {
		return task.Task{}, fmt.Errorf("invalid day %q", in.Day)
	}

	t := task.Task{
		ID:             s.newID(),
		Title:          title,
		Genre:          in.Genre,
		ScheduledStart: in.ScheduledStart,
		ScheduledMins:  in.ScheduledMins,
		Status:         task.StatusPending,
		Day:            day,
		CreatedAt:      now,
		Memo:           in.Memo,
	}

	s.registerGenre(t.Genre)
	s.state.Tasks = append(s.state.Tasks, t)
	s.persist()

	s.log.Info().Str("id", t.ID).Str("title", t.Title).Str("day", day.String()).Msg("task added")
	return t, nil
}

// AddInput holds the caller-supplied fields for a new task.
type AddInput struct {
	Title          string
	Genre          string
	ScheduledStart string // "15:04", optional
	ScheduledMins  int
	Memo           string
	Day            task.Day // zero means today
}

// Start begins or resumes the timer. Unknown ids and undefined
// transitions are silent no-ops; the return value reports whether the
// task changed.
func (s *Service) Start(id string) bool {
	t := s.find(id)
	if t == nil || !t.Start(s.now()) {
		return false
	}
	s.persist()
	s.log.Debug().Str("id", id).Msg("task started")
	return true
}

// Pause suspends an in-progress timer.
func (s *Service) Pause(id string) bool {
	t := s.find(id)
	if t == nil || !t.Pause(s.now()) {
		return false
	}
	delete(s.elapsed, id)
	s.persist()
	s.log.Debug().Str("id", id).Msg("task paused")
	return true
}

// Complete finishes a task from pending, in-progress, or paused.
func (s *Service) Complete(id string) bool {
	t := s.find(id)
	if t == nil || !t.Complete(s.now()) {
		return false
	}
	delete(s.elapsed, id)
	s.persist()
	s.log.Debug().Str("id", id).Int64("total_time", t.TotalTime).Msg("task completed")
	return true
}

// ResetStatus rewinds a completed task to pending, zeroing all timing.
func (s *Service) ResetStatus(id string) bool {
	t := s.find(id)
	if t == nil || !t.Reset() {
		return false
	}
	delete(s.elapsed, id)
	s.persist()
	s.log.Debug().Str("id", id).Msg("task reset")
	return true
}

// Delete removes a task unconditionally from any state.
func (s *Service) Delete(id string) bool {
	for i, t := range s.state.Tasks {
		if t.ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			delete(s.elapsed, id)
			s.persist()
			s.log.Info().Str("id", id).Msg("task deleted")
			return true
		}
	}
	return false
}

// UpdateElapsed records a transient display counter for an in-progress
// task. It never touches TotalTime; the accounting folds intervals only
// on pause/complete.
func (s *Service) UpdateElapsed(id string, seconds int64) {
	if t := s.find(id); t != nil && t.Status == task.StatusInProgress {
		s.elapsed[id] = seconds
	}
}

// Elapsed returns the seconds to display for a task right now.
func (s *Service) Elapsed(id string) int64 {
	t := s.find(id)
	if t == nil {
		return 0
	}
	if v, ok := s.elapsed[id]; ok && t.Status == task.StatusInProgress {
		return t.TotalTime + v
	}
	return t.Elapsed(s.now())
}

// Get returns a task by exact id.
func (s *Service) Get(id string) (task.Task, bool) {
	if t := s.find(id); t != nil {
		return *t, true
	}
	return task.Task{}, false
}

// Resolve finds a task by exact id or unique id prefix.
func (s *Service) Resolve(ref string) (task.Task, error) {
	if t := s.find(ref); t != nil {
		return *t, nil
	}

	var match *task.Task
	for i := range s.state.Tasks {
		if strings.HasPrefix(s.state.Tasks[i].ID, ref) {
			if match != nil {
				return task.Task{}, fmt.Errorf("%w: %q", task.ErrAmbiguous, ref)
			}
			match = &s.state.Tasks[i]
		}
	}
	if match == nil {
		return task.Task{}, fmt.Errorf("%w: %q", task.ErrNotFound, ref)
	}
	return *match, nil
}

// All returns a copy of every task in insertion order.
func (s *Service) All() []task.Task {
	out := make([]task.Task, len(s.state.Tasks))
	copy(out, s.state.Tasks)
	return out
}

// TasksForDate returns the tasks bucketed to the given calendar day, in
// insertion order.
func (s *Service) TasksForDate(d task.Day) []task.Task {
	var out []task.Task
	for _, t := range s.state.Tasks {
		if t.Day == d {
			out = append(out, t)
		}
	}
	return out
}

// Stats aggregates completion and accrued time for a day.
func (s *Service) Stats(d task.Day) task.Stats {
	return task.StatsFor(s.TasksForDate(d))
}

// GenreStats groups a day's tasks by genre.
func (s *Service) GenreStats(d task.Day) []task.GenreStat {
	return task.GenreStatsFor(s.TasksForDate(d))
}

// WeeklyStats groups by genre over a sliding 7-day window ending today.
// The window is day-bucketed, not calendar-week aligned.
func (s *Service) WeeklyStats() []task.GenreStat {
	today := task.DayOf(s.now())
	weekAgo := today.AddDays(-7)

	var window []task.Task
	for _, t := range s.state.Tasks {
		// Day keys sort lexically, so string comparison is date comparison.
		if t.Day >= weekAgo && t.Day <= today {
			window = append(window, t)
		}
	}
	return task.GenreStatsFor(window)
}

// Genres returns the full registry: defaults first, then custom genres
// in first-seen order.
func (s *Service) Genres() []string {
	out := make([]string, 0, len(s.defaultGenres)+len(s.state.CustomGenres))
	out = append(out, s.defaultGenres...)
	out = append(out, s.state.CustomGenres...)
	return out
}

// AddGenre registers a custom genre. Registering a default or an
// already-known genre is a no-op; the registry only grows.
func (s *Service) AddGenre(name string) bool {
	if !s.registerGenre(name) {
		return false
	}
	s.persist()
	return true
}

// SelectedDate returns the date the UI is browsing.
func (s *Service) SelectedDate() task.Day {
	return s.state.SelectedDate
}

// SetSelectedDate moves the date cursor and re-evaluates the rollover
// policy, which always operates relative to the actual current date.
func (s *Service) SetSelectedDate(d task.Day) {
	if !d.Valid() {
		return
	}
	s.state.SelectedDate = d
	s.persist()
	s.Rollover()
}

// ActiveTab returns the persisted view selector.
func (s *Service) ActiveTab() task.Tab {
	return s.state.ActiveTab
}

// SetActiveTab switches the persisted view selector.
func (s *Service) SetActiveTab(tab task.Tab) {
	if !tab.IsValid() {
		return
	}
	s.state.ActiveTab = tab
	s.persist()
}

// Now returns the service clock's current instant.
func (s *Service) Now() time.Time {
	return s.now()
}

// RoutineGenre returns the genre name reserved for daily regeneration.
func (s *Service) RoutineGenre() string {
	return s.routineGenre
}

func (s *Service) find(id string) *task.Task {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			return &s.state.Tasks[i]
		}
	}
	return nil
}

// registerGenre adds a novel genre to the custom registry.
func (s *Service) registerGenre(name string) bool {
	if name == "" {
		return false
	}
	for _, g := range s.defaultGenres {
		if g == name {
			return false
		}
	}
	for _, g := range s.state.CustomGenres {
		if g == name {
			return false
		}
	}
	s.state.CustomGenres = append(s.state.CustomGenres, name)
	return true
}

func (s *Service) persist() {
	if err := s.store.Save(s.state); err != nil {
		s.log.Error().Err(err).Msg("persist state")
	}
}
