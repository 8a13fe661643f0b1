// Package tracker holds the in-memory habit store and completion log and
// writes a full snapshot through a store backend after every mutation.
package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/stats"
	"github.com/theirongolddev/habitrack/internal/store"

	"go.uber.org/zap"
)

// Clock returns the current time. Only its calendar date is used.
type Clock func() time.Time

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides time.Now, mainly for tests.
func WithClock(c Clock) Option {
	return func(t *Tracker) { t.now = c }
}

// Tracker is the application state: habits in insertion order plus a
// completion set per habit. It is not safe for concurrent use.
type Tracker struct {
	backend store.Backend
	logger  *zap.Logger
	now     Clock

	order       []string
	habits      map[string]model.Habit
	completions map[string]model.DaySet
	dirty       bool
}

// New returns an empty tracker writing through backend. Call Load to read
// existing data.
func New(backend store.Backend, logger *zap.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{
		backend:     backend,
		logger:      logger,
		now:         time.Now,
		habits:      make(map[string]model.Habit),
		completions: make(map[string]model.DaySet),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load replaces the in-memory state with the backend's snapshot.
func (t *Tracker) Load() error {
	snap, err := t.backend.Load()
	if err != nil {
		return err
	}

	t.order = t.order[:0]
	t.habits = make(map[string]model.Habit, len(snap.Habits))
	t.completions = make(map[string]model.DaySet, len(snap.Habits))
	for _, h := range snap.Habits {
		if _, dup := t.habits[h.Name]; dup {
			continue
		}
		t.order = append(t.order, h.Name)
		t.habits[h.Name] = h
		t.completions[h.Name] = model.NewDaySet(snap.Completions[h.Name]...)
	}
	t.dirty = false
	return nil
}

// Today returns the tracker's current date at local midnight.
func (t *Tracker) Today() time.Time {
	return model.Midnight(t.now())
}

// Path returns where the backend persists data.
func (t *Tracker) Path() string {
	return t.backend.Path()
}

// Dirty reports whether the last save failed.
func (t *Tracker) Dirty() bool {
	return t.dirty
}

// Add creates a habit dated today and persists.
func (t *Tracker) Add(name, category, description string) (model.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Habit{}, ErrEmptyName
	}
	if _, ok := t.habits[name]; ok {
		return model.Habit{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	h := model.Habit{
		Name:            name,
		Category:        strings.TrimSpace(category),
		Description:     strings.TrimSpace(description),
		CreatedDate:     model.DayKey(t.Today()),
		TargetFrequency: model.FrequencyDaily,
	}
	t.order = append(t.order, name)
	t.habits[name] = h
	t.completions[name] = model.NewDaySet()

	t.logger.Info("habit added", zap.String("habit", name), zap.String("category", h.Category))
	return h, t.persist("add")
}

// Delete removes a habit together with its completions and persists.
func (t *Tracker) Delete(name string) error {
	if _, ok := t.habits[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	delete(t.habits, name)
	delete(t.completions, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}

	t.logger.Info("habit deleted", zap.String("habit", name))
	return t.persist("delete")
}

// List returns every habit in insertion order.
func (t *Tracker) List() []model.Habit {
	out := make([]model.Habit, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.habits[name])
	}
	return out
}

// Names returns habit names in insertion order.
func (t *Tracker) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of habits.
func (t *Tracker) Len() int {
	return len(t.order)
}

// Get looks up a habit by name.
func (t *Tracker) Get(name string) (model.Habit, bool) {
	h, ok := t.habits[name]
	return h, ok
}

// Toggle flips the completion of name on day and persists. It returns
// whether the habit is completed on that day afterwards.
func (t *Tracker) Toggle(name string, day time.Time) (bool, error) {
	done, ok := t.completions[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	key := model.DayKey(day)
	completed := !done.Has(key)
	if completed {
		done[key] = struct{}{}
	} else {
		delete(done, key)
	}

	t.logger.Debug("completion toggled",
		zap.String("habit", name),
		zap.String("day", key),
		zap.Bool("completed", completed),
	)
	return completed, t.persist("toggle")
}

// ToggleToday flips today's completion for name.
func (t *Tracker) ToggleToday(name string) (bool, error) {
	return t.Toggle(name, t.Today())
}

// IsCompleted reports whether name was completed on day. Unknown habits
// are never completed.
func (t *Tracker) IsCompleted(name string, day time.Time) bool {
	return t.completions[name].Has(model.DayKey(day))
}

// Completions returns the sorted completion dates of name.
func (t *Tracker) Completions(name string) []string {
	return t.completions[name].Sorted()
}

// Streak returns the current run ending today; 0 for unknown habits.
func (t *Tracker) Streak(name string) int {
	if _, ok := t.habits[name]; !ok {
		return 0
	}
	return stats.Streak(t.completions[name], t.now())
}

// CompletionRate returns the percentage of days completed in the trailing
// window, bounded by the creation date; 0 for unknown habits.
func (t *Tracker) CompletionRate(name string, window int) float64 {
	h, ok := t.habits[name]
	if !ok {
		return 0
	}
	created, err := model.ParseDay(h.CreatedDate)
	if err != nil {
		return 0
	}
	return stats.CompletionRate(t.completions[name], created, t.now(), window)
}

// Stats returns the stat line of name.
func (t *Tracker) Stats(name string, window int) (model.HabitStats, bool) {
	h, ok := t.habits[name]
	if !ok {
		return model.HabitStats{}, false
	}
	return stats.ForHabit(h, t.completions[name], t.now(), window), true
}

// AllStats returns stat lines for every habit in insertion order.
func (t *Tracker) AllStats(window int) []model.HabitStats {
	out := make([]model.HabitStats, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, stats.ForHabit(t.habits[name], t.completions[name], t.now(), window))
	}
	return out
}

// Summary aggregates every habit.
func (t *Tracker) Summary(window int) model.Summary {
	return stats.Summarize(t.List(), t.completions, t.now(), window)
}

// History returns per-day completion counts for the last n days.
func (t *Tracker) History(n int) []model.DailyCompletions {
	return stats.History(t.List(), t.completions, t.now(), n)
}

// Snapshot returns a copy of the full state in store order.
func (t *Tracker) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Habits:      t.List(),
		Completions: make(map[string][]string, len(t.order)),
	}
	for _, name := range t.order {
		snap.Completions[name] = t.completions[name].Sorted()
	}
	return snap
}

// Flush retries the save after an earlier failure.
func (t *Tracker) Flush() error {
	return t.persist("flush")
}

func (t *Tracker) persist(op string) error {
	if err := t.backend.Save(t.Snapshot()); err != nil {
		t.dirty = true
		t.logger.Error("snapshot not saved, keeping in-memory state",
			zap.String("op", op),
			zap.String("path", t.backend.Path()),
			zap.Error(err),
		)
		return &PersistenceError{Op: op, Path: t.backend.Path(), Err: err}
	}
	t.dirty = false
	return nil
}
