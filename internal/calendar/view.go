package calendar

import (
	"fmt"
	"time"

	"github.com/theirongolddev/habitrack/internal/model"
)

// State of the calendar screen.
type State int

const (
	NoHabits State = iota
	HabitSelected
)

// Source is what the view reads completions from.
type Source interface {
	IsCompleted(name string, day time.Time) bool
}

// View tracks the displayed month and selected habit. Navigation keeps
// the selection; deleting the selected habit falls back to the first
// remaining one.
type View struct {
	state  State
	habit  string
	habits []string
	month  Month
	today  time.Time
}

// NewView starts on the month containing today with nothing selected.
func NewView(today time.Time) *View {
	return &View{state: NoHabits, month: MonthOf(today), today: today}
}

// State returns the current state.
func (v *View) State() State { return v.state }

// Month returns the displayed month.
func (v *View) Month() Month { return v.month }

// Selected returns the selected habit.
func (v *View) Selected() (string, bool) {
	return v.habit, v.state == HabitSelected
}

// Habits returns the selectable names.
func (v *View) Habits() []string { return v.habits }

// SetToday updates the date used for highlighting.
func (v *View) SetToday(today time.Time) { v.today = today }

// Sync refreshes the selectable habits. The current selection survives if
// it still exists; otherwise the first habit is selected.
func (v *View) Sync(names []string) {
	v.habits = append(v.habits[:0], names...)
	if len(v.habits) == 0 {
		v.state = NoHabits
		v.habit = ""
		return
	}
	if v.state == HabitSelected && v.indexOf(v.habit) >= 0 {
		return
	}
	v.state = HabitSelected
	v.habit = v.habits[0]
}

// Select switches to name, keeping the month.
func (v *View) Select(name string) error {
	if v.indexOf(name) < 0 {
		return fmt.Errorf("select habit %q: not in list", name)
	}
	v.state = HabitSelected
	v.habit = name
	return nil
}

// Cycle moves the selection by delta, wrapping around.
func (v *View) Cycle(delta int) {
	if len(v.habits) == 0 {
		return
	}
	i := v.indexOf(v.habit)
	if i < 0 {
		i = 0
	} else {
		n := len(v.habits)
		i = ((i+delta)%n + n) % n
	}
	v.state = HabitSelected
	v.habit = v.habits[i]
}

// PrevMonth moves back one month.
func (v *View) PrevMonth() { v.month = v.month.Prev() }

// NextMonth moves forward one month.
func (v *View) NextMonth() { v.month = v.month.Next() }

// Today jumps back to the month containing today.
func (v *View) Today() { v.month = MonthOf(v.today) }

// ShowMonth jumps to m.
func (v *View) ShowMonth(m Month) { v.month = m }

// HabitDeleted reacts to name being removed; remaining is the new list.
func (v *View) HabitDeleted(name string, remaining []string) {
	if v.habit == name {
		v.state = NoHabits
		v.habit = ""
	}
	v.Sync(remaining)
}

// Grid builds the grid for the selected habit. It returns false when
// there is nothing to show and a placeholder should render instead.
func (v *View) Grid(src Source) (Grid, bool) {
	if v.state != HabitSelected || src == nil {
		return Grid{}, false
	}
	name := v.habit
	done := func(date string) bool {
		d, err := model.ParseDay(date)
		return err == nil && src.IsCompleted(name, d)
	}
	return Build(v.month, done, v.today), true
}

func (v *View) indexOf(name string) int {
	for i, n := range v.habits {
		if n == name {
			return i
		}
	}
	return -1
}
