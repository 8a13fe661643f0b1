package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/habitrack/internal/model"
)

type fakeSource map[string]model.DaySet

func (f fakeSource) IsCompleted(name string, day time.Time) bool {
	return f[name].Has(model.DayKey(day))
}

func TestView_NoHabitsShowsPlaceholder(t *testing.T) {
	v := NewView(date(2024, time.June, 10))
	v.Sync(nil)

	assert.Equal(t, NoHabits, v.State())
	_, ok := v.Grid(fakeSource{})
	assert.False(t, ok)
	_, ok = v.Selected()
	assert.False(t, ok)
}

func TestView_AutoSelectsFirstHabit(t *testing.T) {
	v := NewView(date(2024, time.June, 10))
	v.Sync([]string{"Read", "Run"})

	name, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Read", name)

	v.Sync([]string{"Read", "Run", "Walk"})
	name, _ = v.Selected()
	assert.Equal(t, "Read", name, "sync keeps existing selection")
}

func TestView_NavigationKeepsHabit(t *testing.T) {
	v := NewView(date(2024, time.January, 10))
	v.Sync([]string{"Read", "Run"})
	require.NoError(t, v.Select("Run"))

	v.PrevMonth()
	assert.Equal(t, Month{Year: 2023, Month: time.December}, v.Month())
	name, _ := v.Selected()
	assert.Equal(t, "Run", name)

	v.NextMonth()
	v.NextMonth()
	assert.Equal(t, Month{Year: 2024, Month: time.February}, v.Month())

	v.Today()
	assert.Equal(t, Month{Year: 2024, Month: time.January}, v.Month())

	v.ShowMonth(Month{Year: 2019, Month: time.July})
	assert.Equal(t, Month{Year: 2019, Month: time.July}, v.Month())
	name, _ = v.Selected()
	assert.Equal(t, "Run", name)

	assert.Error(t, v.Select("Nope"))
}

func TestView_SelectKeepsMonth(t *testing.T) {
	v := NewView(date(2024, time.June, 10))
	v.Sync([]string{"Read", "Run"})
	v.PrevMonth()
	require.NoError(t, v.Select("Run"))
	assert.Equal(t, Month{Year: 2024, Month: time.May}, v.Month())
}

func TestView_CycleWraps(t *testing.T) {
	v := NewView(date(2024, time.June, 10))
	v.Sync([]string{"A", "B", "C"})

	v.Cycle(-1)
	name, _ := v.Selected()
	assert.Equal(t, "C", name)
	v.Cycle(1)
	name, _ = v.Selected()
	assert.Equal(t, "A", name)
}

func TestView_HabitDeleted(t *testing.T) {
	v := NewView(date(2024, time.June, 10))
	v.Sync([]string{"Read", "Run"})

	v.HabitDeleted("Read", []string{"Run"})
	name, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Run", name)

	v.HabitDeleted("Run", nil)
	assert.Equal(t, NoHabits, v.State())
}

func TestView_GridUsesSelectedHabit(t *testing.T) {
	v := NewView(date(2024, time.June, 10))
	v.Sync([]string{"Read"})
	src := fakeSource{"Read": model.NewDaySet("2024-06-05")}

	g, ok := v.Grid(src)
	require.True(t, ok)
	assert.Equal(t, 1, g.Completed())
	assert.Equal(t, Month{Year: 2024, Month: time.June}, g.Month)
}
