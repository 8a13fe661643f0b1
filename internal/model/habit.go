// Package model defines domain types for habits, completions and their statistics.
package model

// FrequencyDaily is the only target frequency in use. The field is kept in
// the persisted document so other cadences can be added later.
const FrequencyDaily = "daily"

// Habit is a named recurring activity. Name is the primary key.
type Habit struct {
	Name            string `json:"-" yaml:"name"`
	Category        string `json:"category" yaml:"category"`
	Description     string `json:"description" yaml:"description"`
	CreatedDate     string `json:"created_date" yaml:"created_date"`
	TargetFrequency string `json:"target_frequency" yaml:"target_frequency"`
}

// Snapshot is the complete durable state: every habit in store order plus
// the completion dates recorded for each of them.
type Snapshot struct {
	Habits      []Habit             `yaml:"habits"`
	Completions map[string][]string `yaml:"completions"`
}

// DefaultCategories are offered as suggestions when adding a habit.
// Any free text is accepted.
var DefaultCategories = []string{
	"Health",
	"Fitness",
	"Learning",
	"Productivity",
	"Mindfulness",
	"Social",
	"Finance",
	"Other",
}
