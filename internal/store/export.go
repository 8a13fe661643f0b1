package store

import (
	"fmt"
	"io"
	"sort"

	"github.com/theirongolddev/habitrack/internal/model"

	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type exportHabit struct {
	model.Habit `yaml:",inline"`
	Completions []string `yaml:"completions"`
}

type exportDoc struct {
	Habits []exportHabit `yaml:"habits"`
}

// Export writes snap to w. JSON uses the data file layout; YAML lists each
// habit with its own completions.
func Export(w io.Writer, snap model.Snapshot, format string) error {
	switch format {
	case "", FormatJSON:
		data, err := encodeSnapshot(snap)
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = w.Write(data)
		return err

	case FormatYAML, "yml":
		doc := exportDoc{Habits: make([]exportHabit, 0, len(snap.Habits))}
		for _, h := range snap.Habits {
			days := append([]string{}, snap.Completions[h.Name]...)
			sort.Strings(days)
			doc.Habits = append(doc.Habits, exportHabit{Habit: h, Completions: days})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}
