// Package store persists habit snapshots to a JSON document or a SQLite
// database. Every save rewrites the whole snapshot.
package store

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/habitrack/internal/model"

	"go.uber.org/zap"
)

// Backend loads and saves complete snapshots.
type Backend interface {
	// Load returns an empty snapshot when nothing has been saved yet.
	Load() (model.Snapshot, error)
	Save(snap model.Snapshot) error
	Path() string
	Close() error
}

// MalformedDataError reports a data file that exists but cannot be read
// back into a valid snapshot.
type MalformedDataError struct {
	Path string
	Err  error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed data file %s: %v", e.Path, e.Err)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// Open returns the backend named by kind ("json" or "sqlite") at path.
func Open(kind, path string, logger *zap.Logger) (Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch kind {
	case "", "json":
		return NewJSONFile(path, logger), nil
	case "sqlite":
		return OpenSQLite(path, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

// validate checks every date and drops completion entries for habits that
// are not in the snapshot.
func validate(path string, snap *model.Snapshot, logger *zap.Logger) error {
	known := make(map[string]struct{}, len(snap.Habits))
	for i, h := range snap.Habits {
		if h.Name == "" {
			return &MalformedDataError{Path: path, Err: errors.New("habit with empty name")}
		}
		if _, err := model.ParseDay(h.CreatedDate); err != nil {
			return &MalformedDataError{Path: path, Err: fmt.Errorf("habit %q: created_date %q: %w", h.Name, h.CreatedDate, err)}
		}
		if h.TargetFrequency == "" {
			snap.Habits[i].TargetFrequency = model.FrequencyDaily
		}
		known[h.Name] = struct{}{}
	}

	for name, days := range snap.Completions {
		if _, ok := known[name]; !ok {
			logger.Warn("dropping completions for unknown habit",
				zap.String("path", path),
				zap.String("habit", name),
				zap.Int("days", len(days)),
			)
			delete(snap.Completions, name)
			continue
		}
		for _, d := range days {
			if _, err := model.ParseDay(d); err != nil {
				return &MalformedDataError{Path: path, Err: fmt.Errorf("habit %q: completion %q: %w", name, d, err)}
			}
		}
	}
	return nil
}

func emptySnapshot() model.Snapshot {
	return model.Snapshot{Completions: make(map[string][]string)}
}
