package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/habitrack/internal/model"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite stores the snapshot in two tables, habits and completions.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// OpenSQLite opens or creates the database at the given path.
func OpenSQLite(dbPath string, logger *zap.Logger) (*SQLite, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening habits db: %w", err)
	}
	// One connection keeps the pragmas and the single-writer model simple.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, &MalformedDataError{Path: dbPath, Err: fmt.Errorf("creating schema: %w", err)}
	}

	logger.Debug("habits db opened", zap.String("path", dbPath))
	return &SQLite{db: db, path: dbPath, logger: logger}, nil
}

// Path returns the database path.
func (s *SQLite) Path() string {
	return s.path
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load reads every habit in position order with its completion dates.
func (s *SQLite) Load() (model.Snapshot, error) {
	rows, err := s.db.Query(`SELECT name, category, description, created_date, target_frequency
		FROM habits ORDER BY position, name`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("querying habits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snap := emptySnapshot()
	for rows.Next() {
		var h model.Habit
		if err := rows.Scan(&h.Name, &h.Category, &h.Description, &h.CreatedDate, &h.TargetFrequency); err != nil {
			return model.Snapshot{}, fmt.Errorf("scanning habit: %w", err)
		}
		snap.Habits = append(snap.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return model.Snapshot{}, err
	}

	dayRows, err := s.db.Query("SELECT habit_name, day FROM completions ORDER BY habit_name, day")
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("querying completions: %w", err)
	}
	defer func() { _ = dayRows.Close() }()

	for dayRows.Next() {
		var name, day string
		if err := dayRows.Scan(&name, &day); err != nil {
			return model.Snapshot{}, fmt.Errorf("scanning completion: %w", err)
		}
		snap.Completions[name] = append(snap.Completions[name], day)
	}
	if err := dayRows.Err(); err != nil {
		return model.Snapshot{}, err
	}

	if err := validate(s.path, &snap, s.logger); err != nil {
		return model.Snapshot{}, err
	}

	s.logger.Info("snapshot loaded",
		zap.String("path", s.path),
		zap.Int("habits", len(snap.Habits)),
	)
	return snap, nil
}

// Save replaces the stored snapshot inside one transaction.
func (s *SQLite) Save(snap model.Snapshot) error {
	if err := s.save(snap); err != nil {
		s.logger.Error("saving snapshot failed", zap.String("path", s.path), zap.Error(err))
		return err
	}
	s.logger.Debug("snapshot saved", zap.String("path", s.path), zap.Int("habits", len(snap.Habits)))
	return nil
}

func (s *SQLite) save(snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM completions"); err != nil {
		return fmt.Errorf("clearing completions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("clearing habits: %w", err)
	}

	for i, h := range snap.Habits {
		_, err := tx.Exec(`INSERT INTO habits
			(name, position, category, description, created_date, target_frequency)
			VALUES (?, ?, ?, ?, ?, ?)`,
			h.Name, i, h.Category, h.Description, h.CreatedDate, h.TargetFrequency,
		)
		if err != nil {
			return fmt.Errorf("inserting habit %q: %w", h.Name, err)
		}

		for _, day := range snap.Completions[h.Name] {
			_, err := tx.Exec("INSERT OR IGNORE INTO completions (habit_name, day) VALUES (?, ?)", h.Name, day)
			if err != nil {
				return fmt.Errorf("inserting completion %s/%s: %w", h.Name, day, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}
