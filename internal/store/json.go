package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/theirongolddev/habitrack/internal/model"

	"go.uber.org/zap"
)

// JSONFile stores the snapshot as a single UTF-8 JSON document:
//
//	{"habits": {"<name>": {...}}, "completions": {"<name>": ["YYYY-MM-DD"]}}
//
// Habits keep their store order in the file.
type JSONFile struct {
	path   string
	logger *zap.Logger
}

// NewJSONFile returns a JSON backend for path. The file is not touched
// until Load or Save.
func NewJSONFile(path string, logger *zap.Logger) *JSONFile {
	return &JSONFile{path: path, logger: logger}
}

// Path returns the data file path.
func (j *JSONFile) Path() string {
	return j.path
}

// Close is a no-op; the file is only open during Load and Save.
func (j *JSONFile) Close() error {
	return nil
}

// Load reads the data file. A missing file yields an empty snapshot.
func (j *JSONFile) Load() (model.Snapshot, error) {
	j.logger.Debug("loading snapshot", zap.String("path", j.path))

	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			j.logger.Info("no data file yet, starting empty", zap.String("path", j.path))
			return emptySnapshot(), nil
		}
		return model.Snapshot{}, fmt.Errorf("reading data file: %w", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		j.logger.Error("data file is malformed", zap.String("path", j.path), zap.Error(err))
		return model.Snapshot{}, &MalformedDataError{Path: j.path, Err: err}
	}
	if err := validate(j.path, &snap, j.logger); err != nil {
		return model.Snapshot{}, err
	}

	j.logger.Info("snapshot loaded",
		zap.String("path", j.path),
		zap.Int("habits", len(snap.Habits)),
	)
	return snap, nil
}

// Save atomically replaces the data file with snap.
func (j *JSONFile) Save(snap model.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := writeFileAtomic(j.path, data); err != nil {
		j.logger.Error("saving snapshot failed", zap.String("path", j.path), zap.Error(err))
		return err
	}

	j.logger.Debug("snapshot saved",
		zap.String("path", j.path),
		zap.Int("habits", len(snap.Habits)),
		zap.Int("bytes", len(data)),
	)
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".habits-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}

// encodeSnapshot writes habits and completions in store order. Dates are
// written sorted.
func encodeSnapshot(snap model.Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"habits":{`)
	for i, h := range snap.Habits {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(h.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(h)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteString(`},"completions":{`)
	first := true
	for _, h := range snap.Habits {
		days, ok := snap.Completions[h.Name]
		if !ok {
			continue
		}
		sorted := append([]string(nil), days...)
		sort.Strings(sorted)
		if sorted == nil {
			sorted = []string{}
		}

		key, err := json.Marshal(h.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sorted)
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString(`}}`)

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func decodeSnapshot(data []byte) (model.Snapshot, error) {
	var raw struct {
		Habits      json.RawMessage     `json:"habits"`
		Completions map[string][]string `json:"completions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Snapshot{}, err
	}

	order, err := objectKeys(raw.Habits)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("habits: %w", err)
	}

	var byName map[string]model.Habit
	if len(order) > 0 {
		if err := json.Unmarshal(raw.Habits, &byName); err != nil {
			return model.Snapshot{}, fmt.Errorf("habits: %w", err)
		}
	}

	snap := emptySnapshot()
	for _, name := range order {
		h := byName[name]
		h.Name = name
		snap.Habits = append(snap.Habits, h)
	}
	for name, days := range raw.Completions {
		snap.Completions[name] = days
	}
	return snap, nil
}

// objectKeys returns the keys of a JSON object in document order, without
// duplicates. A missing or null object has no keys.
func objectKeys(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected an object")
	}

	var keys []string
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected an object key")
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}
