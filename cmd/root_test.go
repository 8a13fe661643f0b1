package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/store"
	"github.com/theirongolddev/habitrack/internal/tracker"
)

// runCLI executes the root command with fresh flag values.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	flagDataFile, flagBackend, flagWindow = "", "", 0
	flagQuiet, flagVerbose = true, false
	flagAddCategory, flagAddDescription = "", ""
	flagDoneDate, flagDeleteYes = "", false
	flagCalendarMonth, flagHistoryDays = "", 0
	flagExportFormat, flagExportOutput = store.FormatJSON, ""

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("HABITRACK_DATA_FILE", "")
	return dir
}

func loadSnapshot(t *testing.T, kind, path string) model.Snapshot {
	t.Helper()
	b, err := store.Open(kind, path, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()
	snap, err := b.Load()
	require.NoError(t, err)
	return snap
}

func TestCLI_AddDoneDelete(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "habits.json")

	require.NoError(t, runCLI(t, "add", "Read", "-c", "Learning", "-f", path))
	require.NoError(t, runCLI(t, "add", "Run", "-f", path))
	require.NoError(t, runCLI(t, "done", "Read", "--date", "2024-06-03", "-f", path))

	snap := loadSnapshot(t, store.FormatJSON, path)
	require.Len(t, snap.Habits, 2)
	assert.Equal(t, "Read", snap.Habits[0].Name)
	assert.Equal(t, "Learning", snap.Habits[0].Category)
	assert.Equal(t, []string{"2024-06-03"}, snap.Completions["Read"])

	require.NoError(t, runCLI(t, "delete", "Read", "--yes", "-f", path))
	snap = loadSnapshot(t, store.FormatJSON, path)
	require.Len(t, snap.Habits, 1)
	assert.NotContains(t, snap.Completions, "Read")
}

func TestCLI_ValidationErrors(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "habits.json")

	require.NoError(t, runCLI(t, "add", "Read", "-f", path))

	err := runCLI(t, "add", "Read", "-f", path)
	assert.ErrorIs(t, err, tracker.ErrDuplicateName)

	err = runCLI(t, "add", "   ", "-f", path)
	assert.ErrorIs(t, err, tracker.ErrEmptyName)

	err = runCLI(t, "done", "Nope", "-f", path)
	assert.ErrorIs(t, err, tracker.ErrNotFound)

	err = runCLI(t, "done", "Read", "--date", "June 3", "-f", path)
	assert.ErrorContains(t, err, "invalid --date")

	// Tests never run on a terminal, so delete needs --yes
	err = runCLI(t, "delete", "Read", "-f", path)
	assert.ErrorContains(t, err, "--yes")
	assert.Len(t, loadSnapshot(t, store.FormatJSON, path).Habits, 1)
}

func TestCLI_MalformedDataFailsFast(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "habits.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"habits": [`), 0o600))

	err := runCLI(t, "list", "-f", path)
	var malformed *store.MalformedDataError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, errorMessage(err), "move it aside")

	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, `{"habits": [`, string(raw), "bad file is left untouched")
}

func TestCLI_SQLiteBackend(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "habits.db")

	require.NoError(t, runCLI(t, "add", "Stretch", "--backend", "sqlite", "-f", path))
	require.NoError(t, runCLI(t, "done", "Stretch", "--date", "2024-01-31", "--backend", "sqlite", "-f", path))

	snap := loadSnapshot(t, "sqlite", path)
	require.Len(t, snap.Habits, 1)
	assert.Equal(t, []string{"2024-01-31"}, snap.Completions["Stretch"])
}

func TestCLI_ReadCommandsRun(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "habits.json")
	out := filepath.Join(dir, "export.yaml")

	require.NoError(t, runCLI(t, "add", "Read", "-f", path))
	require.NoError(t, runCLI(t, "done", "Read", "-f", path))

	for _, args := range [][]string{
		{"-f", path},
		{"list", "-f", path},
		{"stats", "-f", path},
		{"stats", "Read", "-f", path},
		{"calendar", "-f", path},
		{"calendar", "Read", "--month", "2023-12", "-f", path},
		{"history", "--days", "7", "-f", path},
		{"config"},
	} {
		assert.NoError(t, runCLI(t, args...), "%v", args)
	}

	require.NoError(t, runCLI(t, "export", "--format", "yaml", "-o", out, "-f", path))
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "name: Read")

	assert.Error(t, runCLI(t, "calendar", "Nope", "-f", path))
	assert.Error(t, runCLI(t, "stats", "Nope", "-f", path))
}

func TestErrorMessage_Persistence(t *testing.T) {
	err := &tracker.PersistenceError{Op: "add", Path: "/ro/habits.json", Err: errors.New("read-only")}
	msg := errorMessage(err)
	assert.Contains(t, msg, "not saved")
	assert.Contains(t, msg, "/ro/habits.json")
	assert.True(t, isPersistence(err))
}
