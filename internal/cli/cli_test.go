package cli

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mylists/internal/config"
	"mylists/internal/storage"
)

var fixedNow = time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC)

// setup writes a config into a temp dir and seeds the database it points at.
func setup(t *testing.T) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := config.LoadOrCreate(configPath)
	require.NoError(t, err)

	store, err := storage.Open(cfg.DBPath, nil)
	require.NoError(t, err)
	defer store.Close()

	home, err := store.AddList("Home", "")
	require.NoError(t, err)
	_, err = store.AddList("Work", "")
	require.NoError(t, err)
	_, err = store.AddTask(home.ID, "Buy milk")
	require.NoError(t, err)
	bills, err := store.AddTask(home.ID, "Pay bills")
	require.NoError(t, err)
	require.NoError(t, store.SetReminder(bills.ID, sql.NullTime{Time: fixedNow.Add(3 * time.Hour), Valid: true}))
	old, err := store.AddTask(home.ID, "Old")
	require.NoError(t, err)
	require.NoError(t, store.SetCompleted(old.ID, true))
	return configPath
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(func() time.Time { return fixedNow })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config=" + configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	configPath := setup(t)
	out, err := run(t, configPath, "stats")
	require.NoError(t, err)
	require.Equal(t, "Today      1\nScheduled  1\nAll        2\nCompleted  1\n", out)
}

func TestListsCommand(t *testing.T) {
	configPath := setup(t)
	out, err := run(t, configPath, "lists")
	require.NoError(t, err)
	require.Equal(t, "Home\t2\nWork\t0\n", out)
}

func TestTasksCommand(t *testing.T) {
	configPath := setup(t)
	out, err := run(t, configPath, "tasks", "home")
	require.NoError(t, err)
	require.Equal(t, "[ ] Buy milk\n[ ] Pay bills (3 hours from now)\n[x] Old\n", out)

	_, err = run(t, configPath, "tasks", "Nowhere")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSearchCommand(t *testing.T) {
	configPath := setup(t)

	out, err := run(t, configPath, "search", "BILLS")
	require.NoError(t, err)
	require.Equal(t, "[ ] Pay bills (3 hours from now)\n", out)

	out, err = run(t, configPath, "search", "old")
	require.NoError(t, err)
	require.Contains(t, out, "No matching tasks")

	out, err = run(t, configPath, "search", "mlik")
	require.NoError(t, err)
	require.Contains(t, out, `Did you mean "Buy milk"?`)
}

func TestCommandsRejectBadArgs(t *testing.T) {
	configPath := setup(t)
	_, err := run(t, configPath, "stats", "extra")
	require.Error(t, err)
	_, err = run(t, configPath, "search")
	require.Error(t, err)
}
