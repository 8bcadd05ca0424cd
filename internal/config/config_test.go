package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, filepath.Join(dir, "nested", DefaultDBName), cfg.DBPath)
	require.Equal(t, "q", cfg.Keys.Quit)
	require.Equal(t, " ", cfg.Keys.Toggle)
	require.Equal(t, "1", cfg.Keys.Today)
}

func TestLoadOrCreateReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	data := []byte(`db_path = "/tmp/elsewhere.db"
log_level = "debug"

[keys]
quit = "Q"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/elsewhere.db", cfg.DBPath)
	require.Equal(t, "Q", cfg.Keys.Quit)
	require.Equal(t, "j", cfg.Keys.Down, "unset keys keep their defaults")
	require.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadOrCreateEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	t.Setenv("MYLISTS_DB_PATH", "/tmp/from-env.db")
	t.Setenv("MYLISTS_KEYS_QUIT", "ctrl+q")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	require.Equal(t, "ctrl+q", cfg.Keys.Quit)
}

func TestLoadOrCreateRejectsBrokenToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("db_path = ["), 0o644))

	_, err := LoadOrCreate(path)
	require.Error(t, err)
}

func TestResolveConfigPathFromEnv(t *testing.T) {
	t.Setenv("MYLISTS_CONFIG", "/tmp/custom.toml")
	require.Equal(t, "/tmp/custom.toml", ResolveConfigPath())
}

func TestLevel(t *testing.T) {
	require.Equal(t, slog.LevelInfo, Config{}.Level())
	require.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.Level())
	require.Equal(t, slog.LevelError, Config{LogLevel: "error"}.Level())
}
