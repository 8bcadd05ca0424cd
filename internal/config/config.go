package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "mylists.db"
	DefaultLogName        = "mylists.log"
	appDirName            = "mylists"
	envPrefix             = "MYLISTS"
)

type Keymap struct {
	Quit      string `toml:"quit" mapstructure:"quit"`
	Up        string `toml:"up" mapstructure:"up"`
	Down      string `toml:"down" mapstructure:"down"`
	Open      string `toml:"open" mapstructure:"open"`
	Back      string `toml:"back" mapstructure:"back"`
	AddList   string `toml:"add_list" mapstructure:"add_list"`
	EditList  string `toml:"edit_list" mapstructure:"edit_list"`
	Mark      string `toml:"mark" mapstructure:"mark"`
	Delete    string `toml:"delete" mapstructure:"delete"`
	Search    string `toml:"search" mapstructure:"search"`
	AddTask   string `toml:"add_task" mapstructure:"add_task"`
	Toggle    string `toml:"toggle" mapstructure:"toggle"`
	Reminder  string `toml:"reminder" mapstructure:"reminder"`
	Rename    string `toml:"rename" mapstructure:"rename"`
	Confirm   string `toml:"confirm" mapstructure:"confirm"`
	Cancel    string `toml:"cancel" mapstructure:"cancel"`
	Today     string `toml:"today" mapstructure:"today"`
	Scheduled string `toml:"scheduled" mapstructure:"scheduled"`
	All       string `toml:"all" mapstructure:"all"`
	Completed string `toml:"completed" mapstructure:"completed"`
}

type Config struct {
	DBPath   string `toml:"db_path" mapstructure:"db_path"`
	LogPath  string `toml:"log_path" mapstructure:"log_path"`
	LogLevel string `toml:"log_level" mapstructure:"log_level"`
	Keys     Keymap `toml:"keys" mapstructure:"keys"`
}

// ResolveConfigPath returns $MYLISTS_CONFIG when set, otherwise config.toml
// under the user config directory.
func ResolveConfigPath() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate writes a default config on first launch, then loads the file
// layered over the defaults with MYLISTS_* environment overrides applied.
func LoadOrCreate(path string) (Config, error) {
	defaults := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, defaults); err != nil {
			return defaults, err
		}
	}

	base, err := toml.Marshal(defaults)
	if err != nil {
		return defaults, err
	}
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(base)); err != nil {
		return defaults, fmt.Errorf("read defaults: %w", err)
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return defaults, fmt.Errorf("read config %s: %w", path, err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaults.DBPath
	}
	if cfg.LogPath == "" {
		cfg.LogPath = defaults.LogPath
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Level maps log_level to a slog level; unknown values fall back to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:   filepath.Join(dir, DefaultDBName),
		LogPath:  filepath.Join(dir, DefaultLogName),
		LogLevel: "info",
		Keys: Keymap{
			Quit:      "q",
			Up:        "k",
			Down:      "j",
			Open:      "enter",
			Back:      "esc",
			AddList:   "a",
			EditList:  "e",
			Mark:      "x",
			Delete:    "d",
			Search:    "/",
			AddTask:   "n",
			Toggle:    " ",
			Reminder:  "r",
			Rename:    "R",
			Confirm:   "enter",
			Cancel:    "esc",
			Today:     "1",
			Scheduled: "2",
			All:       "3",
			Completed: "4",
		},
	}
}
