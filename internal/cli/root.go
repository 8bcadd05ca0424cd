// Package cli wires configuration, logging and storage together and exposes
// them as the mylists command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"mylists/internal/config"
	"mylists/internal/storage"
	"mylists/internal/ui"
)

type app struct {
	cfg     config.Config
	store   *storage.Store
	log     *slog.Logger
	logFile *os.File
}

func (a *app) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// NewRootCmd builds the mylists command. Without a subcommand it starts
// the interactive lists screen.
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mylists",
		Short:         "Task lists in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			a.log.Info("starting ui")
			return ui.Run(a.store, a.cfg, a.log)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $MYLISTS_CONFIG or the user config dir)")

	open := func() (*app, error) { return openApp(configPath) }
	root.AddCommand(
		newStatsCmd(open, now),
		newListsCmd(open),
		newTasksCmd(open, now),
		newSearchCmd(open, now),
	)
	return root
}

func openApp(configPath string) (*app, error) {
	if configPath == "" {
		configPath = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logFile, err := openLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	store, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &app{cfg: cfg, store: store, log: logger, logFile: logFile}, nil
}

func openLogger(cfg config.Config) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()})
	return slog.New(h), f, nil
}
