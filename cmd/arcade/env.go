package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/platform/tui"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

// openLogger opens the log file. The terminal belongs to the TUI, so
// nothing is logged to stdout.
func openLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, f, nil
}

// openBackend opens the scores database. On failure it warns and falls
// back to in-memory storage so the game still works.
func openBackend(logger *log.Logger) (tui.Backend, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("falling back to memory storage", "db", flagDBPath, "error", err)
		return storage.NewMemory(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close database", "error", err)
		}
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newEnv wires logger, storage and runtime config for the TUI. The
// returned func releases them.
func newEnv() (tui.Env, func(), error) {
	logger, logFile, err := openLogger()
	if err != nil {
		return tui.Env{}, nil, err
	}
	backend, closeBackend := openBackend(logger)

	env := tui.Env{
		Backend: backend,
		Logger:  logger,
		Runtime: runtimeConfig(),
	}
	cleanup := func() {
		closeBackend()
		//nolint:errcheck // Best-effort close on exit
		logFile.Close()
	}
	return env, cleanup, nil
}
