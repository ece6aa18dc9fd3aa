package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/star-snake/internal/audio"
	"github.com/vovakirdan/star-snake/internal/config"
	"github.com/vovakirdan/star-snake/internal/core"
	"github.com/vovakirdan/star-snake/internal/games/snake"
	"github.com/vovakirdan/star-snake/internal/platform/tui"
	"github.com/vovakirdan/star-snake/internal/storage"
)

// session holds the services shared by every game started from one command.
type session struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	store   *storage.Store
	player  audio.Player

	closers []func()
}

// newSession loads the configuration and opens the log, the database and
// the speaker. Only configuration errors are fatal; the game runs without
// storage or sound when those are unavailable.
func newSession() (*session, error) {
	s := &session{}

	logger, closeLog, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, err
	}
	s.logger = logger
	s.closers = append(s.closers, closeLog)

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.cfg = cfg
	snake.SetConfig(cfg)
	logger.Debug("config loaded", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"base_ms", cfg.Speed.BaseIntervalMS, "min_ms", cfg.Speed.MinIntervalMS, "bonus", cfg.Bonus.Enabled)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
	} else {
		s.store = store
		s.closers = append(s.closers, func() { store.Close() })
	}

	player, closeAudio := audio.New(cfg.Audio, flagMute, logger)
	s.player = player
	s.closers = append(s.closers, closeAudio)

	s.runtime = runtimeConfig()
	return s, nil
}

// options returns the platform services for one game.
func (s *session) options() tui.Options {
	return tui.Options{Store: s.store, Audio: s.player, Logger: s.logger}
}

// Close releases everything in reverse order of opening.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// loadConfig reads snake.yaml and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, fmt.Errorf("config: invalid settings: %w", err)
	}
	return cfg, nil
}

// newLogger writes to ~/.starsnake/starsnake.log, since the game owns the
// terminal while it runs.
func newLogger(level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if path := config.UserPath("starsnake.log"); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				out = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "starsnake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// runtimeConfig reads the terminal size and the global tick and seed flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
