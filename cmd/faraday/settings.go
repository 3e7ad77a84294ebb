package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/san-kum/faraday/internal/config"
	"github.com/san-kum/faraday/internal/tutor"
	"github.com/san-kum/faraday/internal/viz"
	"github.com/spf13/cobra"
)

// resolveConfig layers settings: defaults, then preset, then config file,
// then any flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	path := configFile
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	if path != "" {
		loaded, err := config.LoadOver(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("turns") {
		cfg.Controls.Turns = turns
	}
	if flags.Changed("speed") {
		cfg.Controls.Speed = speed
	}
	if flags.Changed("amplitude") {
		cfg.Controls.Amplitude = amplitude
	}
	if flags.Changed("fps") {
		cfg.Controls.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("play") {
		cfg.Controls.Playing = playing
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger logs to stderr for plain commands. Full-screen commands log to
// the configured file, or nowhere, so the terminal stays clean.
func newLogger(cfg *config.Config, fullscreen bool) (*log.Logger, func(), error) {
	name := cfg.Log.Level
	if name == "" {
		name = config.DefaultLogLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = func() { f.Close() }
	case fullscreen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "faraday",
		ReportTimestamp: cfg.Log.File != "",
	})
	return logger, closer, nil
}

func newTutor(ctx context.Context, cfg *config.Config, logger *log.Logger) (*tutor.Tutor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tu, err := tutor.FromKey(ctx, cfg.APIKey(), cfg.Tutor.Model, logger, cfg.Tutor.Timeout)
	if err != nil {
		return nil, err
	}
	if !tu.Available() {
		logger.Debug("tutor disabled", "env", cfg.Tutor.KeyEnv)
	}
	return tu, nil
}

// ignoreStop treats cancellation and deadline as a normal end of a
// long-running command.
func ignoreStop(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func joinPresets() string { return strings.Join(config.ListPresets(), ", ") }
func joinThemes() string  { return strings.Join(viz.ThemeNames(), ", ") }
