package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glasslab/internal/config"
	"github.com/alexisbeaulieu97/glasslab/internal/logger"
	glerrors "github.com/alexisbeaulieu97/glasslab/pkg/errors"
)

// isTerminal is replaced in tests.
var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

// appContext resolves settings and loggers from the root flags.
type appContext struct {
	flags *rootFlags
}

func (a *appContext) loadSettings() (*config.Settings, error) {
	if err := validateConfigPath(a.flags.configPath); err != nil {
		return nil, err
	}
	return config.Load(a.flags.configPath)
}

func (a *appContext) level(settings *config.Settings) string {
	if a.flags.verbose {
		return "debug"
	}
	if settings != nil && settings.LogLevel != "" {
		return settings.LogLevel
	}
	return "info"
}

// commandLogger writes console logs to the command's stderr.
func (a *appContext) commandLogger(cmd *cobra.Command, settings *config.Settings, name string) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         a.level(settings),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log.With("command", name), nil
}

// screenLogger logs to --log-file, or nowhere, so a running screen is not
// overwritten by log lines.
func (a *appContext) screenLogger(settings *config.Settings, name string) (*logger.Logger, func(), error) {
	if a.flags.logFile == "" {
		return logger.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(a.flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.New(logger.Options{Level: a.level(settings), Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log.With("command", name), func() { _ = f.Close() }, nil
}

func (a *appContext) logSettings(log *logger.Logger, settings *config.Settings) {
	source := a.flags.configPath
	if source == "" {
		source = "default"
	}
	log.WithFields(map[string]any{"source": source, "version": settings.Version}).Debug("settings loaded")
}

func requireTerminal(screen string) error {
	if !isTerminal(int(os.Stdout.Fd())) {
		return glerrors.NewTerminalError(screen)
	}
	return nil
}
