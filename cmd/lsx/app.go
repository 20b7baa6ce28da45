// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lsxdev/lsx/internal/config"
	"github.com/lsxdev/lsx/internal/issue"
	"github.com/lsxdev/lsx/pkg/types"
)

type (
	// App is the composition root of the CLI. Command handlers only reach
	// services through it.
	App struct {
		Config   ConfigProvider
		Renderer Renderer
		Getenv   func(string) string
		stdout   io.Writer
		stderr   io.Writer
		logger   *slog.Logger
		verbose  bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Renderer Renderer
		Getenv   func(string) string
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads user configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Renderer == nil {
		deps.Renderer = &explainRenderer{}
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}

	return &App{
		Config:   deps.Config,
		Renderer: deps.Renderer,
		Getenv:   deps.Getenv,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
		logger:   newLogger(deps.Stderr, config.LogLevelWarn),
	}
}

// loadConfig loads user configuration and switches the logger to the
// configured level.
//
// A config named explicitly with --config or LSX_CONFIG must load; its
// failure is returned with ExitFailure. Any other failure is logged as a
// warning and the built-in defaults are used.
func (a *App) loadConfig(ctx context.Context, configPath string) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: types.FilesystemPath(configPath)})
	if err != nil {
		if configPath != "" {
			return nil, failureError(err)
		}
		a.logger.Warn("failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	a.logger = newLogger(a.stderr, cfg.LogLevel)
	a.verbose = cfg.LogLevel == config.LogLevelDebug
	if src := cfg.Source(); src != "" {
		a.logger.Info("loaded config", "path", src)
	}
	return cfg, nil
}

// logIssueHelp renders the catalog page linked to err at debug level.
func (a *App) logIssueHelp(err error) {
	if !a.verbose {
		return
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return
	}
	help, renderErr := ae.Help("dark")
	if renderErr != nil {
		a.logger.Warn("failed to render issue catalog entry", "issue", ae.Issue, "error", renderErr)
		return
	}
	if help != "" {
		fmt.Fprint(a.stderr, help)
	}
}

// formatErrorForDisplay formats err for the user. ActionableErrors list
// their suggestions; verbose mode adds the cause chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
