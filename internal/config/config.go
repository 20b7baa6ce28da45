// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lsxdev/lsx/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "lsx"
	// EnvPrefix is the prefix of environment variable overrides (LSX_COLOR).
	EnvPrefix = "LSX"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

// ErrConfigNotFound is returned when an explicitly named config file does
// not exist.
var ErrConfigNotFound = errors.New("config file not found")

//go:embed config_schema.cue
var configSchema string

// Every key is registered with Viper so that AutomaticEnv and Unmarshal see
// it even when no file sets it.
var (
	valueKeys = []string{"color", "icons", "sort", "time", "time_style", "color_scale", "color_scale_mode"}
	flagKeys  = []string{"group_directories_first", "classify", "header", "git", "long"}
)

// ConfigDir returns the lsx configuration directory: %APPDATA%\lsx on
// Windows, ~/Library/Application Support/lsx on macOS, and
// $XDG_CONFIG_HOME/lsx (default ~/.config/lsx) elsewhere.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// loadWithOptions builds a fresh Viper instance for every call, so loading
// never touches package state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	defaults := DefaultConfig()
	for _, k := range valueKeys {
		v.SetDefault(k, "")
	}
	for _, k := range flagKeys {
		v.SetDefault(k, false)
	}
	v.SetDefault("log_level", string(defaults.LogLevel))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path, err := locate(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the keys and values match the #Config schema").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.WrapWithContext(err, "decode configuration", path)
	}
	cfg.source = path

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check the LSX_LOG_LEVEL environment variable").
			Wrap(err).
			BuildError()
	}
	return &cfg, nil
}

// locate picks the config file to read. An explicit path must exist; the
// default locations are skipped silently when absent.
func locate(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath.IsSet() {
		path := string(opts.ConfigFilePath.Expand())
		if !fileExists(path) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigNotFoundId).
				WithSuggestion("Verify the path given with --config or LSX_CONFIG").
				Wrap(ErrConfigNotFound).
				BuildError()
		}
		return path, nil
	}

	dir := string(opts.ConfigDirPath.Expand())
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}

	name := ConfigFileName + "." + ConfigFileExt
	for _, candidate := range []string{filepath.Join(dir, name), name} {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
