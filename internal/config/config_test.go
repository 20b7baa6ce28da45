// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/lsxdev/lsx/internal/issue"
	"github.com/lsxdev/lsx/internal/options"
	"github.com/lsxdev/lsx/internal/testutil"
	"github.com/lsxdev/lsx/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
color:                   "never"
icons:                   "always"
sort:                    "size"
time_style:              "long-iso"
group_directories_first: true
long:                    true
log_level:               "debug"
`

func load(t *testing.T, opts LoadOptions) (*Config, error) {
	t.Helper()
	return NewProvider().Load(context.Background(), opts)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(t, LoadOptions{ConfigDirPath: types.FilesystemPath(t.TempDir())})
	require.NoError(t, err)

	assert.Equal(t, LogLevelWarn, cfg.LogLevel)
	assert.Empty(t, cfg.Source())
	assert.Empty(t, cfg.OptionDefaults())
	assert.Empty(t, cfg.FlagDefaults())
}

func TestLoadFromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.MustWriteFile(t, dir, "config.cue", sampleConfig)

	cfg, err := load(t, LoadOptions{ConfigDirPath: types.FilesystemPath(dir)})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source())
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, map[options.Option]string{
		options.OptionColor:     "never",
		options.OptionIcons:     "always",
		options.OptionSort:      "size",
		options.OptionTimeStyle: "long-iso",
	}, cfg.OptionDefaults())
	assert.Equal(t, []options.Flag{options.FlagDirsFirst, options.FlagLong}, cfg.FlagDefaults())
}

func TestLoadExplicitFile(t *testing.T) {
	t.Parallel()

	dirWithDefault := t.TempDir()
	testutil.MustWriteFile(t, dirWithDefault, "config.cue", `color: "always"`)
	explicit := testutil.MustWriteFile(t, t.TempDir(), "custom.cue", `color: "never"`)

	cfg, err := load(t, LoadOptions{
		ConfigFilePath: types.FilesystemPath(explicit),
		ConfigDirPath:  types.FilesystemPath(dirWithDefault),
	})
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color, "explicit file must be used exclusively")
	assert.Equal(t, explicit, cfg.Source())
}

func TestLoadExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.cue")
	_, err := load(t, LoadOptions{ConfigFilePath: types.FilesystemPath(missing)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var ae *issue.ActionableError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, issue.ConfigNotFoundId, ae.Issue)
	assert.Equal(t, missing, ae.Resource)
}

func TestLoadSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "unknown show mode", content: `color: "sometimes"`, wantMsg: "color"},
		{name: "wrong type", content: `long: "yes"`, wantMsg: "long"},
		{name: "unknown key", content: `colour: "never"`, wantMsg: "colour"},
		{name: "unknown log level", content: `log_level: "trace"`, wantMsg: "log_level"},
		{name: "syntax error", content: `color: "never`, wantMsg: "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			testutil.MustWriteFile(t, dir, "config.cue", tt.content)

			_, err := load(t, LoadOptions{ConfigDirPath: types.FilesystemPath(dir)})
			require.Error(t, err)

			var ae *issue.ActionableError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, issue.ConfigLoadFailedId, ae.Issue)
			assert.True(t, ae.HasSuggestions())
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, dir, "config.cue", sampleConfig)
	t.Setenv("LSX_COLOR", "auto")
	t.Setenv("LSX_CLASSIFY", "true")
	t.Setenv("LSX_LOG_LEVEL", "error")
	testutil.ClearEnv(t, "LSX_SORT")

	cfg, err := load(t, LoadOptions{ConfigDirPath: types.FilesystemPath(dir)})
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Color)
	assert.True(t, cfg.Classify)
	assert.Equal(t, LogLevelError, cfg.LogLevel)
	assert.Equal(t, "size", cfg.Sort, "keys without an override keep the file value")
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	// Not parallel: changes the working directory and the environment.
	testutil.ClearEnv(t, "LSX_SORT", "LSX_LOG_LEVEL")
	work := t.TempDir()
	testutil.MustWriteFile(t, work, "config.cue", `sort: "extension"`)
	testutil.MustChdir(t, work)

	cfg, err := load(t, LoadOptions{ConfigDirPath: types.FilesystemPath(t.TempDir())})
	require.NoError(t, err)

	assert.Equal(t, "config.cue", cfg.Source())
	assert.Equal(t, "extension", cfg.Sort)
}

func TestLoadEnvInvalidLogLevel(t *testing.T) {
	t.Setenv("LSX_LOG_LEVEL", "verbose")

	_, err := load(t, LoadOptions{ConfigDirPath: types.FilesystemPath(t.TempDir())})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadOptionsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadOptions{}.Validate())
	require.NoError(t, LoadOptions{ConfigFilePath: "/tmp/config.cue", ConfigDirPath: "/tmp"}.Validate())

	err := LoadOptions{ConfigFilePath: "  ", ConfigDirPath: "\t"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLoadOptions)
	assert.ErrorIs(t, err, types.ErrInvalidFilesystemPath)

	var loadErr *InvalidLoadOptionsError
	require.ErrorAs(t, err, &loadErr)
	assert.Len(t, loadErr.FieldErrors, 2)

	_, err = load(t, LoadOptions{ConfigFilePath: " "})
	assert.ErrorIs(t, err, ErrInvalidLoadOptions)
}

func TestConfigDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		dir := t.TempDir()
		SetConfigDirOverride(dir)
		t.Cleanup(Reset)

		got, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("xdg", func(t *testing.T) {
		if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
			t.Skip("XDG_CONFIG_HOME is only consulted on Linux and other Unix systems")
		}
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

		got, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdg", AppName), got)
	})
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	for _, l := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError} {
		ok, errs := l.IsValid()
		assert.True(t, ok, "level %s", l)
		assert.Empty(t, errs)
	}

	ok, errs := LogLevel("TRACE").IsValid()
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], ErrInvalidLogLevel))
	assert.True(t, strings.Contains(errs[0].Error(), "TRACE"))

	assert.Equal(t, "DEBUG", LogLevelDebug.Slog().String())
	assert.Equal(t, "WARN", LogLevel("").Slog().String())
	assert.Equal(t, "ERROR", LogLevelError.Slog().String())
}
