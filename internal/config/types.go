// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lsxdev/lsx/internal/options"
)

const (
	// LogLevelDebug logs every resolution decision and renders issue pages.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs which config file was used.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs recoverable problems such as an unreadable config file.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs failures only.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidLogLevel is the sentinel error wrapped by InvalidLogLevelError.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum severity written to stderr.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidConfigError collects every invalid field of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds user preferences. Empty strings and false booleans mean
	// "no preference": the built-in default of the resolver applies.
	Config struct {
		Color          string `json:"color" mapstructure:"color"`
		Icons          string `json:"icons" mapstructure:"icons"`
		Sort           string `json:"sort" mapstructure:"sort"`
		Time           string `json:"time" mapstructure:"time"`
		TimeStyle      string `json:"time_style" mapstructure:"time_style"`
		ColorScale     string `json:"color_scale" mapstructure:"color_scale"`
		ColorScaleMode string `json:"color_scale_mode" mapstructure:"color_scale_mode"`

		GroupDirectoriesFirst bool `json:"group_directories_first" mapstructure:"group_directories_first"`
		Classify              bool `json:"classify" mapstructure:"classify"`
		Header                bool `json:"header" mapstructure:"header"`
		Git                   bool `json:"git" mapstructure:"git"`
		Long                  bool `json:"long" mapstructure:"long"`

		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`

		// source is the config file that was read, if any.
		source string
	}
)

// DefaultConfig returns a Config with no preferences and warn-level logging.
func DefaultConfig() *Config {
	return &Config{LogLevel: LogLevelWarn}
}

// Source returns the path of the config file that was read, or "" when only
// defaults and environment variables were used.
func (c *Config) Source() string { return c.source }

// OptionDefaults returns the value-option preferences keyed by option.
// Unset preferences are omitted.
func (c *Config) OptionDefaults() map[options.Option]string {
	out := make(map[options.Option]string)
	for o, v := range map[options.Option]string{
		options.OptionColor:          c.Color,
		options.OptionIcons:          c.Icons,
		options.OptionSort:           c.Sort,
		options.OptionTime:           c.Time,
		options.OptionTimeStyle:      c.TimeStyle,
		options.OptionColorScale:     c.ColorScale,
		options.OptionColorScaleMode: c.ColorScaleMode,
	} {
		if v != "" {
			out[o] = v
		}
	}
	return out
}

// FlagDefaults returns the counted toggles the user wants switched on.
func (c *Config) FlagDefaults() []options.Flag {
	var out []options.Flag
	for _, fd := range []struct {
		on   bool
		flag options.Flag
	}{
		{c.GroupDirectoriesFirst, options.FlagDirsFirst},
		{c.Classify, options.FlagClassify},
		{c.Header, options.FlagHeader},
		{c.Git, options.FlagGit},
		{c.Long, options.FlagLong},
	} {
		if fd.on {
			out = append(out, fd.flag)
		}
	}
	return out
}

// Validate checks the fields that environment variables can set without
// passing through the CUE schema. Option values are validated later,
// together with the command line.
func (c *Config) Validate() error {
	if c.LogLevel == "" {
		return nil
	}
	if ok, errs := c.LogLevel.IsValid(); !ok {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Slog maps the level to its log/slog counterpart. Unknown levels map to
// slog.LevelWarn.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig together with the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
