// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/lsxdev/lsx/internal/config"

	"github.com/charmbracelet/log"
)

// newLogger returns a slog.Logger backed by a charm log handler writing to
// w. Unknown levels fall back to warn.
func newLogger(w io.Writer, level config.LogLevel) *slog.Logger {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
	return slog.New(handler)
}
