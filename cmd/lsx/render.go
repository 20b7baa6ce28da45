// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lsxdev/lsx/internal/options"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	// FormatText is a styled, human readable table.
	FormatText ExplainFormat = "text"
	// FormatJSON is an indented JSON document.
	FormatJSON ExplainFormat = "json"
	// FormatTOML is a TOML document with one [[decisions]] table per axis.
	FormatTOML ExplainFormat = "toml"
	// FormatYAML is a YAML document.
	FormatYAML ExplainFormat = "yaml"

	// fallbackWidth is used when output is not a terminal and no width was given.
	fallbackWidth = 80
)

// ErrInvalidExplainFormat is the sentinel error wrapped by InvalidExplainFormatError.
var ErrInvalidExplainFormat = errors.New("invalid explain format")

type (
	// ExplainFormat selects how the resolved configuration is printed.
	ExplainFormat string

	// InvalidExplainFormatError is returned for an unknown --explain-format.
	InvalidExplainFormatError struct {
		Value string
	}

	// Renderer writes a resolved configuration.
	Renderer interface {
		Render(w io.Writer, cfg options.Config, format ExplainFormat) error
	}

	// explainDocument is the machine readable form shared by JSON, TOML and YAML.
	explainDocument struct {
		Paths     []string           `json:"paths" toml:"paths" yaml:"paths"`
		Decisions []options.Decision `json:"decisions" toml:"decisions" yaml:"decisions"`
	}

	explainRenderer struct{}
)

// ParseExplainFormat parses raw case-insensitively.
func ParseExplainFormat(raw string) (ExplainFormat, error) {
	f := ExplainFormat(strings.ToLower(strings.TrimSpace(raw)))
	if ok, errs := f.IsValid(); !ok {
		return "", errors.Join(errs...)
	}
	return f, nil
}

func (f ExplainFormat) String() string { return string(f) }

// IsValid returns whether f is a supported format.
func (f ExplainFormat) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, FormatTOML, FormatYAML:
		return true, nil
	default:
		return false, []error{&InvalidExplainFormatError{Value: string(f)}}
	}
}

// Error implements the error interface for InvalidExplainFormatError.
func (e *InvalidExplainFormatError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s (valid: text, json, toml, yaml)", e.Value, flagExplainFormat)
}

// Unwrap returns ErrInvalidExplainFormat for errors.Is() compatibility.
func (e *InvalidExplainFormatError) Unwrap() error { return ErrInvalidExplainFormat }

// newDocument flattens cfg into its provenance list.
func newDocument(cfg options.Config) explainDocument {
	paths := cfg.Input.Paths()
	if paths == nil {
		paths = []string{}
	}
	return explainDocument{Paths: paths, Decisions: cfg.Decisions()}
}

// Render implements Renderer.
func (r *explainRenderer) Render(w io.Writer, cfg options.Config, format ExplainFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(cfg))
	case FormatTOML:
		return toml.NewEncoder(w).Encode(newDocument(cfg))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(cfg)); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return r.renderText(w, cfg)
	default:
		return &InvalidExplainFormatError{Value: string(format)}
	}
}

// renderText prints one line per axis: name, value and the deciding rule.
// Colour follows the resolved color mode and lines are cut to the resolved
// width.
func (r *explainRenderer) renderText(w io.Writer, cfg options.Config) error {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(colorProfile(w, cfg.Color.Mode))

	title := lr.NewStyle().Bold(true).Foreground(ColorPrimary)
	chosen := lr.NewStyle().Foreground(ColorHighlight)
	muted := lr.NewStyle().Foreground(ColorMuted)

	decisions := cfg.Decisions()
	axisWidth := 0
	for _, d := range decisions {
		axisWidth = max(axisWidth, lipgloss.Width(d.Axis))
	}
	axis := lr.NewStyle().Width(axisWidth + 2)
	line := lr.NewStyle()
	if width := outputWidth(w, cfg.Display.Width); width > 0 {
		line = line.MaxWidth(width)
	}

	var sb strings.Builder
	sb.WriteString(title.Render("lsx configuration"))
	sb.WriteString("\n")
	for _, d := range decisions {
		value := chosen.Render(d.Value)
		if d.Rule == options.RuleDefault {
			value = muted.Render(d.Value)
		}
		sb.WriteString(line.Render(axis.Render(d.Axis) + value + " " + muted.Render("("+d.Rule+")")))
		sb.WriteString("\n")
	}

	paths := cfg.Input.Paths()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	sb.WriteString(line.Render(axis.Render("paths") + strings.Join(paths, " ")))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// terminalFd returns the file descriptor behind w when it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// colorProfile maps the resolved color mode to a termenv profile. "auto"
// colours only terminals and honours NO_COLOR through the environment
// profile.
func colorProfile(w io.Writer, mode options.ShowWhen) termenv.Profile {
	switch mode {
	case options.ShowNever:
		return termenv.Ascii
	case options.ShowAlways:
		if p := termenv.EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	default:
		if _, ok := terminalFd(w); ok {
			return termenv.EnvColorProfile()
		}
		return termenv.Ascii
	}
}

// outputWidth returns the explicit width, else the terminal width, else
// fallbackWidth. Zero means unbounded.
func outputWidth(w io.Writer, limit options.Limit) int {
	if n, ok := limit.Value(); ok {
		return int(n)
	}
	if fd, ok := terminalFd(w); ok {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return cols
		}
	}
	return fallbackWidth
}
