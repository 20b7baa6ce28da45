// SPDX-License-Identifier: MPL-2.0

package options

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ShowAlways enables the feature unconditionally.
	ShowAlways ShowWhen = "always"
	// ShowAuto enables the feature when the output is a terminal.
	ShowAuto ShowWhen = "auto"
	// ShowNever disables the feature.
	ShowNever ShowWhen = "never"
)

// ErrInvalidShowWhen is the sentinel error wrapped by InvalidShowWhenError.
var ErrInvalidShowWhen = errors.New("invalid show mode")

type (
	// ShowWhen is the tri-state activation mode shared by --color and --icons.
	ShowWhen string

	// InvalidShowWhenError is returned when a strictly validated option
	// (--color, --icons) carries a token outside the accepted set.
	InvalidShowWhenError struct {
		Option Option
		Value  string
	}
)

var showWhenAliases = aliasTable[ShowWhen]{
	"always": ShowAlways,
	"yes":    ShowAlways,
	"force":  ShowAlways,
	"auto":   ShowAuto,
	"tty":    ShowAuto,
	"if-tty": ShowAuto,
	"never":  ShowNever,
	"no":     ShowNever,
	"none":   ShowNever,
}

// DecodeShowWhen maps free text to a ShowWhen. It never fails: unknown or
// empty text decodes to ShowAuto.
func DecodeShowWhen(raw string) ShowWhen {
	return showWhenAliases.decode(raw, ShowAuto)
}

// ParseShowWhen is the strict boundary form of DecodeShowWhen. Text that is
// not a recognised alias, including the empty string, is rejected.
func ParseShowWhen(opt Option, raw string) (ShowWhen, error) {
	if w, ok := showWhenAliases.lookup(raw); ok {
		return w, nil
	}
	return "", &InvalidShowWhenError{Option: opt, Value: raw}
}

// String returns the canonical spelling.
func (w ShowWhen) String() string { return string(w) }

// IsValid returns whether w is one of the canonical modes.
func (w ShowWhen) IsValid() (bool, []error) {
	switch w {
	case ShowAlways, ShowAuto, ShowNever:
		return true, nil
	default:
		return false, []error{&InvalidShowWhenError{Value: string(w)}}
	}
}

// Error implements the error interface for InvalidShowWhenError.
func (e *InvalidShowWhenError) Error() string {
	name := "show mode"
	if e.Option != "" {
		name = "--" + string(e.Option)
	}
	return fmt.Sprintf("invalid value %q for %s (valid: %s)",
		e.Value, name, strings.Join(showWhenAliases.canonical(), ", "))
}

// Unwrap returns ErrInvalidShowWhen for errors.Is() compatibility.
func (e *InvalidShowWhenError) Unwrap() error { return ErrInvalidShowWhen }
