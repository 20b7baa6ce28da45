// SPDX-License-Identifier: MPL-2.0

package options

import (
	"errors"
	"fmt"
	"strings"
)

const (
	TimeModified TimeField = "modified"
	TimeAccessed TimeField = "accessed"
	TimeCreated  TimeField = "created"
	TimeChanged  TimeField = "changed"

	TimeStyleDefault  TimeStyle = "default"
	TimeStyleISO      TimeStyle = "iso"
	TimeStyleLongISO  TimeStyle = "long-iso"
	TimeStyleFullISO  TimeStyle = "full-iso"
	TimeStyleRelative TimeStyle = "relative"
)

var (
	// ErrInvalidTimeField is the sentinel error wrapped by InvalidTimeFieldError.
	ErrInvalidTimeField = errors.New("invalid time field")
	// ErrInvalidTimeStyle is the sentinel error wrapped by InvalidTimeStyleError.
	ErrInvalidTimeStyle = errors.New("invalid time style")
)

type (
	// TimeField selects which timestamp the time column shows.
	TimeField string

	// InvalidTimeFieldError is returned by IsValid for a non-canonical TimeField.
	InvalidTimeFieldError struct {
		Value TimeField
	}

	// TimeStyle selects how timestamps are formatted.
	TimeStyle string

	// InvalidTimeStyleError is returned when --time-style carries a token
	// outside the accepted set.
	InvalidTimeStyleError struct {
		Value string
	}
)

var (
	timeFieldAliases = aliasTable[TimeField]{
		"modified": TimeModified,
		"mod":      TimeModified,
		"mtime":    TimeModified,
		"accessed": TimeAccessed,
		"acc":      TimeAccessed,
		"atime":    TimeAccessed,
		"created":  TimeCreated,
		"cr":       TimeCreated,
		"btime":    TimeCreated,
		"changed":  TimeChanged,
		"ch":       TimeChanged,
		"ctime":    TimeChanged,
	}

	timeStyleAliases = aliasTable[TimeStyle]{
		"default":  TimeStyleDefault,
		"iso":      TimeStyleISO,
		"long-iso": TimeStyleLongISO,
		"longiso":  TimeStyleLongISO,
		"long_iso": TimeStyleLongISO,
		"full-iso": TimeStyleFullISO,
		"fulliso":  TimeStyleFullISO,
		"full_iso": TimeStyleFullISO,
		"relative": TimeStyleRelative,
		"rel":      TimeStyleRelative,
	}
)

// DecodeTimeField maps free text to a TimeField, defaulting to TimeModified.
func DecodeTimeField(raw string) TimeField {
	return timeFieldAliases.decode(raw, TimeModified)
}

// DecodeTimeStyle maps free text to a TimeStyle, defaulting to TimeStyleDefault.
func DecodeTimeStyle(raw string) TimeStyle {
	return timeStyleAliases.decode(raw, TimeStyleDefault)
}

// ParseTimeStyle is the strict boundary form of DecodeTimeStyle.
func ParseTimeStyle(raw string) (TimeStyle, error) {
	if s, ok := timeStyleAliases.lookup(raw); ok {
		return s, nil
	}
	return "", &InvalidTimeStyleError{Value: raw}
}

// String returns the canonical spelling.
func (f TimeField) String() string { return string(f) }

// IsValid returns whether f is one of the canonical time fields.
func (f TimeField) IsValid() (bool, []error) {
	switch f {
	case TimeModified, TimeAccessed, TimeCreated, TimeChanged:
		return true, nil
	default:
		return false, []error{&InvalidTimeFieldError{Value: f}}
	}
}

// Error implements the error interface for InvalidTimeFieldError.
func (e *InvalidTimeFieldError) Error() string {
	return fmt.Sprintf("invalid time field %q (valid: %s)",
		e.Value, strings.Join(timeFieldAliases.canonical(), ", "))
}

// Unwrap returns ErrInvalidTimeField for errors.Is() compatibility.
func (e *InvalidTimeFieldError) Unwrap() error { return ErrInvalidTimeField }

// String returns the canonical spelling.
func (s TimeStyle) String() string { return string(s) }

// IsValid returns whether s is one of the canonical time styles.
func (s TimeStyle) IsValid() (bool, []error) {
	switch s {
	case TimeStyleDefault, TimeStyleISO, TimeStyleLongISO, TimeStyleFullISO, TimeStyleRelative:
		return true, nil
	default:
		return false, []error{&InvalidTimeStyleError{Value: string(s)}}
	}
}

// Error implements the error interface for InvalidTimeStyleError.
func (e *InvalidTimeStyleError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s (valid: %s)",
		e.Value, OptionTimeStyle, strings.Join(timeStyleAliases.canonical(), ", "))
}

// Unwrap returns ErrInvalidTimeStyle for errors.Is() compatibility.
func (e *InvalidTimeStyleError) Unwrap() error { return ErrInvalidTimeStyle }
