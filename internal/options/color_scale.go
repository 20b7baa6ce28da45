// SPDX-License-Identifier: MPL-2.0

package options

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorScaleNone disables scale-based colouring. It is the zero value.
	ColorScaleNone ColorScale = ""
	// ColorScaleAll scales both age and size.
	ColorScaleAll ColorScale = "all"
	// ColorScaleAge scales timestamps by age.
	ColorScaleAge ColorScale = "age"
	// ColorScaleSize scales file sizes.
	ColorScaleSize ColorScale = "size"

	// ColorScaleFixed uses a fixed set of colours per band.
	ColorScaleFixed ColorScaleMode = "fixed"
	// ColorScaleGradient interpolates between colours.
	ColorScaleGradient ColorScaleMode = "gradient"
)

var (
	// ErrInvalidColorScale is the sentinel error wrapped by InvalidColorScaleError.
	ErrInvalidColorScale = errors.New("invalid color scale")
	// ErrInvalidColorScaleMode is the sentinel error wrapped by InvalidColorScaleModeError.
	ErrInvalidColorScaleMode = errors.New("invalid color scale mode")
)

type (
	// ColorScale selects which metadata fields are coloured on a scale.
	ColorScale string

	// InvalidColorScaleError is returned by IsValid for a ColorScale that is
	// not a canonical kind.
	InvalidColorScaleError struct {
		Value ColorScale
	}

	// ColorScaleMode selects how a colour scale is drawn.
	ColorScaleMode string

	// InvalidColorScaleModeError is returned when --color-scale-mode carries
	// a token outside the accepted set.
	InvalidColorScaleModeError struct {
		Value string
	}
)

var (
	colorScaleAliases = aliasTable[ColorScale]{
		"all":      ColorScaleAll,
		"age,size": ColorScaleAll,
		"size,age": ColorScaleAll,
		"age":      ColorScaleAge,
		"time":     ColorScaleAge,
		"date":     ColorScaleAge,
		"size":     ColorScaleSize,
	}

	colorScaleModeAliases = aliasTable[ColorScaleMode]{
		"fixed":    ColorScaleFixed,
		"gradient": ColorScaleGradient,
	}
)

// DecodeColorScale maps free text to a ColorScale. Unknown or empty text
// decodes to ColorScaleNone, which turns the feature off.
func DecodeColorScale(raw string) ColorScale {
	return colorScaleAliases.decode(raw, ColorScaleNone)
}

// DecodeColorScaleMode maps free text to a ColorScaleMode, defaulting to
// ColorScaleGradient.
func DecodeColorScaleMode(raw string) ColorScaleMode {
	return colorScaleModeAliases.decode(raw, ColorScaleGradient)
}

// ParseColorScaleMode is the strict boundary form of DecodeColorScaleMode.
func ParseColorScaleMode(raw string) (ColorScaleMode, error) {
	if m, ok := colorScaleModeAliases.lookup(raw); ok {
		return m, nil
	}
	return "", &InvalidColorScaleModeError{Value: raw}
}

// String returns the canonical spelling, or "none" when the scale is off.
func (s ColorScale) String() string {
	if s == ColorScaleNone {
		return "none"
	}
	return string(s)
}

// Enabled reports whether s selects any field.
func (s ColorScale) Enabled() bool { return s != ColorScaleNone }

// IsValid returns whether s is ColorScaleNone or one of the canonical kinds.
func (s ColorScale) IsValid() (bool, []error) {
	switch s {
	case ColorScaleNone, ColorScaleAll, ColorScaleAge, ColorScaleSize:
		return true, nil
	default:
		return false, []error{&InvalidColorScaleError{Value: s}}
	}
}

// Error implements the error interface for InvalidColorScaleError.
func (e *InvalidColorScaleError) Error() string {
	return fmt.Sprintf("invalid color scale %q (valid: %s)",
		e.Value, strings.Join(colorScaleAliases.canonical(), ", "))
}

// Unwrap returns ErrInvalidColorScale for errors.Is() compatibility.
func (e *InvalidColorScaleError) Unwrap() error { return ErrInvalidColorScale }

// String returns the canonical spelling.
func (m ColorScaleMode) String() string { return string(m) }

// IsValid returns whether m is one of the canonical modes.
func (m ColorScaleMode) IsValid() (bool, []error) {
	switch m {
	case ColorScaleFixed, ColorScaleGradient:
		return true, nil
	default:
		return false, []error{&InvalidColorScaleModeError{Value: string(m)}}
	}
}

// Error implements the error interface for InvalidColorScaleModeError.
func (e *InvalidColorScaleModeError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s (valid: %s)",
		e.Value, OptionColorScaleMode, strings.Join(colorScaleModeAliases.canonical(), ", "))
}

// Unwrap returns ErrInvalidColorScaleMode for errors.Is() compatibility.
func (e *InvalidColorScaleModeError) Unwrap() error { return ErrInvalidColorScaleMode }
