// SPDX-License-Identifier: MPL-2.0

package options

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrInvalidCount is the sentinel error wrapped by InvalidCountError.
	ErrInvalidCount = errors.New("invalid flag count")
	// ErrUnknownFlag is the sentinel error wrapped by UnknownFlagError.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrUnknownOption is the sentinel error wrapped by UnknownOptionError.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidInvocation is the sentinel error wrapped by InvalidInvocationError.
	ErrInvalidInvocation = errors.New("invalid invocation")
)

type (
	// Input is the mutable staging form of an invocation. The CLI fills it
	// from parsed flags and hands it to NewInvocation.
	Input struct {
		// Counts holds the number of occurrences of each counted toggle.
		Counts map[Flag]int
		// Values holds the raw text of each value-bearing option that was given.
		Values map[Option]string
		// Paths are the positional arguments.
		Paths []string
	}

	// Invocation is an immutable record of what the user typed.
	// Create with NewInvocation; the zero value is an empty invocation.
	Invocation struct {
		counts map[Flag]int
		values map[Option]string
		paths  []string
	}

	// InvalidCountError is returned when a counted toggle has a negative count.
	InvalidCountError struct {
		Flag  Flag
		Value int
	}

	// UnknownFlagError is returned for a counted toggle that is not declared.
	UnknownFlagError struct {
		Flag Flag
	}

	// UnknownOptionError is returned for a value-bearing option that is not declared.
	UnknownOptionError struct {
		Option Option
	}

	// InvalidInvocationError collects every boundary validation failure of an
	// invocation. It wraps ErrInvalidInvocation for errors.Is() compatibility.
	InvalidInvocationError struct {
		FieldErrors []error
	}
)

// boundaryChecks lists the options whose text is validated strictly before
// resolution. Options not listed here (sort, time, color-scale, ignore-glob)
// are decoded leniently and never rejected.
var boundaryChecks = []struct {
	option Option
	check  func(raw string) error
}{
	{OptionWidth, func(raw string) error { _, err := ParseLimit(OptionWidth, raw); return err }},
	{OptionLevel, func(raw string) error { _, err := ParseLimit(OptionLevel, raw); return err }},
	{OptionColor, func(raw string) error { _, err := ParseShowWhen(OptionColor, raw); return err }},
	{OptionIcons, func(raw string) error { _, err := ParseShowWhen(OptionIcons, raw); return err }},
	{OptionTimeStyle, func(raw string) error { _, err := ParseTimeStyle(raw); return err }},
	{OptionColorScaleMode, func(raw string) error { _, err := ParseColorScaleMode(raw); return err }},
}

// NewInvocation freezes in into an Invocation. Counts of zero are dropped;
// negative counts and undeclared identifiers are rejected.
func NewInvocation(in Input) (Invocation, error) {
	var errs []error

	counts := make(map[Flag]int, len(in.Counts))
	for _, f := range slices.Sorted(maps.Keys(in.Counts)) {
		n := in.Counts[f]
		switch {
		case !f.IsKnown():
			errs = append(errs, &UnknownFlagError{Flag: f})
		case n < 0:
			errs = append(errs, &InvalidCountError{Flag: f, Value: n})
		case n > 0:
			counts[f] = n
		}
	}

	values := make(map[Option]string, len(in.Values))
	for _, o := range slices.Sorted(maps.Keys(in.Values)) {
		if !o.IsKnown() {
			errs = append(errs, &UnknownOptionError{Option: o})
			continue
		}
		values[o] = in.Values[o]
	}

	if len(errs) > 0 {
		return Invocation{}, &InvalidInvocationError{FieldErrors: errs}
	}

	return Invocation{
		counts: counts,
		values: values,
		paths:  slices.Clone(in.Paths),
	}, nil
}

// Preferences that share an axis with command-line toggles. A preference is
// dropped when any toggle listed for it was given.
var (
	valuePreferenceRivals = map[Option][]Flag{
		OptionTime: {FlagModified, FlagAccessed, FlagCreated, FlagChanged},
	}
	flagPreferenceRivals = map[Flag][]Flag{
		FlagLong: {FlagOneline, FlagGrid, FlagTree},
	}
)

// FillDefaults returns a copy of in where every option absent from in.Values
// takes its value from values, and every flag in flags with a zero count is
// counted once. Explicit command-line input always wins, including toggles
// that settle the same axis as a preference (-U beats a preferred time
// field, -1 beats a preferred long view).
func (in Input) FillDefaults(values map[Option]string, flags []Flag) Input {
	out := Input{
		Counts: maps.Clone(in.Counts),
		Values: maps.Clone(in.Values),
		Paths:  slices.Clone(in.Paths),
	}
	if out.Counts == nil {
		out.Counts = make(map[Flag]int)
	}
	if out.Values == nil {
		out.Values = make(map[Option]string)
	}
	for o, v := range values {
		if _, given := out.Values[o]; given || in.anyGiven(valuePreferenceRivals[o]) {
			continue
		}
		out.Values[o] = v
	}
	for _, f := range flags {
		if out.Counts[f] > 0 || in.anyGiven(flagPreferenceRivals[f]) {
			continue
		}
		out.Counts[f] = 1
	}
	return out
}

// anyGiven reports whether any of flags has a positive count in in.
func (in Input) anyGiven(flags []Flag) bool {
	return slices.ContainsFunc(flags, func(f Flag) bool { return in.Counts[f] > 0 })
}

// Count returns how many times f was given.
func (inv Invocation) Count(f Flag) int { return inv.counts[f] }

// Has reports whether f was given at least once.
func (inv Invocation) Has(f Flag) bool { return inv.counts[f] > 0 }

// Value returns the raw text of o and whether it was given at all.
func (inv Invocation) Value(o Option) (string, bool) {
	v, ok := inv.values[o]
	return v, ok
}

// Paths returns a copy of the positional arguments.
func (inv Invocation) Paths() []string { return slices.Clone(inv.paths) }

// Validate performs boundary validation of the strictly checked options.
// A nil result guarantees Resolve will find every strict value well formed.
func (inv Invocation) Validate() error {
	var errs []error
	for _, bc := range boundaryChecks {
		raw, ok := inv.values[bc.option]
		if !ok {
			continue
		}
		if err := bc.check(raw); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &InvalidInvocationError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidCountError.
func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("invalid count %d for --%s: must not be negative", e.Value, e.Flag)
}

// Unwrap returns ErrInvalidCount for errors.Is() compatibility.
func (e *InvalidCountError) Unwrap() error { return ErrInvalidCount }

// Error implements the error interface for UnknownFlagError.
func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag --%s", e.Flag)
}

// Unwrap returns ErrUnknownFlag for errors.Is() compatibility.
func (e *UnknownFlagError) Unwrap() error { return ErrUnknownFlag }

// Error implements the error interface for UnknownOptionError.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option --%s", e.Option)
}

// Unwrap returns ErrUnknownOption for errors.Is() compatibility.
func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// Error implements the error interface for InvalidInvocationError.
// A single field error is reported verbatim.
func (e *InvalidInvocationError) Error() string {
	if len(e.FieldErrors) == 1 {
		return e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid invocation: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidInvocation together with the field errors, so
// errors.Is matches both the sentinel and any wrapped field sentinel.
func (e *InvalidInvocationError) Unwrap() []error {
	return append([]error{ErrInvalidInvocation}, e.FieldErrors...)
}
