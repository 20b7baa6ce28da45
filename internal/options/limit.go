// SPDX-License-Identifier: MPL-2.0

package options

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxLimit is the largest bound ParseLimit accepts.
const MaxLimit = math.MaxInt32

// ErrInvalidLimit is the sentinel error wrapped by InvalidLimitError.
var ErrInvalidLimit = errors.New("invalid numeric limit")

type (
	// Limit is an optional non-negative bound such as the screen width or
	// the recursion depth. The zero value means "no limit", leaving the
	// choice to whoever consumes the configuration.
	Limit struct {
		n   uint
		set bool
	}

	// InvalidLimitError is returned when --width or --level is not a
	// non-negative integer.
	InvalidLimitError struct {
		Option Option
		Value  string
	}
)

// LimitOf returns a Limit bounded at n.
func LimitOf(n uint) Limit { return Limit{n: n, set: true} }

// ParseLimit parses raw as a base-10 integer between 0 and MaxLimit.
func ParseLimit(opt Option, raw string) (Limit, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 31)
	if err != nil {
		return Limit{}, &InvalidLimitError{Option: opt, Value: raw}
	}
	return LimitOf(uint(n)), nil
}

// Value returns the bound and whether one is set.
func (l Limit) Value() (uint, bool) { return l.n, l.set }

// IsSet reports whether a bound was given.
func (l Limit) IsSet() bool { return l.set }

// String returns the decimal bound, or "auto" when unset.
func (l Limit) String() string {
	if !l.set {
		return "auto"
	}
	return strconv.FormatUint(uint64(l.n), 10)
}

// Error implements the error interface for InvalidLimitError.
func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: must be a non-negative integer (at most %d)", e.Value, e.Option, MaxLimit)
}

// Unwrap returns ErrInvalidLimit for errors.Is() compatibility.
func (e *InvalidLimitError) Unwrap() error { return ErrInvalidLimit }
