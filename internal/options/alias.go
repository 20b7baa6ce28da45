// SPDX-License-Identifier: MPL-2.0

package options

import (
	"maps"
	"slices"
	"strings"
)

// aliasTable maps normalised user text to a canonical enum variant.
// Tables are package-level and never written after initialisation.
type aliasTable[T ~string] map[string]T

// normalize folds raw option text into the form used as alias-table keys.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// lookup returns the variant registered for raw, if any.
func (t aliasTable[T]) lookup(raw string) (T, bool) {
	v, ok := t[normalize(raw)]
	return v, ok
}

// decode is the total form of lookup: unknown text yields fallback.
func (t aliasTable[T]) decode(raw string, fallback T) T {
	if v, ok := t.lookup(raw); ok {
		return v
	}
	return fallback
}

// aliases returns every accepted spelling, sorted.
func (t aliasTable[T]) aliases() []string {
	return slices.Sorted(maps.Keys(t))
}

// canonical returns the distinct variants of the table, sorted.
func (t aliasTable[T]) canonical() []string {
	seen := make(map[string]struct{}, len(t))
	for _, v := range t {
		if v == "" {
			continue
		}
		seen[string(v)] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}
