// SPDX-License-Identifier: MPL-2.0

package options

import (
	"errors"
	"fmt"
	"strings"
)

const (
	SortName      SortField = "name"
	SortSize      SortField = "size"
	SortTime      SortField = "time"
	SortExtension SortField = "extension"
	SortInode     SortField = "inode"
	SortVersion   SortField = "version"
	SortCreated   SortField = "created"
	SortAccessed  SortField = "accessed"
	SortModified  SortField = "modified"
	SortChanged   SortField = "changed"
)

// ErrInvalidSortField is the sentinel error wrapped by InvalidSortFieldError.
var ErrInvalidSortField = errors.New("invalid sort field")

type (
	// SortField is the primary key entries are ordered by.
	SortField string

	// InvalidSortFieldError is returned by IsValid for a SortField that is
	// not canonical. --sort itself is never rejected; see DecodeSortField.
	InvalidSortFieldError struct {
		Value SortField
	}
)

var sortFieldAliases = aliasTable[SortField]{
	"name":      SortName,
	"filename":  SortName,
	"size":      SortSize,
	"filesize":  SortSize,
	"time":      SortTime,
	"age":       SortTime,
	"date":      SortTime,
	"extension": SortExtension,
	"ext":       SortExtension,
	"inode":     SortInode,
	"version":   SortVersion,
	"created":   SortCreated,
	"cr":        SortCreated,
	"btime":     SortCreated,
	"accessed":  SortAccessed,
	"acc":       SortAccessed,
	"atime":     SortAccessed,
	"modified":  SortModified,
	"mod":       SortModified,
	"mtime":     SortModified,
	"changed":   SortChanged,
	"ch":        SortChanged,
	"ctime":     SortChanged,
}

// DecodeSortField maps free text to a SortField. Unknown or empty text
// sorts by name.
func DecodeSortField(raw string) SortField {
	return sortFieldAliases.decode(raw, SortName)
}

// String returns the canonical spelling.
func (f SortField) String() string { return string(f) }

// IsValid returns whether f is one of the canonical sort fields.
func (f SortField) IsValid() (bool, []error) {
	if v, ok := sortFieldAliases[string(f)]; ok && v == f {
		return true, nil
	}
	return false, []error{&InvalidSortFieldError{Value: f}}
}

// Error implements the error interface for InvalidSortFieldError.
func (e *InvalidSortFieldError) Error() string {
	return fmt.Sprintf("invalid sort field %q (valid: %s)",
		e.Value, strings.Join(sortFieldAliases.canonical(), ", "))
}

// Unwrap returns ErrInvalidSortField for errors.Is() compatibility.
func (e *InvalidSortFieldError) Unwrap() error { return ErrInvalidSortField }
