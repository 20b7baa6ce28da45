// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is a config file or directory path as typed by the user.
	// The zero value means "not given" and is invalid wherever a path is required.
	FilesystemPath string

	// InvalidFilesystemPathError is returned for an empty or blank path.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

func (p FilesystemPath) String() string { return string(p) }

// IsSet reports whether a non-blank path was given.
func (p FilesystemPath) IsSet() bool { return strings.TrimSpace(string(p)) != "" }

// IsValid returns whether p is non-empty and not whitespace-only.
func (p FilesystemPath) IsValid() (bool, []error) {
	if !p.IsSet() {
		return false, []error{&InvalidFilesystemPathError{Value: p}}
	}
	return true, nil
}

// Expand replaces a leading "~" with the user's home directory and cleans
// the result. Paths that cannot be expanded are returned cleaned but
// otherwise unchanged.
func (p FilesystemPath) Expand() FilesystemPath {
	s := strings.TrimSpace(string(p))
	if s == "~" || strings.HasPrefix(s, "~/") || strings.HasPrefix(s, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, s[1:])
		}
	}
	if s == "" {
		return ""
	}
	return FilesystemPath(filepath.Clean(s))
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
