// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/lsxdev/lsx/pkg/types"
)

// ExitError carries a process exit code out of RunE without calling
// os.Exit there.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the wrapped message, or the exit status when there is none.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: types.ExitUsage, Err: err}
}

func failureError(err error) *ExitError {
	return &ExitError{Code: types.ExitFailure, Err: err}
}
