// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"github.com/lsxdev/lsx/internal/issue"
	"github.com/lsxdev/lsx/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envOf returns a getenv function backed by vars.
func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestExpandArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts string
		args []string
		want []string
	}{
		{"unset", "", []string{"-l"}, []string{"-l"}},
		{"blank", "   ", []string{"-l"}, []string{"-l"}},
		{"prepended", "--color=never -a", []string{"-l", "src"}, []string{"--color=never", "-a", "-l", "src"}},
		{"single quotes keep spaces", "'--ignore-glob=*.o *.a'", nil, []string{"--ignore-glob=*.o *.a"}},
		{"double quotes", `--sort="size"`, nil, []string{"--sort=size"}},
		{"variables expand", "--width=$COLS", nil, []string{"--width=72"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := expandArgs(tt.args, envOf(map[string]string{EnvOpts: tt.opts, "COLS": "72"}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandArgsUnterminatedQuote(t *testing.T) {
	t.Parallel()

	_, err := expandArgs([]string{"-l"}, envOf(map[string]string{EnvOpts: `--sort="size`}))
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, types.ExitUsage, exitErr.Code)

	var ae *issue.ActionableError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, issue.EnvOptsParseFailedId, ae.Issue)
	assert.True(t, ae.HasSuggestions())
}
