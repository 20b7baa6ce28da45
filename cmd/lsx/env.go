// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/lsxdev/lsx/internal/issue"

	"mvdan.cc/sh/v3/shell"
)

const (
	// EnvOpts holds extra arguments parsed before the command line.
	EnvOpts = "LSX_OPTS"
	// EnvConfig names an explicit config file, like --config.
	EnvConfig = "LSX_CONFIG"
)

// expandArgs prepends the words of LSX_OPTS to args. The variable is split
// with POSIX shell rules, so quoting works as it would on a command line;
// variable references are expanded through getenv.
func expandArgs(args []string, getenv func(string) string) ([]string, error) {
	raw := getenv(EnvOpts)
	if strings.TrimSpace(raw) == "" {
		return args, nil
	}

	words, err := shell.Fields(raw, getenv)
	if err != nil {
		return nil, usageError(issue.NewErrorContext().
			WithOperation("parse "+EnvOpts).
			WithResource(raw).
			WithIssue(issue.EnvOptsParseFailedId).
			WithSuggestion("Check for an unterminated quote").
			Wrap(err).
			BuildError())
	}

	out := make([]string, 0, len(words)+len(args))
	out = append(out, words...)
	return append(out, args...), nil
}
