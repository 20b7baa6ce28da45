// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"github.com/lsxdev/lsx/internal/options"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("lsx", pflag.ContinueOnError)
	registerFlags(fs)
	return fs
}

func parseInput(t *testing.T, args ...string) options.Input {
	t.Helper()
	fs := newTestFlagSet(t)
	require.NoError(t, fs.Parse(args))
	in, err := collectInput(fs, fs.Args())
	require.NoError(t, err)
	return in
}

func TestRegisterFlagsCoversEveryIdentifier(t *testing.T) {
	t.Parallel()

	fs := newTestFlagSet(t)
	for _, f := range options.Flags() {
		assert.NotNil(t, fs.Lookup(string(f)), "counted flag --%s not registered", f)
	}
	for _, o := range options.Options() {
		assert.NotNil(t, fs.Lookup(string(o)), "value option --%s not registered", o)
	}
	assert.Len(t, countedFlags, len(options.Flags()))
	assert.Len(t, valueFlags, len(options.Options()))
}

func TestRegisterFlagsShorthands(t *testing.T) {
	t.Parallel()

	fs := newTestFlagSet(t)
	tests := []struct {
		shorthand string
		name      string
	}{
		{"a", "all"},
		{"h", "header"},
		{"?", flagHelp},
		{"l", "long"},
		{"T", "tree"},
		{"@", "extended"},
		{"s", "sort"},
		{"w", "width"},
	}
	for _, tt := range tests {
		f := fs.ShorthandLookup(tt.shorthand)
		if assert.NotNil(t, f, "-%s", tt.shorthand) {
			assert.Equal(t, tt.name, f.Name, "-%s", tt.shorthand)
		}
	}
}

func TestCollectInputCounts(t *testing.T) {
	t.Parallel()

	in := parseInput(t, "-aa", "-l", "--tree", "dir1", "dir2")

	assert.Equal(t, 2, in.Counts[options.FlagAll])
	assert.Equal(t, 1, in.Counts[options.FlagLong])
	assert.Equal(t, 1, in.Counts[options.FlagTree])
	assert.NotContains(t, in.Counts, options.FlagGrid)
	assert.Equal(t, []string{"dir1", "dir2"}, in.Paths)
	assert.Empty(t, in.Values)
}

func TestCollectInputValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		option options.Option
		want   string
		paths  []string
	}{
		{"long with equals", []string{"--sort=size"}, options.OptionSort, "size", nil},
		{"short with equals", []string{"-s=size"}, options.OptionSort, "size", nil},
		{"bare sort", []string{"--sort"}, options.OptionSort, "time", nil},
		{"separate word is a path", []string{"--sort", "size"}, options.OptionSort, "time", []string{"size"}},
		{"bare color", []string{"--color"}, options.OptionColor, "auto", nil},
		{"bare icons", []string{"--icons"}, options.OptionIcons, "auto", nil},
		{"bare time", []string{"--time"}, options.OptionTime, "modified", nil},
		{"width takes next word", []string{"--width", "40"}, options.OptionWidth, "40", nil},
		{"short width attached", []string{"-w40"}, options.OptionWidth, "40", nil},
		{"empty value is kept", []string{"--color="}, options.OptionColor, "", nil},
		{"ignore glob", []string{"-I", "*.o|*.a"}, options.OptionIgnoreGlob, "*.o|*.a", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := parseInput(t, tt.args...)
			got, ok := in.Values[tt.option]
			require.True(t, ok, "--%s not collected", tt.option)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.paths, in.Paths)
		})
	}
}

func TestCollectInputLastValueWins(t *testing.T) {
	t.Parallel()

	in := parseInput(t, "--sort=size", "--sort=name")
	assert.Equal(t, "name", in.Values[options.OptionSort])
}

func TestFlagAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want options.Option
		val  string
	}{
		{"--colour=never", options.OptionColor, "never"},
		{"--colour-scale=size", options.OptionColorScale, "size"},
		{"--colour-scale-mode=fixed", options.OptionColorScaleMode, "fixed"},
	}
	for _, tt := range tests {
		in := parseInput(t, tt.arg)
		assert.Equal(t, tt.val, in.Values[tt.want], tt.arg)
	}

	for _, arg := range []string{"--octal-permission", "--octal-permissions"} {
		in := parseInput(t, arg)
		assert.Equal(t, 1, in.Counts[options.FlagOctal], arg)
	}
}

func TestCollectInputUnknownFlag(t *testing.T) {
	t.Parallel()

	fs := newTestFlagSet(t)
	err := fs.Parse([]string{"--no-such-flag"})
	assert.Error(t, err)
}

func TestNormalizeFlagNamePassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pflag.NormalizedName("long"), normalizeFlagName(nil, "long"))
	assert.Equal(t, pflag.NormalizedName("color"), normalizeFlagName(nil, "colour"))
}
