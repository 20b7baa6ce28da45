// SPDX-License-Identifier: MPL-2.0

package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInvocation(t *testing.T, in Input) Invocation {
	t.Helper()

	inv, err := NewInvocation(in)
	require.NoError(t, err)
	return inv
}

func TestNewInvocation(t *testing.T) {
	t.Parallel()

	t.Run("zero counts are dropped", func(t *testing.T) {
		t.Parallel()

		inv := mustInvocation(t, Input{Counts: map[Flag]int{FlagAll: 0, FlagLong: 2}})
		assert.False(t, inv.Has(FlagAll))
		assert.Equal(t, 2, inv.Count(FlagLong))
		assert.Equal(t, 0, inv.Count(FlagTree))
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewInvocation(Input{Counts: map[Flag]int{FlagLong: -1}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInvocation)
		assert.ErrorIs(t, err, ErrInvalidCount)

		var countErr *InvalidCountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, FlagLong, countErr.Flag)
		assert.Equal(t, -1, countErr.Value)
	})

	t.Run("unknown identifiers are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewInvocation(Input{
			Counts: map[Flag]int{"bogus": 1},
			Values: map[Option]string{"nonsense": "x"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFlag)
		assert.ErrorIs(t, err, ErrUnknownOption)

		var invErr *InvalidInvocationError
		require.ErrorAs(t, err, &invErr)
		assert.Len(t, invErr.FieldErrors, 2)
		assert.Contains(t, err.Error(), "2 field error(s)")
	})

	t.Run("input is copied", func(t *testing.T) {
		t.Parallel()

		in := Input{
			Counts: map[Flag]int{FlagAll: 1},
			Values: map[Option]string{OptionSort: "size"},
			Paths:  []string{"a", "b"},
		}
		inv := mustInvocation(t, in)

		in.Counts[FlagAll] = 0
		in.Values[OptionSort] = "name"
		in.Paths[0] = "z"

		assert.True(t, inv.Has(FlagAll))
		got, ok := inv.Value(OptionSort)
		assert.True(t, ok)
		assert.Equal(t, "size", got)
		assert.Equal(t, []string{"a", "b"}, inv.Paths())

		paths := inv.Paths()
		paths[1] = "y"
		assert.Equal(t, []string{"a", "b"}, inv.Paths())
	})

	t.Run("empty value is still given", func(t *testing.T) {
		t.Parallel()

		inv := mustInvocation(t, Input{Values: map[Option]string{OptionSort: ""}})
		got, ok := inv.Value(OptionSort)
		assert.True(t, ok)
		assert.Empty(t, got)
	})
}

func TestInputFillDefaults(t *testing.T) {
	t.Parallel()

	in := Input{
		Counts: map[Flag]int{FlagLong: 2},
		Values: map[Option]string{OptionSort: "size"},
		Paths:  []string{"."},
	}
	out := in.FillDefaults(
		map[Option]string{OptionSort: "name", OptionColor: "never"},
		[]Flag{FlagLong, FlagClassify},
	)

	assert.Equal(t, "size", out.Values[OptionSort], "explicit value must win")
	assert.Equal(t, "never", out.Values[OptionColor])
	assert.Equal(t, 2, out.Counts[FlagLong], "explicit count must win")
	assert.Equal(t, 1, out.Counts[FlagClassify])
	assert.Equal(t, []string{"."}, out.Paths)

	// the receiver is left untouched
	assert.NotContains(t, in.Values, OptionColor)
	assert.NotContains(t, in.Counts, FlagClassify)

	var empty Input
	filled := empty.FillDefaults(map[Option]string{OptionIcons: "always"}, nil)
	assert.Equal(t, "always", filled.Values[OptionIcons])
	assert.NotNil(t, filled.Counts)
}

func TestInputFillDefaultsYieldsToRivalToggles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		counts     map[Flag]int
		values     map[Option]string
		flags      []Flag
		wantValues map[Option]string
		wantCounts map[Flag]int
	}{
		{
			name:       "time shorthand beats preferred time",
			counts:     map[Flag]int{FlagCreated: 1},
			values:     map[Option]string{OptionTime: "accessed", OptionSort: "size"},
			wantValues: map[Option]string{OptionSort: "size"},
			wantCounts: map[Flag]int{FlagCreated: 1},
		},
		{
			name:       "preferred time applies without shorthands",
			values:     map[Option]string{OptionTime: "accessed"},
			wantValues: map[Option]string{OptionTime: "accessed"},
			wantCounts: map[Flag]int{},
		},
		{
			name:       "oneline beats preferred long",
			counts:     map[Flag]int{FlagOneline: 1},
			flags:      []Flag{FlagLong, FlagClassify},
			wantValues: map[Option]string{},
			wantCounts: map[Flag]int{FlagOneline: 1, FlagClassify: 1},
		},
		{
			name:       "tree beats preferred long",
			counts:     map[Flag]int{FlagTree: 1},
			flags:      []Flag{FlagLong},
			wantValues: map[Option]string{},
			wantCounts: map[Flag]int{FlagTree: 1},
		},
		{
			name:       "unrelated toggles keep preferred long",
			counts:     map[Flag]int{FlagAll: 1},
			flags:      []Flag{FlagLong},
			wantValues: map[Option]string{},
			wantCounts: map[Flag]int{FlagAll: 1, FlagLong: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := Input{Counts: tt.counts}.FillDefaults(tt.values, tt.flags)
			assert.Equal(t, tt.wantValues, out.Values)
			assert.Equal(t, tt.wantCounts, out.Counts)
		})
	}
}

func TestInvocationValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   map[Option]string
		sentinel error
	}{
		{name: "no values", values: nil},
		{name: "valid strict values", values: map[Option]string{
			OptionWidth:          "80",
			OptionLevel:          "0",
			OptionColor:          "ALWAYS",
			OptionIcons:          "never",
			OptionTimeStyle:      "long-iso",
			OptionColorScaleMode: "fixed",
		}},
		{name: "soft values never rejected", values: map[Option]string{
			OptionSort:       "wat",
			OptionTime:       "",
			OptionColorScale: "rainbow",
			OptionIgnoreGlob: "||",
		}},
		{name: "negative width", values: map[Option]string{OptionWidth: "-3"}, sentinel: ErrInvalidLimit},
		{name: "non-numeric level", values: map[Option]string{OptionLevel: "deep"}, sentinel: ErrInvalidLimit},
		{name: "empty width", values: map[Option]string{OptionWidth: ""}, sentinel: ErrInvalidLimit},
		{name: "unknown color", values: map[Option]string{OptionColor: "sometimes"}, sentinel: ErrInvalidShowWhen},
		{name: "unknown icons", values: map[Option]string{OptionIcons: ""}, sentinel: ErrInvalidShowWhen},
		{name: "unknown time style", values: map[Option]string{OptionTimeStyle: "+%Y"}, sentinel: ErrInvalidTimeStyle},
		{name: "unknown scale mode", values: map[Option]string{OptionColorScaleMode: "rainbow"}, sentinel: ErrInvalidColorScaleMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := mustInvocation(t, Input{Values: tt.values}).Validate()
			if tt.sentinel == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.sentinel)
			}
			if !errors.Is(err, ErrInvalidInvocation) {
				t.Errorf("Validate() error should wrap ErrInvalidInvocation, got %v", err)
			}
		})
	}
}

func TestValidateNegativeWidthReportsOption(t *testing.T) {
	t.Parallel()

	err := mustInvocation(t, Input{Values: map[Option]string{OptionWidth: "-3"}}).Validate()

	var limitErr *InvalidLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, OptionWidth, limitErr.Option)
	assert.Equal(t, "-3", limitErr.Value)
	assert.Contains(t, err.Error(), "--width")
}

func TestParseLimit(t *testing.T) {
	t.Parallel()

	l, err := ParseLimit(OptionLevel, " 3 ")
	require.NoError(t, err)
	n, ok := l.Value()
	assert.True(t, ok)
	assert.Equal(t, uint(3), n)
	assert.Equal(t, "3", l.String())

	assert.Equal(t, "auto", Limit{}.String())
	assert.False(t, Limit{}.IsSet())
	assert.Equal(t, LimitOf(0), mustLimit(t, "0"))

	maxLimit := mustLimit(t, "2147483647")
	assert.Equal(t, "2147483647", maxLimit.String())

	for _, raw := range []string{"-1", "1.5", "ten", "", "0x10", "2147483648", "18446744073709551615"} {
		_, err := ParseLimit(OptionWidth, raw)
		assert.ErrorIs(t, err, ErrInvalidLimit, "raw %q", raw)
	}
}

func mustLimit(t *testing.T, raw string) Limit {
	t.Helper()

	l, err := ParseLimit(OptionWidth, raw)
	require.NoError(t, err)
	return l
}

func TestFieldSetString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "permissions,filesize,user,time", defaultFields.String())
	assert.Equal(t, "none", FieldSet(0).String())
	assert.Equal(t, []Field{FieldGroup, FieldGit}, FieldSet(FieldGit|FieldGroup).Fields())
	assert.True(t, defaultFields.Has(FieldUser))
	assert.False(t, defaultFields.without(FieldUser).Has(FieldUser))
}

func TestFlagsAndOptionsKnown(t *testing.T) {
	t.Parallel()

	flags := Flags()
	require.NotEmpty(t, flags)
	for _, f := range flags {
		assert.True(t, f.IsKnown(), "flag %s", f)
	}
	for _, o := range Options() {
		assert.True(t, o.IsKnown(), "option %s", o)
	}
	assert.False(t, Flag("sort").IsKnown(), "value options are not counted toggles")
	assert.False(t, Option("all").IsKnown(), "counted toggles are not value options")

	// returned slices are copies
	flags[0] = "mutated"
	assert.NotEqual(t, Flag("mutated"), Flags()[0])
}
