// SPDX-License-Identifier: MPL-2.0

package options

import (
	"fmt"
	"strings"
)

// resolver accumulates provenance while axes are settled.
type resolver struct {
	inv       Invocation
	decisions []Decision
}

// Resolve folds an invocation into the canonical configuration. It is
// total and pure; equal input gives equal output. Callers are expected to
// have run Invocation.Validate first, since Resolve rejects nothing.
func Resolve(inv Invocation) Config {
	r := &resolver{inv: inv}
	var cfg Config

	cfg.Visibility = settle(r, visibilityAxis)

	cfg.Layout.Mode = settle(r, layoutAxis)
	cfg.Layout.Details = settle(r, switchAxis("layout.details", FlagLong))
	cfg.Layout.Across = r.across(cfg.Layout.Mode)

	cfg.Recursion.Mode = settle(r, recursionAxis)
	cfg.Recursion.Depth = r.depth(cfg.Recursion.Mode)
	cfg.Recursion.ListDirs = settle(r, switchAxis("recursion.list-dirs", FlagListDirs))

	cfg.Sort.Field = settle(r, sortFieldAxis)
	cfg.Sort.Reverse = settle(r, switchAxis("sort.reverse", FlagReverse))
	cfg.Sort.DirsFirst = settle(r, switchAxis("sort.dirs-first", FlagDirsFirst))

	cfg.Fields = r.fields()

	cfg.Time.Field = settle(r, timeFieldAxis)
	cfg.Time.Style = settle(r, timeStyleAxis)

	cfg.Color.Mode = settle(r, colorModeAxis)
	cfg.Color.Scale = settle(r, colorScaleAxis)
	cfg.Color.ScaleMode = settle(r, colorScaleModeAxis)

	cfg.Icons = settle(r, iconsAxis)

	cfg.Filter.Kind = settle(r, entryKindAxis)
	cfg.Filter.GitIgnore = settle(r, switchAxis("filter.git-ignore", FlagGitIgnore))
	cfg.Filter.ignoreGlobs = settle(r, ignoreGlobAxis)

	cfg.Display.Classify = settle(r, switchAxis("display.classify", FlagClassify))
	cfg.Display.Dereference = settle(r, switchAxis("display.dereference", FlagDereference))
	cfg.Display.Hyperlink = settle(r, switchAxis("display.hyperlink", FlagHyperlink))
	cfg.Display.Quotes = settle(r, quotesAxis)
	cfg.Display.Header = settle(r, switchAxis("display.header", FlagHeader))
	cfg.Display.Numeric = settle(r, switchAxis("display.numeric", FlagNumeric))
	cfg.Display.SmartGroup = settle(r, switchAxis("display.smart-group", FlagSmartGroup))
	cfg.Display.TotalSize = settle(r, switchAxis("display.total-size", FlagTotalSize))
	cfg.Display.Mounts = settle(r, switchAxis("display.mounts", FlagMounts))
	cfg.Display.SizeFormat = settle(r, sizeFormatAxis)
	cfg.Display.Symlinks = settle(r, symlinksAxis)
	cfg.Display.Width = settle(r, widthAxis)

	cfg.Git.Repos = settle(r, gitReposAxis)

	cfg.Input.Stdin = settle(r, switchAxis("input.stdin", FlagStdin))
	cfg.Input.paths = inv.Paths()

	cfg.decisions = r.decisions
	return cfg
}

// settle resolves one axis and records which rule decided it.
func settle[T any](r *resolver, a axis[T]) T {
	v, rule := a.resolve(r.inv)
	r.record(a.name, describe(v), rule)
	return v
}

func (r *resolver) record(axis, value, rule string) {
	r.decisions = append(r.decisions, Decision{Axis: axis, Value: value, Rule: rule})
}

// across only applies to the grid view.
func (r *resolver) across(layout Layout) bool {
	switch {
	case !r.inv.Has(FlagAcross):
		r.record("layout.across", "false", RuleDefault)
		return false
	case layout != LayoutGrid:
		r.record("layout.across", "false", "--across ignored outside grid")
		return false
	default:
		r.record("layout.across", "true", "--across")
		return true
	}
}

// depth is meaningful only while recursing; otherwise it is left unset so
// the configuration has a single canonical form.
func (r *resolver) depth(mode RecursionMode) Limit {
	if mode == RecursionNone {
		r.record(depthAxis.name, Limit{}.String(), "no recursion")
		return Limit{}
	}
	return settle(r, depthAxis)
}

// fields starts from the default columns, adds every requested column and
// finally strips every suppressed one. Suppression is applied last so that
// no request, whatever its count or position, can bring a column back.
func (r *resolver) fields() FieldSet {
	set := defaultFields
	var applied []string

	for _, fr := range fieldRequests {
		if r.inv.Has(fr.flag) {
			set = set.with(fr.field)
			applied = append(applied, "+--"+string(fr.flag))
		}
	}
	if _, ok := r.inv.Value(OptionTime); ok {
		set = set.with(FieldTime)
		applied = append(applied, "+--"+string(OptionTime))
	}
	for _, fs := range fieldSuppressions {
		if r.inv.Has(fs.flag) {
			set = set.without(fs.field)
			applied = append(applied, "--"+string(fs.flag))
		}
	}

	rule := RuleDefault
	if len(applied) > 0 {
		rule = strings.Join(applied, " ")
	}
	r.record("fields", set.String(), rule)
	return set
}

func describe(v any) string {
	if globs, ok := v.([]string); ok {
		if len(globs) == 0 {
			return "none"
		}
		return strings.Join(globs, "|")
	}
	return fmt.Sprint(v)
}
