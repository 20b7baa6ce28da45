// SPDX-License-Identifier: MPL-2.0

package options

import "strings"

// RuleDefault is the Decision rule recorded when no rule of an axis matched.
const RuleDefault = "default"

type (
	// rule settles an axis when pick reports a match.
	rule[T any] struct {
		name string
		pick func(inv Invocation) (T, bool)
	}

	// axis is an ordered rule table. The first matching rule wins no matter
	// how often, or where on the command line, its flag was given.
	axis[T any] struct {
		name     string
		rules    []rule[T]
		fallback T
	}

	// fieldRule ties a counted toggle to a long-format column.
	fieldRule struct {
		flag  Flag
		field Field
	}
)

func (a axis[T]) resolve(inv Invocation) (T, string) {
	for _, r := range a.rules {
		if v, ok := r.pick(inv); ok {
			return v, r.name
		}
	}
	return a.fallback, RuleDefault
}

// when matches if f was given at least once.
func when[T any](f Flag, v T) rule[T] {
	return rule[T]{
		name: "--" + string(f),
		pick: func(inv Invocation) (T, bool) { return v, inv.Has(f) },
	}
}

// whenValue matches if o was given, decoding its text with decode.
func whenValue[T any](o Option, decode func(string) T) rule[T] {
	return rule[T]{
		name: "--" + string(o),
		pick: func(inv Invocation) (T, bool) {
			raw, ok := inv.Value(o)
			if !ok {
				var zero T
				return zero, false
			}
			return decode(raw), true
		},
	}
}

// whenLimit matches if o was given and parses as a limit. Malformed text
// never reaches here past Validate; if it does, the axis falls back.
func whenLimit(o Option) rule[Limit] {
	return rule[Limit]{
		name: "--" + string(o),
		pick: func(inv Invocation) (Limit, bool) {
			raw, ok := inv.Value(o)
			if !ok {
				return Limit{}, false
			}
			l, err := ParseLimit(o, raw)
			return l, err == nil
		},
	}
}

// switchAxis is a plain on/off axis driven by a single toggle.
func switchAxis(name string, f Flag) axis[bool] {
	return axis[bool]{name: name, rules: []rule[bool]{when(f, true)}}
}

var (
	visibilityAxis = axis[Visibility]{
		name: "visibility",
		rules: []rule[Visibility]{
			when(FlagAll, VisibilityShowAll),
			when(FlagAlmostAll, VisibilityShowHidden),
		},
		fallback: VisibilityHideDotfiles,
	}

	// Most structurally demanding view wins. Listing directories as files
	// leaves nothing to draw a tree of, so --list-dirs disqualifies --tree.
	layoutAxis = axis[Layout]{
		name: "layout",
		rules: []rule[Layout]{
			{
				name: "--tree",
				pick: func(inv Invocation) (Layout, bool) {
					return LayoutTree, inv.Has(FlagTree) && !inv.Has(FlagListDirs)
				},
			},
			when(FlagLong, LayoutLong),
			when(FlagOneline, LayoutOneline),
			when(FlagGrid, LayoutGrid),
		},
		fallback: LayoutGrid,
	}

	recursionAxis = axis[RecursionMode]{
		name: "recursion",
		rules: []rule[RecursionMode]{
			when(FlagListDirs, RecursionNone),
			when(FlagTree, RecursionTree),
			when(FlagRecurse, RecursionRecurse),
		},
		fallback: RecursionNone,
	}

	// An explicit --time beats every shorthand. Among shorthands the order
	// is fixed: modified, accessed, created, changed.
	timeFieldAxis = axis[TimeField]{
		name: "time.field",
		rules: []rule[TimeField]{
			whenValue(OptionTime, DecodeTimeField),
			when(FlagModified, TimeModified),
			when(FlagAccessed, TimeAccessed),
			when(FlagCreated, TimeCreated),
			when(FlagChanged, TimeChanged),
		},
		fallback: TimeModified,
	}

	timeStyleAxis = axis[TimeStyle]{
		name:     "time.style",
		rules:    []rule[TimeStyle]{whenValue(OptionTimeStyle, DecodeTimeStyle)},
		fallback: TimeStyleDefault,
	}

	sortFieldAxis = axis[SortField]{
		name:     "sort.field",
		rules:    []rule[SortField]{whenValue(OptionSort, DecodeSortField)},
		fallback: SortName,
	}

	// --no-icons always beats --icons.
	iconsAxis = axis[ShowWhen]{
		name: "icons",
		rules: []rule[ShowWhen]{
			when(FlagNoIcons, ShowNever),
			whenValue(OptionIcons, DecodeShowWhen),
		},
		fallback: ShowNever,
	}

	colorModeAxis = axis[ShowWhen]{
		name:     "color.mode",
		rules:    []rule[ShowWhen]{whenValue(OptionColor, DecodeShowWhen)},
		fallback: ShowAuto,
	}

	colorScaleAxis = axis[ColorScale]{
		name:     "color.scale",
		rules:    []rule[ColorScale]{whenValue(OptionColorScale, DecodeColorScale)},
		fallback: ColorScaleNone,
	}

	colorScaleModeAxis = axis[ColorScaleMode]{
		name:     "color.scale-mode",
		rules:    []rule[ColorScaleMode]{whenValue(OptionColorScaleMode, DecodeColorScaleMode)},
		fallback: ColorScaleGradient,
	}

	sizeFormatAxis = axis[SizeFormat]{
		name: "display.size-format",
		rules: []rule[SizeFormat]{
			when(FlagBytes, SizeBytes),
			when(FlagBinary, SizeBinary),
		},
		fallback: SizeDecimal,
	}

	entryKindAxis = axis[EntryKind]{
		name: "filter.kind",
		rules: []rule[EntryKind]{
			when(FlagOnlyDirs, EntryDirsOnly),
			when(FlagOnlyFiles, EntryFilesOnly),
		},
		fallback: EntryAny,
	}

	symlinksAxis = axis[SymlinkMode]{
		name: "display.symlinks",
		rules: []rule[SymlinkMode]{
			when(FlagNoSymlinks, SymlinksHide),
			when(FlagShowSymlinks, SymlinksShow),
		},
		fallback: SymlinksDefault,
	}

	// --no-git silences every git feature, including the repos column.
	gitReposAxis = axis[GitReposMode]{
		name: "git.repos",
		rules: []rule[GitReposMode]{
			when(FlagNoGit, GitReposOff),
			when(FlagGitRepos, GitReposStatus),
			when(FlagGitReposNoStatus, GitReposBranchOnly),
		},
		fallback: GitReposOff,
	}

	quotesAxis = axis[bool]{
		name:     "display.quotes",
		rules:    []rule[bool]{when(FlagNoQuotes, false)},
		fallback: true,
	}

	widthAxis = axis[Limit]{
		name:  "display.width",
		rules: []rule[Limit]{whenLimit(OptionWidth)},
	}

	depthAxis = axis[Limit]{
		name:  "recursion.depth",
		rules: []rule[Limit]{whenLimit(OptionLevel)},
	}

	ignoreGlobAxis = axis[[]string]{
		name:  "filter.ignore-glob",
		rules: []rule[[]string]{whenValue(OptionIgnoreGlob, splitGlobs)},
	}

	// fieldRequests add columns to the long format.
	fieldRequests = []fieldRule{
		{FlagGroup, FieldGroup},
		{FlagInode, FieldInode},
		{FlagLinks, FieldLinks},
		{FlagBlocksize, FieldBlocks},
		{FlagOctal, FieldOctal},
		{FlagContext, FieldSecurityContext},
		{FlagExtended, FieldExtended},
		{FlagFileFlags, FieldFileFlags},
		{FlagGit, FieldGit},
		{FlagModified, FieldTime},
		{FlagAccessed, FieldTime},
		{FlagCreated, FieldTime},
		{FlagChanged, FieldTime},
	}

	// fieldSuppressions are applied after every request and cannot be undone.
	fieldSuppressions = []fieldRule{
		{FlagNoPermissions, FieldPermissions},
		{FlagNoFilesize, FieldFilesize},
		{FlagNoUser, FieldUser},
		{FlagNoTime, FieldTime},
		{FlagNoGit, FieldGit},
	}
)

// splitGlobs splits a pipe-separated --ignore-glob value.
func splitGlobs(raw string) []string {
	var globs []string
	for _, g := range strings.Split(raw, "|") {
		if g = strings.TrimSpace(g); g != "" {
			globs = append(globs, g)
		}
	}
	return globs
}
