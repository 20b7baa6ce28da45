// SPDX-License-Identifier: MPL-2.0

package options

import "slices"

const (
	// VisibilityHideDotfiles hides entries whose name starts with a dot.
	VisibilityHideDotfiles Visibility = "hide-dotfiles"
	// VisibilityShowHidden shows dotfiles but not the "." and ".." entries.
	VisibilityShowHidden Visibility = "show-hidden"
	// VisibilityShowAll shows every entry, including "." and "..".
	VisibilityShowAll Visibility = "show-all"

	LayoutGrid    Layout = "grid"
	LayoutOneline Layout = "oneline"
	LayoutLong    Layout = "long"
	LayoutTree    Layout = "tree"

	RecursionNone    RecursionMode = "none"
	RecursionRecurse RecursionMode = "recurse"
	RecursionTree    RecursionMode = "tree"

	// SizeDecimal uses SI prefixes (kB, MB).
	SizeDecimal SizeFormat = "decimal"
	// SizeBinary uses IEC prefixes (KiB, MiB).
	SizeBinary SizeFormat = "binary"
	// SizeBytes prints raw byte counts.
	SizeBytes SizeFormat = "bytes"

	EntryAny       EntryKind = "any"
	EntryDirsOnly  EntryKind = "dirs-only"
	EntryFilesOnly EntryKind = "files-only"

	// SymlinksDefault leaves symlink handling to the entry filter.
	SymlinksDefault SymlinkMode = "default"
	// SymlinksShow lists symlinks even when an entry-kind filter is active.
	SymlinksShow SymlinkMode = "show"
	// SymlinksHide omits symlinks.
	SymlinksHide SymlinkMode = "hide"

	GitReposOff        GitReposMode = "off"
	GitReposStatus     GitReposMode = "status"
	GitReposBranchOnly GitReposMode = "branch-only"
)

type (
	// Visibility governs which dotfiles are listed.
	Visibility string

	// Layout is the single active view.
	Layout string

	// RecursionMode governs whether directories are descended into.
	RecursionMode string

	// SizeFormat selects how file sizes are printed.
	SizeFormat string

	// EntryKind restricts listing to directories or files.
	EntryKind string

	// SymlinkMode governs the listing of symbolic links.
	SymlinkMode string

	// GitReposMode governs the per-directory repository column.
	GitReposMode string

	// Config is the resolved, canonical rendering configuration. It is
	// produced once by Resolve and never modified; copies may be shared
	// freely between goroutines.
	Config struct {
		Visibility Visibility
		Layout     LayoutConfig
		Recursion  RecursionConfig
		Sort       SortConfig
		Fields     FieldSet
		Time       TimeConfig
		Color      ColorConfig
		Icons      ShowWhen
		Filter     FilterConfig
		Display    DisplayConfig
		Git        GitConfig
		Input      InputConfig

		decisions []Decision
	}

	// LayoutConfig is the view axis.
	LayoutConfig struct {
		Mode Layout
		// Details is set when long-format columns were requested, which also
		// applies to the tree view.
		Details bool
		// Across fills grid rows before columns. Only set for LayoutGrid.
		Across bool
	}

	// RecursionConfig is the recursion axis.
	RecursionConfig struct {
		Mode RecursionMode
		// Depth bounds recursion. Always unset when Mode is RecursionNone.
		Depth Limit
		// ListDirs lists directories as plain entries.
		ListDirs bool
	}

	// SortConfig is the ordering axis.
	SortConfig struct {
		Field SortField
		// Reverse flips the final order without changing the key.
		Reverse bool
		// DirsFirst groups directories ahead of files as a secondary rule.
		DirsFirst bool
	}

	// TimeConfig is the timestamp axis.
	TimeConfig struct {
		Field TimeField
		Style TimeStyle
	}

	// ColorConfig is the colouring axis.
	ColorConfig struct {
		Mode      ShowWhen
		Scale     ColorScale
		ScaleMode ColorScaleMode
	}

	// FilterConfig is the entry filtering axis.
	FilterConfig struct {
		Kind      EntryKind
		GitIgnore bool

		ignoreGlobs []string
	}

	// DisplayConfig holds per-entry presentation switches.
	DisplayConfig struct {
		Classify    bool
		Dereference bool
		Hyperlink   bool
		Quotes      bool
		Header      bool
		Numeric     bool
		SmartGroup  bool
		TotalSize   bool
		Mounts      bool
		SizeFormat  SizeFormat
		Symlinks    SymlinkMode
		// Width bounds the output width. Unset means auto-detect.
		Width Limit
	}

	// GitConfig is the git axis. The per-file status column is FieldGit.
	GitConfig struct {
		Repos GitReposMode
	}

	// InputConfig describes where entries come from.
	InputConfig struct {
		Stdin bool

		paths []string
	}

	// Decision records which rule settled an axis and the value it chose.
	Decision struct {
		Axis  string `json:"axis" toml:"axis" yaml:"axis"`
		Value string `json:"value" toml:"value" yaml:"value"`
		Rule  string `json:"rule" toml:"rule" yaml:"rule"`
	}
)

// ScaleEnabled reports whether scale-based colouring is active. An unset
// scale kind disables it whatever ScaleMode says.
func (c ColorConfig) ScaleEnabled() bool { return c.Scale.Enabled() }

// IgnoreGlobs returns a copy of the ignore patterns.
func (f FilterConfig) IgnoreGlobs() []string { return slices.Clone(f.ignoreGlobs) }

// Paths returns a copy of the positional paths. An empty result means the
// caller picks the default location.
func (in InputConfig) Paths() []string { return slices.Clone(in.paths) }

// Decisions returns the provenance of every axis, in resolution order.
func (c Config) Decisions() []Decision { return slices.Clone(c.decisions) }

// Decision returns the provenance recorded for axis.
func (c Config) Decision(axis string) (Decision, bool) {
	for _, d := range c.decisions {
		if d.Axis == axis {
			return d, true
		}
	}
	return Decision{}, false
}

func (v Visibility) String() string    { return string(v) }
func (l Layout) String() string        { return string(l) }
func (m RecursionMode) String() string { return string(m) }
func (s SizeFormat) String() string    { return string(s) }
func (k EntryKind) String() string     { return string(k) }
func (m SymlinkMode) String() string   { return string(m) }
func (m GitReposMode) String() string  { return string(m) }
