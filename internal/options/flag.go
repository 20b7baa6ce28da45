// SPDX-License-Identifier: MPL-2.0

package options

// Counted toggles. The identifier is the long flag name.
const (
	FlagAll              Flag = "all"
	FlagAlmostAll        Flag = "almost-all"
	FlagGitIgnore        Flag = "git-ignore"
	FlagOneline          Flag = "oneline"
	FlagTree             Flag = "tree"
	FlagGrid             Flag = "grid"
	FlagAcross           Flag = "across"
	FlagLong             Flag = "long"
	FlagRecurse          Flag = "recurse"
	FlagListDirs         Flag = "list-dirs"
	FlagReverse          Flag = "reverse"
	FlagDirsFirst        Flag = "group-directories-first"
	FlagGroup            Flag = "group"
	FlagNumeric          Flag = "numeric"
	FlagInode            Flag = "inode"
	FlagLinks            Flag = "links"
	FlagBlocksize        Flag = "blocksize"
	FlagOctal            Flag = "octal"
	FlagContext          Flag = "context"
	FlagExtended         Flag = "extended"
	FlagFileFlags        Flag = "flags"
	FlagModified         Flag = "modified"
	FlagAccessed         Flag = "accessed"
	FlagCreated          Flag = "created"
	FlagChanged          Flag = "changed"
	FlagNoPermissions    Flag = "no-permissions"
	FlagNoFilesize       Flag = "no-filesize"
	FlagNoUser           Flag = "no-user"
	FlagNoTime           Flag = "no-time"
	FlagNoIcons          Flag = "no-icons"
	FlagNoGit            Flag = "no-git"
	FlagNoQuotes         Flag = "no-quotes"
	FlagNoSymlinks       Flag = "no-symlinks"
	FlagHyperlink        Flag = "hyperlink"
	FlagClassify         Flag = "classify"
	FlagDereference      Flag = "dereference"
	FlagHeader           Flag = "header"
	FlagBinary           Flag = "binary"
	FlagBytes            Flag = "bytes"
	FlagTotalSize        Flag = "total-size"
	FlagSmartGroup       Flag = "smart-group"
	FlagOnlyDirs         Flag = "only-dirs"
	FlagOnlyFiles        Flag = "only-files"
	FlagMounts           Flag = "mounts"
	FlagShowSymlinks     Flag = "show-symlinks"
	FlagStdin            Flag = "stdin"
	FlagGit              Flag = "git"
	FlagGitRepos         Flag = "git-repos"
	FlagGitReposNoStatus Flag = "git-repos-no-status"
)

// Value-bearing options. The identifier is the long flag name.
const (
	OptionWidth          Option = "width"
	OptionLevel          Option = "level"
	OptionIgnoreGlob     Option = "ignore-glob"
	OptionSort           Option = "sort"
	OptionTime           Option = "time"
	OptionColor          Option = "color"
	OptionColorScale     Option = "color-scale"
	OptionColorScaleMode Option = "color-scale-mode"
	OptionTimeStyle      Option = "time-style"
	OptionIcons          Option = "icons"
)

type (
	// Flag identifies a repeatable toggle whose occurrences are counted.
	Flag string

	// Option identifies a flag that carries a free-text value.
	Option string
)

var (
	allFlags = []Flag{
		FlagAll, FlagAlmostAll, FlagGitIgnore,
		FlagOneline, FlagTree, FlagGrid, FlagAcross, FlagLong,
		FlagRecurse, FlagListDirs,
		FlagReverse, FlagDirsFirst,
		FlagGroup, FlagNumeric, FlagInode, FlagLinks, FlagBlocksize,
		FlagOctal, FlagContext, FlagExtended, FlagFileFlags,
		FlagModified, FlagAccessed, FlagCreated, FlagChanged,
		FlagNoPermissions, FlagNoFilesize, FlagNoUser, FlagNoTime,
		FlagNoIcons, FlagNoGit, FlagNoQuotes, FlagNoSymlinks,
		FlagHyperlink, FlagClassify, FlagDereference, FlagHeader,
		FlagBinary, FlagBytes, FlagTotalSize, FlagSmartGroup,
		FlagOnlyDirs, FlagOnlyFiles, FlagMounts, FlagShowSymlinks, FlagStdin,
		FlagGit, FlagGitRepos, FlagGitReposNoStatus,
	}

	allOptions = []Option{
		OptionWidth, OptionLevel, OptionIgnoreGlob,
		OptionSort, OptionTime, OptionColor,
		OptionColorScale, OptionColorScaleMode,
		OptionTimeStyle, OptionIcons,
	}

	knownFlags   = index(allFlags)
	knownOptions = index(allOptions)
)

func index[T comparable](items []T) map[T]struct{} {
	m := make(map[T]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// Flags returns every counted toggle in declaration order.
func Flags() []Flag { return append([]Flag(nil), allFlags...) }

// Options returns every value-bearing option in declaration order.
func Options() []Option { return append([]Option(nil), allOptions...) }

// String returns the long flag name.
func (f Flag) String() string { return string(f) }

// IsKnown reports whether f is one of the declared counted toggles.
func (f Flag) IsKnown() bool {
	_, ok := knownFlags[f]
	return ok
}

// String returns the long flag name.
func (o Option) String() string { return string(o) }

// IsKnown reports whether o is one of the declared value-bearing options.
func (o Option) IsKnown() bool {
	_, ok := knownOptions[o]
	return ok
}
