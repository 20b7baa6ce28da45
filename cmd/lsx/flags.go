// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/lsxdev/lsx/internal/options"

	"github.com/spf13/pflag"
)

const (
	flagHelp          = "help"
	flagConfig        = "config"
	flagExplainFormat = "explain-format"
)

type (
	// countedFlag declares a repeatable toggle.
	countedFlag struct {
		flag      options.Flag
		shorthand string
		usage     string
	}

	// valueFlag declares an option carrying text. A non-empty bare value
	// makes the argument optional (--color alone means --color=auto).
	valueFlag struct {
		option    options.Option
		shorthand string
		bare      string
		usage     string
	}
)

var countedFlags = []countedFlag{
	{options.FlagAll, "a", "show hidden files, including . and .."},
	{options.FlagAlmostAll, "A", "show hidden files but not . and .."},
	{options.FlagGitIgnore, "", "ignore files mentioned in .gitignore"},

	{options.FlagOneline, "1", "one entry per line"},
	{options.FlagTree, "T", "recurse into directories as a tree"},
	{options.FlagGrid, "G", "display entries as a grid (default)"},
	{options.FlagAcross, "x", "sort the grid across rather than down"},
	{options.FlagLong, "l", "display extended file metadata as a table"},

	{options.FlagRecurse, "R", "recurse into directories"},
	{options.FlagListDirs, "d", "list directories as files, not their contents"},

	{options.FlagReverse, "r", "reverse the sort order"},
	{options.FlagDirsFirst, "", "list directories before other files"},

	{options.FlagGroup, "g", "list each file's group"},
	{options.FlagNumeric, "n", "list numeric user and group IDs"},
	{options.FlagInode, "i", "list each file's inode number"},
	{options.FlagLinks, "H", "list each file's number of hard links"},
	{options.FlagBlocksize, "S", "show size of allocated file system blocks"},
	{options.FlagOctal, "o", "list each file's permission in octal format"},
	{options.FlagContext, "Z", "list each file's security context"},
	{options.FlagExtended, "@", "list each file's extended attributes and sizes"},
	{options.FlagFileFlags, "O", "list file flags"},

	{options.FlagModified, "m", "use the modified timestamp field"},
	{options.FlagAccessed, "u", "use the accessed timestamp field"},
	{options.FlagCreated, "U", "use the created timestamp field"},
	{options.FlagChanged, "", "use the changed timestamp field"},

	{options.FlagNoPermissions, "", "suppress the permissions field"},
	{options.FlagNoFilesize, "", "suppress the filesize field"},
	{options.FlagNoUser, "", "suppress the user field"},
	{options.FlagNoTime, "", "suppress the time field"},
	{options.FlagNoIcons, "", "never display icons"},
	{options.FlagNoGit, "", "suppress every git field"},
	{options.FlagNoQuotes, "", "don't quote file names with spaces"},
	{options.FlagNoSymlinks, "", "don't show symbolic links"},

	{options.FlagHyperlink, "", "display entries as hyperlinks"},
	{options.FlagClassify, "F", "display type indicator by file names"},
	{options.FlagDereference, "X", "dereference symbolic links when displaying information"},
	{options.FlagHeader, "h", "add a header row to each column"},
	{options.FlagBinary, "b", "list file sizes with binary prefixes"},
	{options.FlagBytes, "B", "list file sizes in bytes, without any prefixes"},
	{options.FlagTotalSize, "", "show the size of a directory as the size of all files in it"},
	{options.FlagSmartGroup, "", "only show group if it has a different name from owner"},
	{options.FlagOnlyDirs, "D", "list only directories"},
	{options.FlagOnlyFiles, "f", "list only regular files"},
	{options.FlagMounts, "M", "show mount details"},
	{options.FlagShowSymlinks, "", "explicitly show symbolic links"},
	{options.FlagStdin, "", "read file names from stdin"},

	{options.FlagGit, "", "list each file's git status"},
	{options.FlagGitRepos, "", "list root of git-tree status"},
	{options.FlagGitReposNoStatus, "", "list each git-repos branch name (much faster)"},
}

var valueFlags = []valueFlag{
	{options.OptionIgnoreGlob, "I", "", "glob patterns (pipe-separated) of files to ignore"},
	{options.OptionLevel, "L", "", "limit the depth of recursion"},
	{options.OptionSort, "s", "time", "which field to sort by"},
	{options.OptionTime, "t", "modified", "which timestamp field to list (modified, accessed, created, changed)"},
	{options.OptionTimeStyle, "", "default", "how to format timestamps (default, iso, long-iso, full-iso, relative)"},
	{options.OptionColor, "", "auto", "when to use terminal colours (always, auto, never)"},
	{options.OptionColorScale, "", "all", "highlight levels of 'field' distinctly (all, age, size)"},
	{options.OptionColorScaleMode, "", "gradient", "use gradient or fixed colors in --color-scale (fixed, gradient)"},
	{options.OptionIcons, "", "auto", "when to display icons (always, auto, never)"},
	{options.OptionWidth, "w", "", "set screen width in columns"},
}

// flagAliases maps accepted spellings to the registered flag name.
var flagAliases = map[string]string{
	"colour":            string(options.OptionColor),
	"colour-scale":      string(options.OptionColorScale),
	"colour-scale-mode": string(options.OptionColorScaleMode),
	"octal-permission":  string(options.FlagOctal),
	"octal-permissions": string(options.FlagOctal),
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// registerFlags declares every lsx flag on fs. -h is --header, so help is
// registered as -? before cobra adds its default.
func registerFlags(fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(normalizeFlagName)
	fs.SortFlags = false

	for _, cf := range countedFlags {
		fs.CountP(string(cf.flag), cf.shorthand, cf.usage)
	}
	for _, vf := range valueFlags {
		fs.StringP(string(vf.option), vf.shorthand, "", vf.usage)
		if vf.bare != "" {
			fs.Lookup(string(vf.option)).NoOptDefVal = vf.bare
		}
	}

	fs.String(flagConfig, "", "config file (default is $XDG_CONFIG_HOME/lsx/config.cue, or $"+EnvConfig+")")
	fs.String(flagExplainFormat, string(FormatText), "output format of the resolved configuration (text, json, toml, yaml)")
	fs.BoolP(flagHelp, "?", false, "help for lsx")
}

// collectInput reads the parsed flags into an options.Input. Only options
// given on the command line are recorded, so config defaults can fill the
// rest.
func collectInput(fs *pflag.FlagSet, args []string) (options.Input, error) {
	in := options.Input{
		Counts: make(map[options.Flag]int, len(countedFlags)),
		Values: make(map[options.Option]string),
		Paths:  append([]string(nil), args...),
	}

	for _, cf := range countedFlags {
		n, err := fs.GetCount(string(cf.flag))
		if err != nil {
			return options.Input{}, fmt.Errorf("read --%s: %w", cf.flag, err)
		}
		if n > 0 {
			in.Counts[cf.flag] = n
		}
	}
	for _, vf := range valueFlags {
		name := string(vf.option)
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return options.Input{}, fmt.Errorf("read --%s: %w", name, err)
		}
		in.Values[vf.option] = v
	}
	return in, nil
}
