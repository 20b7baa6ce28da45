// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

// Catalog identifiers. The zero value means "no catalog page".
const (
	InvalidInvocationId Id = iota + 1
	InvalidLimitId
	InvalidChoiceId
	FlagParseFailedId
	EnvOptsParseFailedId
	ConfigLoadFailedId
	ConfigNotFoundId
	RenderFailedId
)

type (
	// Id identifies a catalog page.
	Id int

	// MarkdownMsg is the Markdown body of a catalog page.
	MarkdownMsg string

	// HttpLink is an external reference appended to a rendered page.
	HttpLink string

	// Issue is a single catalog page.
	Issue struct {
		id       Id
		title    string
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

// Id returns the catalog identifier.
func (i *Issue) Id() Id { return i.id }

// Title returns the one-line summary used as the page heading.
func (i *Issue) Title() string { return i.title }

// MarkdownMsg returns the page body without the heading.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// ExtLinks returns a copy of the external references.
func (i *Issue) ExtLinks() []HttpLink { return slices.Clone(i.extLinks) }

// Markdown assembles the full page source: heading, body and links.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(i.title)
	sb.WriteString("\n")
	sb.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			sb.WriteString("- <")
			sb.WriteString(string(link))
			sb.WriteString(">\n")
		}
	}
	return sb.String()
}

// Render renders the page for a terminal using the named glamour style
// ("dark", "light", "notty", or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

func (id Id) String() string {
	if i := Get(id); i != nil {
		return i.title
	}
	return "unknown issue"
}

var (
	render = glamour.Render

	invalidInvocationIssue = &Issue{
		id:    InvalidInvocationId,
		title: "The command line was rejected",
		mdMsg: `
One or more options could not be accepted. Nothing was listed.

## Things you can try
- Run ` + "`lsx --help`" + ` to see every flag and its accepted values.
- Pass optional values with an equals sign: ` + "`--color=never`" + `, not ` + "`--color never`" + `.
- Check the ` + "`LSX_OPTS`" + ` environment variable; its words are parsed before the command line.`,
	}

	invalidLimitIssue = &Issue{
		id:    InvalidLimitId,
		title: "A numeric option is not a non-negative integer",
		mdMsg: `
` + "`--width`" + ` and ` + "`--level`" + ` take a plain base-10 count.

## Things you can try
~~~
$ lsx --width=80
$ lsx --tree --level=2
~~~
- Omit the option entirely to let lsx detect the terminal width or recurse without a limit.`,
	}

	invalidChoiceIssue = &Issue{
		id:    InvalidChoiceId,
		title: "An option value is not one of the accepted words",
		mdMsg: `
These options only take a fixed set of words. Case does not matter.

| Option | Accepted |
|---|---|
| ` + "`--color`, `--icons`" + ` | always, auto, never (also yes, tty, no) |
| ` + "`--time-style`" + ` | default, iso, long-iso, full-iso, relative |
| ` + "`--color-scale-mode`" + ` | fixed, gradient |

Sort keys, time fields and color-scale kinds are never rejected: unknown words fall back to the default.`,
	}

	flagParseFailedIssue = &Issue{
		id:    FlagParseFailedId,
		title: "A flag could not be parsed",
		mdMsg: `
The flag is unknown, or a required value is missing.

## Things you can try
- ` + "`-h`" + ` is ` + "`--header`" + `; help is ` + "`-?`" + ` or ` + "`--help`" + `.
- Spelling variants such as ` + "`--colour`" + ` and ` + "`--octal-permissions`" + ` are accepted.`,
	}

	envOptsParseFailedIssue = &Issue{
		id:    EnvOptsParseFailedId,
		title: "LSX_OPTS could not be split into words",
		mdMsg: `
` + "`LSX_OPTS`" + ` is split with POSIX shell quoting rules. An unterminated quote or a
command substitution makes it unusable.

## Things you can try
~~~
$ export LSX_OPTS='--long --ignore-glob="*.o|target"'
~~~`,
		extLinks: []HttpLink{"https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html#tag_18_02"},
	}

	configLoadFailedIssue = &Issue{
		id:    ConfigLoadFailedId,
		title: "The configuration file could not be loaded",
		mdMsg: `
lsx continues with its built-in defaults.

## Things you can try
- Check the CUE syntax of ` + "`config.cue`" + `.
- Only the documented keys are allowed: ` + "`color`, `icons`, `sort`, `time`, `time_style`, `color_scale`, `color_scale_mode`, `group_directories_first`, `classify`, `header`, `git`, `long`, `log_level`" + `.

## Example
~~~cue
color:                   "auto"
sort:                    "modified"
group_directories_first: true
log_level:               "warn"
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	configNotFoundIssue = &Issue{
		id:    ConfigNotFoundId,
		title: "The configuration file named on the command line does not exist",
		mdMsg: `
A file passed with ` + "`--config`" + ` or ` + "`LSX_CONFIG`" + ` must exist. Unlike the default
location, an explicit path is never skipped silently.`,
	}

	renderFailedIssue = &Issue{
		id:    RenderFailedId,
		title: "The resolved configuration could not be written",
		mdMsg: `
## Things you can try
- Choose another ` + "`--explain-format`" + `: text, json, toml or yaml.
- Check that standard output is writable.`,
	}

	issues = map[Id]*Issue{
		invalidInvocationIssue.Id():  invalidInvocationIssue,
		invalidLimitIssue.Id():       invalidLimitIssue,
		invalidChoiceIssue.Id():      invalidChoiceIssue,
		flagParseFailedIssue.Id():    flagParseFailedIssue,
		envOptsParseFailedIssue.Id(): envOptsParseFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		configNotFoundIssue.Id():     configNotFoundIssue,
		renderFailedIssue.Id():       renderFailedIssue,
	}
)

// Values returns every catalog page ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the page for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
