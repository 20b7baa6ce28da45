// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lsxdev/lsx/internal/issue"
	"github.com/lsxdev/lsx/internal/options"
	"github.com/lsxdev/lsx/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the lsx command bound to app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lsx [flags] [path...]",
		Short: "Resolve ls-style options into a listing configuration",
		Long: TitleStyle.Render("lsx") + SubtitleStyle.Render(" - resolve ls-style options into a listing configuration") + `

lsx reads the listing flags of a modern ls replacement, settles every
conflict between them by a fixed priority and prints the result along
with the rule that decided each setting.

` + SubtitleStyle.Render("Precedence:") + `
  command line > ` + EnvOpts + ` > LSX_<KEY> variables > config.cue > built-in default

` + SubtitleStyle.Render("Optional values:") + `
  Flags such as --color, --icons, --sort and --time take an optional value.
  Attach it with '=' (` + CmdStyle.Render("--sort=size") + ` or ` + CmdStyle.Render("-s=size") + `); a separate word is a path.`,
		Example: `  lsx -la --no-user
  lsx --tree --level=2 --explain-format=json src
  LSX_OPTS='--color=never' lsx -T`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, args)
		},
	}

	registerFlags(root.Flags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(issue.NewErrorContext().
			WithOperation("parse command line").
			WithIssue(issue.FlagParseFailedId).
			WithSuggestion("Run 'lsx --help' to see every flag").
			Wrap(err).
			BuildError())
	})
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)
	return root
}

// run is the boundary between the command line and the resolver. Any
// rejection happens here, before Resolve is called.
func (a *App) run(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()

	configPath, _ := fs.GetString(flagConfig)
	if !fs.Changed(flagConfig) {
		configPath = a.Getenv(EnvConfig)
	}
	cfg, err := a.loadConfig(cmd.Context(), configPath)
	if err != nil {
		return err
	}

	rawFormat, _ := fs.GetString(flagExplainFormat)
	format, err := ParseExplainFormat(rawFormat)
	if err != nil {
		return usageError(issue.NewErrorContext().
			WithOperation("parse command line").
			WithResource("--" + flagExplainFormat).
			WithIssue(issue.InvalidInvocationId).
			Wrap(err).
			BuildError())
	}

	in, err := collectInput(fs, args)
	if err != nil {
		return usageError(err)
	}
	in = in.FillDefaults(cfg.OptionDefaults(), cfg.FlagDefaults())

	inv, err := options.NewInvocation(in)
	if err != nil {
		return usageError(invalidInvocation(err))
	}
	if err := inv.Validate(); err != nil {
		return usageError(invalidInvocation(err))
	}

	resolved := options.Resolve(inv)
	for _, d := range resolved.Decisions() {
		a.logger.Debug("resolved", "axis", d.Axis, "value", d.Value, "rule", d.Rule)
	}

	if err := a.Renderer.Render(a.stdout, resolved, format); err != nil {
		return failureError(issue.NewErrorContext().
			WithOperation("render configuration").
			WithResource(format.String()).
			WithIssue(issue.RenderFailedId).
			Wrap(err).
			BuildError())
	}
	return nil
}

// invalidInvocation wraps a boundary validation failure with the catalog
// page matching its first cause.
func invalidInvocation(err error) error {
	id := issue.InvalidInvocationId
	switch {
	case errors.Is(err, options.ErrInvalidLimit):
		id = issue.InvalidLimitId
	case errors.Is(err, options.ErrInvalidShowWhen),
		errors.Is(err, options.ErrInvalidTimeStyle),
		errors.Is(err, options.ErrInvalidColorScaleMode):
		id = issue.InvalidChoiceId
	}

	ctx := issue.NewErrorContext().
		WithOperation("parse command line").
		WithIssue(id)

	var invErr *options.InvalidInvocationError
	if errors.As(err, &invErr) && len(invErr.FieldErrors) > 1 {
		for _, fe := range invErr.FieldErrors {
			ctx.WithSuggestion(fe.Error())
		}
	}
	return ctx.
		WithSuggestion("Run 'lsx --help' to see accepted values").
		Wrap(err).
		BuildError()
}

// errorHandler prints err for fang. In verbose mode the linked catalog page
// follows the message.
func (a *App) errorHandler(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("error: ")+formatErrorForDisplay(err, a.verbose))
	a.logIssueHelp(err)
}

// Execute runs lsx with the process arguments and exits with the code
// carried by the returned error.
func Execute() {
	app := NewApp(Dependencies{})
	os.Exit(int(app.execute(context.Background(), os.Args[1:])))
}

// execute runs the root command through fang and maps the result to an
// exit code.
func (a *App) execute(ctx context.Context, args []string) types.ExitCode {
	args, err := expandArgs(args, a.Getenv)
	if err != nil {
		a.errorHandler(a.stderr, fang.Styles{}, err)
		return exitCode(err)
	}

	root := NewRootCommand(a)
	// A nil slice makes cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))
	err = fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(a.errorHandler),
	)
	return exitCode(err)
}

// exitCode maps err to a process exit status.
func exitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}
