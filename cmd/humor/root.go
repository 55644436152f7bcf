// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/humors/humor/internal/humorfile"
	"github.com/humors/humor/internal/runtime"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the parsed flags of one invocation.
type rootOptions struct {
	configPath string
	verbose    bool
	runtime    string
	dryRun     bool
	list       bool
	settings   string
	workDir    string

	// homeDir replaces the user's home directory; empty means os.UserHomeDir.
	homeDir string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "humor [flags] <command>...",
		Short: "Run shell commands by name from layered YAML files",
		Long: TitleStyle.Render("humor") + SubtitleStyle.Render(" - run shell commands by name") + `

Commands live in humor.yaml under commands.<domain>.<category>.<name> and
may be split across files listed under 'import'. The optional base file
~/.humors/humor-base.yaml is loaded first.

` + SubtitleStyle.Render("Addressing:") + `
  humor <name>                      name defined exactly once anywhere
  humor <domain> <name>             first match in any category of domain
  humor <domain> <category> <name>  exact match

` + SubtitleStyle.Render("Examples:") + `
  humor --list                      List every command
  humor rust build debug            Run rust.build.debug
  humor --dry-run rust debug        Print the command without running it
  humor -C ./crate rust unit        Run rust unit inside ./crate`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", humorfile.DefaultFileName, "path to the humor file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log loading, imports and execution")
	flags.StringVar(&opts.runtime, "runtime", "", "runtime to use: "+runtimeChoices()+" (default from settings)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the resolved command without running it")
	flags.BoolVarP(&opts.list, "list", "l", false, "list all commands")
	flags.StringVar(&opts.settings, "settings", "", "path to a settings file (default ~/.humors/settings.*)")
	flags.StringVarP(&opts.workDir, "workdir", "C", "", "directory to run the command in")

	return rootCmd
}

// runtimeChoices lists the selectable runtimes, e.g. "native or virtual".
func runtimeChoices() string {
	types := runtime.DefaultRegistry("").Types()
	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = string(typ)
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the humor command line and exits the process.
// This is called by main.main().
func Execute() {
	// Completions and the man page are left out so that every first
	// positional token is free to be a domain name.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// handleError prints errors that runRoot has not already reported, such as
// flag parsing failures.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
