// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/humors/humor/internal/config"
	"github.com/humors/humor/internal/dispatch"
	"github.com/humors/humor/internal/humorfile"
	"github.com/humors/humor/internal/runtime"
)

// runRoot loads settings and humorfiles, then lists, prints or runs the
// addressed command.
func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	loadOpts := config.LoadOptions{
		SettingsFilePath: opts.settings,
		HomeDir:          opts.homeDir,
	}
	if cmd.Flags().Changed("runtime") {
		loadOpts.Runtime = config.RuntimeMode(opts.runtime)
	}
	settings, err := config.NewProvider().Load(ctx, loadOpts)
	if err != nil {
		return report(stderr, err, opts.verbose)
	}
	verbose := opts.verbose || settings.Verbose
	logger := newLogger(stderr, verbose)
	logger.Debug("settings loaded", "runtime", settings.Runtime, "shell", settings.Shell)

	loader := humorfile.NewLoader(humorfile.WithLogger(logger), humorfile.WithHomeDir(opts.homeDir))
	tree, err := loader.LoadWithBase(opts.configPath)
	if err != nil {
		return report(stderr, err, verbose)
	}

	if opts.list {
		renderList(stdout, tree)
		return nil
	}

	rt, err := runtime.DefaultRegistry(settings.Shell).Get(runtime.RuntimeType(settings.Runtime))
	if err != nil {
		return report(stderr, err, verbose)
	}

	d := dispatch.New(tree, rt, logger)
	d.Stdin = cmd.InOrStdin()
	d.WorkDir = opts.workDir

	command, err := d.Resolve(args)
	if err != nil {
		return report(stderr, err, verbose)
	}
	if opts.dryRun {
		// Only the embedded interpreter can check syntax without running.
		if v, ok := rt.(*runtime.VirtualRuntime); ok {
			if err := v.Validate(command); err != nil {
				return report(stderr, err, verbose)
			}
		}
		fmt.Fprintln(stdout, command)
		return nil
	}

	fmt.Fprintf(stdout, "Executing: %s\n", CmdStyle.Render(command))
	res, err := d.Dispatch(ctx, args)
	if res != nil {
		fmt.Fprint(stdout, res.Output)
	}
	if err != nil {
		return report(stderr, err, verbose)
	}
	return nil
}

// report prints err to w and returns the ExitError that ends the run. An
// execution failure exits with the command's own status.
func report(w io.Writer, err error, verbose bool) error {
	fmt.Fprintln(w, formatErrorForDisplay(err, verbose))

	code := 1
	var execErr *dispatch.CommandExecutionFailedError
	if errors.As(err, &execErr) && execErr.ExitCode > 0 {
		code = int(execErr.ExitCode)
	}
	return &ExitError{Code: code, Err: err}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "humor",
		Level:  level,
	})
}
