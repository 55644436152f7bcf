// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/humors/humor/internal/commandtree"
	"github.com/humors/humor/internal/runtime"
	"github.com/humors/humor/pkg/platform"
)

// Dispatcher runs commands addressed by positional tokens.
type Dispatcher struct {
	// Tree is the merged command tree. It is only read.
	Tree *commandtree.Tree
	// Runtime executes the resolved command string.
	Runtime runtime.Runtime
	// Logger receives debug output. A nil Logger discards it.
	Logger *log.Logger
	// Style selects the host shell invocation. Empty means platform.Current().
	Style platform.ShellStyle
	// Stdin is connected to the command when set.
	Stdin io.Reader
	// WorkDir is the command's working directory when set.
	WorkDir string
}

// New creates a Dispatcher for tree that executes with rt.
func New(tree *commandtree.Tree, rt runtime.Runtime, logger *log.Logger) *Dispatcher {
	return &Dispatcher{Tree: tree, Runtime: rt, Logger: logger}
}

// Resolve returns the command string addressed by args without running it.
func (d *Dispatcher) Resolve(args []string) (string, error) {
	return d.tree().Find(args)
}

// Dispatch resolves args and executes the command. The result is returned
// whenever the command was handed to the runtime, including on failure, so
// callers can show the captured output.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) (*runtime.Result, error) {
	command, err := d.Resolve(args)
	if err != nil {
		return nil, err
	}

	style := d.Style
	if style == "" {
		style = platform.Current()
	}

	logger := d.logger()
	logger.Debug("Executing", "command", command, "runtime", d.Runtime.Name(), "shell", style)

	res := d.Runtime.Execute(ctx, &runtime.Request{
		Command: command,
		Style:   style,
		Stdin:   d.Stdin,
		WorkDir: d.WorkDir,
	})
	if res.Success() {
		return res, nil
	}

	logger.Debug("command failed", "command", command, "exit_code", res.ExitCode, "error", res.Error)
	return res, &CommandExecutionFailedError{
		Command:  command,
		ExitCode: res.ExitCode,
		Stderr:   res.ErrOutput,
		Err:      res.Error,
	}
}

func (d *Dispatcher) tree() *commandtree.Tree {
	if d.Tree == nil {
		return commandtree.New()
	}
	return d.Tree
}

func (d *Dispatcher) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}
