// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRuntime interprets commands with the embedded mvdan/sh shell.
// External programs are still started from the host PATH.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a virtual runtime.
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string {
	return string(RuntimeTypeVirtual)
}

// Available always returns true; the interpreter is built in.
func (r *VirtualRuntime) Available() bool {
	return true
}

// Validate reports shell syntax errors in command without running it.
func (r *VirtualRuntime) Validate(command string) error {
	if _, err := parseScript(command); err != nil {
		return err
	}
	return nil
}

// Execute interprets req.Command and captures its output. req.Style is
// ignored: the interpreter always uses POSIX semantics.
func (r *VirtualRuntime) Execute(ctx context.Context, req *Request) *Result {
	prog, err := parseScript(req.Command)
	if err != nil {
		return NewErrorResult(err)
	}

	var stdout, stderr bytes.Buffer
	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(req.Stdin, &stdout, &stderr),
	}
	if req.WorkDir != "" {
		opts = append(opts, interp.Dir(req.WorkDir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to create interpreter: %w", err))
	}

	err = runner.Run(ctx, prog)
	result := &Result{Output: stdout.String(), ErrOutput: stderr.String()}
	if err == nil {
		return result
	}

	var status interp.ExitStatus
	if errors.As(err, &status) {
		result.ExitCode = ExitCode(status)
		return result
	}
	result.ExitCode = 1
	result.Error = fmt.Errorf("script execution failed: %w", err)
	return result
}

func parseScript(command string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommandSyntax, err)
	}
	return prog, nil
}
