// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/humors/humor/pkg/platform"
)

// NativeRuntime runs commands through the host shell.
type NativeRuntime struct {
	// Shell overrides the shell chosen from the request's platform style.
	Shell string
}

// NewNativeRuntime creates a native runtime using the platform default shell.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name.
func (r *NativeRuntime) Name() string {
	return string(RuntimeTypeNative)
}

// Available reports whether the shell for the current host can be found.
func (r *NativeRuntime) Available() bool {
	_, err := exec.LookPath(r.shellFor(platform.Current()))
	return err == nil
}

// Execute runs req.Command through the shell and captures its output.
func (r *NativeRuntime) Execute(ctx context.Context, req *Request) *Result {
	style := req.Style
	if style == "" {
		style = platform.Current()
	}

	shell := r.shellFor(style)
	shellPath, err := exec.LookPath(shell)
	if err != nil {
		return NewErrorResult(fmt.Errorf("shell %q not found: %w", shell, err))
	}

	cmd := exec.CommandContext(ctx, shellPath, shellArgs(shell, style, req.Command)...)
	cmd.Dir = req.WorkDir
	cmd.Stdin = req.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	return extractExitCode(cmd.Run(), stdout.String(), stderr.String())
}

func (r *NativeRuntime) shellFor(style platform.ShellStyle) string {
	if r.Shell != "" {
		return r.Shell
	}
	return style.Shell()
}

// shellArgs returns the arguments that make shell run command. Well-known
// shells get their own flags; anything else is treated by style.
func shellArgs(shell string, style platform.ShellStyle, command string) []string {
	base := filepath.Base(shell)
	// Handle Windows paths on Unix hosts too.
	if i := strings.LastIndex(base, "\\"); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(strings.ToLower(base), ".exe")

	switch base {
	case "cmd":
		return platform.ShellWindows.Args(command)
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command", command}
	case "sh", "bash", "zsh", "dash", "ksh", "fish":
		return platform.ShellPOSIX.Args(command)
	default:
		return style.Args(command)
	}
}

// extractExitCode turns the error returned by exec.Cmd.Run into a Result.
func extractExitCode(err error, stdout, stderr string) *Result {
	result := &Result{Output: stdout, ErrOutput: stderr}
	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := ExitCode(exitErr.ExitCode())
		if validateErr := code.Validate(); validateErr != nil {
			result.ExitCode = 1
			result.Error = validateErr
			return result
		}
		result.ExitCode = code
		return result
	}

	result.ExitCode = 1
	result.Error = fmt.Errorf("failed to execute command: %w", err)
	return result
}
