// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/humors/humor/pkg/platform"
)

// Runtime type constants.
const (
	RuntimeTypeNative  RuntimeType = "native"
	RuntimeTypeVirtual RuntimeType = "virtual"
)

var (
	// ErrInvalidRuntimeType is the sentinel error wrapped by InvalidRuntimeTypeError.
	ErrInvalidRuntimeType = errors.New("invalid runtime type")

	// ErrCommandSyntax is returned when the virtual runtime cannot parse a command.
	ErrCommandSyntax = errors.New("command syntax error")
)

type (
	// RuntimeType identifies a runtime implementation.
	//
	//nolint:revive // RuntimeType reads better than Type at call sites
	RuntimeType string

	// InvalidRuntimeTypeError is returned when a runtime name is not registered.
	// It wraps ErrInvalidRuntimeType for errors.Is() compatibility.
	InvalidRuntimeTypeError struct {
		Value RuntimeType
	}

	// Request describes one command execution.
	Request struct {
		// Command is the shell command string, passed verbatim.
		Command string
		// Style selects the host shell invocation (cmd /C vs sh -c).
		Style platform.ShellStyle
		// Stdin is connected to the command's standard input when set.
		Stdin io.Reader
		// WorkDir overrides the working directory when set.
		WorkDir string
	}

	// Result contains the outcome of a command execution.
	Result struct {
		// ExitCode is the exit status of the command.
		ExitCode ExitCode
		// Output is the captured standard output.
		Output string
		// ErrOutput is the captured standard error.
		ErrOutput string
		// Error is set when the command could not be run at all.
		Error error
	}

	// Runtime runs command strings.
	Runtime interface {
		// Name returns the runtime name.
		Name() string
		// Available reports whether the runtime can run commands on this host.
		Available() bool
		// Execute runs the request and captures its output.
		Execute(ctx context.Context, req *Request) *Result
	}

	// Registry holds the runtimes selectable by name.
	Registry struct {
		runtimes map[RuntimeType]Runtime
	}
)

// Error implements the error interface.
func (e *InvalidRuntimeTypeError) Error() string {
	return fmt.Sprintf("invalid runtime type: %q (valid: %s, %s)", e.Value, RuntimeTypeNative, RuntimeTypeVirtual)
}

// Unwrap returns ErrInvalidRuntimeType so callers can use errors.Is for classification.
func (e *InvalidRuntimeTypeError) Unwrap() error { return ErrInvalidRuntimeType }

// Success reports whether the command ran and exited with status zero.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}

// NewErrorResult creates a Result for a command that could not be run.
func NewErrorResult(err error) *Result {
	return &Result{ExitCode: 1, Error: err}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{runtimes: make(map[RuntimeType]Runtime)}
}

// DefaultRegistry returns a registry with the native and virtual runtimes.
// A non-empty shell overrides the native runtime's platform default.
func DefaultRegistry(shell string) *Registry {
	reg := NewRegistry()
	native := NewNativeRuntime()
	native.Shell = shell
	reg.Register(RuntimeTypeNative, native)
	reg.Register(RuntimeTypeVirtual, NewVirtualRuntime())
	return reg
}

// Register adds or replaces a runtime.
func (r *Registry) Register(typ RuntimeType, rt Runtime) {
	r.runtimes[typ] = rt
}

// Get returns the runtime registered under typ. An empty typ selects the
// native runtime.
func (r *Registry) Get(typ RuntimeType) (Runtime, error) {
	if typ == "" {
		typ = RuntimeTypeNative
	}
	rt, ok := r.runtimes[typ]
	if !ok {
		return nil, &InvalidRuntimeTypeError{Value: typ}
	}
	return rt, nil
}

// Types returns the registered runtime types in sorted order.
func (r *Registry) Types() []RuntimeType {
	types := make([]RuntimeType, 0, len(r.runtimes))
	for typ := range r.runtimes {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}
