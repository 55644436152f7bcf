// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

const (
	// ShellWindows runs commands with "cmd /C".
	ShellWindows ShellStyle = "windows"
	// ShellPOSIX runs commands with "sh -c".
	ShellPOSIX ShellStyle = "posix"
)

// ShellStyle identifies how a command string is handed to the host shell.
type ShellStyle string

// Current returns the shell style of the running host.
func Current() ShellStyle {
	return StyleFor(runtime.GOOS)
}

// StyleFor returns the shell style for a GOOS value.
func StyleFor(goos string) ShellStyle {
	if goos == Windows {
		return ShellWindows
	}
	return ShellPOSIX
}

// String returns the style name.
func (s ShellStyle) String() string { return string(s) }

// Shell returns the default shell executable for the style.
func (s ShellStyle) Shell() string {
	if s == ShellWindows {
		return "cmd"
	}
	return "sh"
}

// Args returns the arguments that make the style's shell run command.
func (s ShellStyle) Args(command string) []string {
	if s == ShellWindows {
		return []string{"/C", command}
	}
	return []string{"-c", command}
}
