// SPDX-License-Identifier: MPL-2.0

// Package platform selects the host shell invocation style.
//
// Windows hosts run command strings through "cmd /C"; every other host uses
// "sh -c". The selector is computed from runtime.GOOS and handed to the
// execution runtime alongside the resolved command.
package platform
