// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests: environment overrides
// (MustSetenv, MustUnsetenv, SetHomeDir) and humorfile fixtures (WriteFile).
package testutil
