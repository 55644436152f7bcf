// SPDX-License-Identifier: MPL-2.0

// Command humor runs shell commands addressed by name from layered humor files.
package main

import "github.com/humors/humor/cmd/humor"

func main() {
	cmd.Execute()
}
