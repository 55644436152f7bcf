// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Issue ids. Zero means "no guide".
const (
	FileNotFoundId Id = iota + 1
	ParseErrorId
	ImportCycleId
	DuplicateCommandId
	CommandNotFoundId
	InvalidCommandStructureId
	CommandExecutionFailedId
	ConfigLoadFailedId
	InvalidRuntimeTypeId
)

// DefaultStyle is the glamour style used when none is given.
const DefaultStyle = "auto"

type (
	// Id identifies an issue in the catalog.
	//
	//nolint:revive // Id matches the catalog naming used across the CLI
	Id int

	// MarkdownMsg is Markdown text rendered by glamour.
	MarkdownMsg string

	// Issue is a remediation guide for one kind of failure.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# Humorfile not found!

humor could not read the configuration file named in the error.

## Things you can try:
- Pass the file explicitly:
~~~
$ humor -c path/to/humor.yaml <command>
~~~
- Check the paths listed under ` + "`import`" + `. They are resolved against the
  directory of the file that imports them, not the current directory.
- The base file ` + "`~/.humors/humor-base.yaml`" + ` is optional and is never
  reported as missing.`,
	}

	parseErrorIssue = &Issue{
		id: ParseErrorId,
		mdMsg: `
# Humorfile could not be parsed!

The file exists but is not a valid humor document.

## Expected shape:
~~~yaml
import:
  - shared/rust.yaml
commands:
  rust:
    build:
      debug: cargo build
~~~

## Things you can try:
- Every leaf under ` + "`commands`" + ` must be a string.
- Files ending in ` + "`.cue`" + ` are read as CUE (quote the ` + "`\"import\"`" + ` key),
  ` + "`.toml`" + ` as TOML, anything else as YAML.`,
	}

	importCycleIssue = &Issue{
		id: ImportCycleId,
		mdMsg: `
# Import cycle detected!

A humorfile imports itself, directly or through other files.

## Things you can try:
- Follow the chain printed in the error and remove one of the imports.
- Move commands shared by both files into a third file that neither imports back.`,
	}

	duplicateCommandIssue = &Issue{
		id: DuplicateCommandId,
		mdMsg: `
# Duplicate command!

A command name may appear only once per domain, even across categories and
imported files. Definitions are never silently overwritten.

## Things you can try:
- Rename one of the commands.
- Move one of them to a different domain.
- Check for a file that is imported twice through different paths.`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

Commands are addressed with one, two or three words:

| Words | Lookup |
|---|---|
| ` + "`name`" + ` | the name must exist exactly once in all domains |
| ` + "`domain name`" + ` | first match in any category of the domain |
| ` + "`domain category name`" + ` | exact match |

## Things you can try:
- List the available commands:
~~~
$ humor --list
~~~
- A bare name defined in several places is ambiguous. Add the domain.`,
	}

	invalidCommandStructureIssue = &Issue{
		id: InvalidCommandStructureId,
		mdMsg: `
# Invalid command structure!

humor expects between one and three words after the flags.

## Examples:
~~~
$ humor debug
$ humor rust debug
$ humor rust build debug
~~~`,
	}

	commandExecutionFailedIssue = &Issue{
		id: CommandExecutionFailedId,
		mdMsg: `
# Command failed!

The command was found and started, but the shell reported a failure.

## Things you can try:
- Read the captured standard error printed above.
- Print the resolved command without running it:
~~~
$ humor --dry-run <command>
~~~
- Try the built-in shell, which behaves the same on every platform:
~~~
$ humor --runtime virtual <command>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Settings could not be loaded!

humor reads optional settings from ` + "`~/.humors/settings.yaml`" + ` or
` + "`~/.humors/settings.toml`" + ` and from ` + "`HUMOR_*`" + ` environment variables.

## Example:
~~~yaml
runtime: virtual
verbose: false
shell: bash
~~~`,
	}

	invalidRuntimeTypeIssue = &Issue{
		id: InvalidRuntimeTypeId,
		mdMsg: `
# Unknown runtime!

Valid runtimes are ` + "`native`" + ` (the host shell) and ` + "`virtual`" + `
(the built-in POSIX shell interpreter).

## Things you can try:
~~~
$ humor --runtime virtual <command>
$ export HUMOR_RUNTIME=native
~~~`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():            fileNotFoundIssue,
		parseErrorIssue.Id():              parseErrorIssue,
		importCycleIssue.Id():             importCycleIssue,
		duplicateCommandIssue.Id():        duplicateCommandIssue,
		commandNotFoundIssue.Id():         commandNotFoundIssue,
		invalidCommandStructureIssue.Id(): invalidCommandStructureIssue,
		commandExecutionFailedIssue.Id():  commandExecutionFailedIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		invalidRuntimeTypeIssue.Id():      invalidRuntimeTypeIssue,
	}
)

// Id returns the issue id.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw guide.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guide with the given glamour style ("auto", "dark",
// "light", "notty", or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	if stylePath == "" {
		stylePath = DefaultStyle
	}

	return render(strings.TrimSpace(string(i.mdMsg)), stylePath)
}

// Get returns the issue with the given id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
