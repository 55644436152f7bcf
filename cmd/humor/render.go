// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/humors/humor/internal/commandtree"
	"github.com/humors/humor/internal/dispatch"
	"github.com/humors/humor/internal/humorfile"
	"github.com/humors/humor/internal/issue"
	"github.com/humors/humor/internal/runtime"
)

// issueTitles are the one-line headers printed above each kind of error.
var issueTitles = map[issue.Id]string{
	issue.FileNotFoundId:            "Humorfile not found",
	issue.ParseErrorId:              "Humorfile could not be parsed",
	issue.ImportCycleId:             "Import cycle detected",
	issue.DuplicateCommandId:        "Duplicate command",
	issue.CommandNotFoundId:         "Command not found",
	issue.InvalidCommandStructureId: "Invalid command structure",
	issue.CommandExecutionFailedId:  "Command failed",
	issue.ConfigLoadFailedId:        "Settings could not be loaded",
	issue.InvalidRuntimeTypeId:      "Unknown runtime",
}

// renderList prints every command grouped by domain and category.
func renderList(w io.Writer, tree *commandtree.Tree) {
	entries := tree.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No commands defined."))
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}

	var domain, category string
	for i, e := range entries {
		if e.Domain != domain || i == 0 {
			domain, category = e.Domain, ""
			fmt.Fprintln(w, listDomainStyle.Render(e.Domain))
		}
		if e.Category != category {
			category = e.Category
			fmt.Fprintln(w, listCategoryStyle.Render(e.Category))
		}
		name := fmt.Sprintf("%-*s", width, e.Name)
		fmt.Fprintf(w, "%s  %s\n", listNameStyle.Render(name), CmdStyle.Render(e.Command))
	}
}

// classifyError attaches operation context and a catalog guide to err.
// Errors that already carry context are returned unchanged.
func classifyError(err error) *issue.ActionableError {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae
	}

	ctx := issue.NewErrorContext().Wrap(err)

	var (
		notFound *humorfile.FileNotFoundError
		parseErr *humorfile.ParseError
		execErr  *dispatch.CommandExecutionFailedError
	)
	switch {
	case errors.As(err, &notFound):
		ctx.WithOperation("load humorfile").
			WithIssue(issue.FileNotFoundId).
			WithSuggestion("Pass the file with -c <path>").
			WithSuggestion("Imports are resolved relative to the importing file")
	case errors.As(err, &parseErr):
		ctx.WithOperation("load humorfile").
			WithIssue(issue.ParseErrorId).
			WithSuggestion("Every leaf under commands must be a string")
	case errors.Is(err, humorfile.ErrImportCycle):
		ctx.WithOperation("load humorfile").
			WithIssue(issue.ImportCycleId).
			WithSuggestion("Remove one of the imports in the chain")
	case errors.Is(err, commandtree.ErrDuplicateCommand):
		ctx.WithOperation("merge commands").
			WithIssue(issue.DuplicateCommandId).
			WithSuggestion("A name may appear only once per domain, across all categories and files")
	case errors.Is(err, commandtree.ErrCommandNotFound):
		ctx.WithOperation("resolve command").
			WithIssue(issue.CommandNotFoundId).
			WithSuggestion("Run 'humor --list' to see the available commands")
	case errors.Is(err, commandtree.ErrInvalidCommandStructure):
		ctx.WithOperation("resolve command").
			WithIssue(issue.InvalidCommandStructureId).
			WithSuggestion("Use: humor <name> | humor <domain> <name> | humor <domain> <category> <name>")
	case errors.As(err, &execErr):
		ctx.WithOperation("run command").
			WithResource(execErr.Command).
			WithIssue(issue.CommandExecutionFailedId).
			WithSuggestion("Use --dry-run to print the command without running it")
	case errors.Is(err, runtime.ErrCommandSyntax):
		ctx.WithOperation("check command").
			WithSuggestion("Check the quoting of the command in the humorfile")
	case errors.Is(err, runtime.ErrInvalidRuntimeType):
		ctx.WithOperation("select runtime").
			WithIssue(issue.InvalidRuntimeTypeId).
			WithSuggestion("Use --runtime with one of: " + runtimeChoices())
	default:
		ctx.WithOperation("run humor")
	}
	return ctx.Build()
}

// formatErrorForDisplay renders err for stderr. In verbose mode the full
// error chain and the catalog guide are included.
func formatErrorForDisplay(err error, verbose bool) string {
	ae := classifyError(err)

	var sb strings.Builder
	if title, ok := issueTitles[ae.IssueId]; ok {
		sb.WriteString(ErrorStyle.Render("✗ " + title))
		sb.WriteString("\n\n")
	}
	sb.WriteString(ae.Format(verbose))

	var execErr *dispatch.CommandExecutionFailedError
	if errors.As(err, &execErr) {
		sb.WriteString("\n\n")
		sb.WriteString(WarningStyle.Render("Command failed with exit code:"))
		fmt.Fprintf(&sb, " %d", execErr.ExitCode)
		if execErr.Stderr != "" {
			sb.WriteString("\n")
			sb.WriteString(WarningStyle.Render("Error output:"))
			sb.WriteString(" " + VerboseStyle.Render(strings.TrimRight(execErr.Stderr, "\n")))
		}
	}

	if verbose {
		if guide := ae.Issue(); guide != nil {
			if rendered, renderErr := guide.Render(issue.DefaultStyle); renderErr == nil {
				sb.WriteString("\n")
				sb.WriteString(rendered)
			}
		}
	}
	return sb.String()
}
