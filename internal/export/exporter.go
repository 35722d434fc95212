// Package export writes lint reports as machine-readable artifacts:
// pretty-printed JSON and a Markdown summary document.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/abrick/brick/internal/engine"
)

// Options configures report export.
type Options struct {
	// ProjectName heads the Markdown document.
	ProjectName string
	// IncludeClean lists files without issues in the Markdown output.
	IncludeClean bool
}

// DefaultOptions returns the default export options.
func DefaultOptions() Options {
	return Options{ProjectName: "project"}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report *engine.DirectoryReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteMarkdown renders the report as a Markdown document with a
// summary table and a per-file violation listing.
func WriteMarkdown(w io.Writer, report *engine.DirectoryReport, opts Options) error {
	fmt.Fprintf(w, "# Lint report: %s\n\n", opts.ProjectName)
	fmt.Fprintf(w, "> Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "| Files | Errors | Warnings |\n")
	fmt.Fprintf(w, "|------:|-------:|---------:|\n")
	fmt.Fprintf(w, "| %d | %d | %d |\n\n", report.TotalFiles, report.TotalErrors, report.TotalWarnings)

	for _, result := range report.Results {
		if !result.HasIssues() {
			if opts.IncludeClean {
				fmt.Fprintf(w, "## %s\n\nNo issues.\n\n", result.FilePath)
			}
			continue
		}

		fmt.Fprintf(w, "## %s\n\n", result.FilePath)
		for _, e := range result.ParseErrors {
			fmt.Fprintf(w, "- line %d: syntax: %s\n", e.StartLine, e.Message)
		}
		for _, v := range result.Violations {
			fmt.Fprintf(w, "- line %d: **%s** %s (`%s`)\n", v.StartLine, v.Severity, v.Message, v.RuleID)
		}
		fmt.Fprintln(w)
	}
	return nil
}
