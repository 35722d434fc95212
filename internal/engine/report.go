package engine

import (
	"github.com/abrick/brick/internal/model"
	"github.com/abrick/brick/internal/rules"
)

// LintResult holds one file's ordered violations and derived counts.
type LintResult struct {
	FilePath   string            `json:"file_path"`
	Violations []rules.Violation `json:"violations"`

	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`

	// ParseErrors lists recovered syntax errors. They do not count as
	// violations; a total parse failure surfaces as a synthetic
	// violation instead.
	ParseErrors []model.SyntaxError `json:"parse_errors,omitempty"`
}

// AddViolation appends a violation and keeps the counts in sync.
func (r *LintResult) AddViolation(v rules.Violation) {
	r.Violations = append(r.Violations, v)
	switch v.Severity {
	case rules.Error:
		r.ErrorCount++
	case rules.Warn:
		r.WarningCount++
	}
}

// HasIssues reports whether the file produced violations or recovered
// syntax errors.
func (r *LintResult) HasIssues() bool {
	return len(r.Violations) > 0 || len(r.ParseErrors) > 0
}

// DirectoryReport aggregates per-file results across a tree. Results
// follow the stable file enumeration order, never completion order, and
// the totals are pure sums over the contained results.
type DirectoryReport struct {
	TotalFiles    int           `json:"total_files"`
	TotalErrors   int           `json:"total_errors"`
	TotalWarnings int           `json:"total_warnings"`
	Results       []*LintResult `json:"results"`
}

// buildReport folds per-file results into a report. This is the single
// accumulation step after the concurrent per-file work has finished.
func buildReport(results []*LintResult) *DirectoryReport {
	report := &DirectoryReport{}
	for _, r := range results {
		if r == nil {
			continue
		}
		report.Results = append(report.Results, r)
		report.TotalFiles++
		report.TotalErrors += r.ErrorCount
		report.TotalWarnings += r.WarningCount
	}
	return report
}

// FilesWithIssues counts the files carrying violations or syntax errors.
func (d *DirectoryReport) FilesWithIssues() int {
	count := 0
	for _, r := range d.Results {
		if r.HasIssues() {
			count++
		}
	}
	return count
}
