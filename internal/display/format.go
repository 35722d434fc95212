package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abrick/brick/internal/engine"
	"github.com/abrick/brick/internal/rules"
)

// FormatResult renders one file's lint result. Clean files produce no
// output.
func FormatResult(result *engine.LintResult) string {
	if !result.HasIssues() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(result.FilePath + "\n")

	for _, e := range result.ParseErrors {
		sb.WriteString(fmt.Sprintf("  %4d:%-4d syntax  %s\n", e.StartLine, e.EndLine, e.Message))
	}
	for _, v := range result.Violations {
		sb.WriteString(fmt.Sprintf("  %4d:%-4d %-6s %s  (%s)\n",
			v.StartLine, v.EndLine, severityLabel(v.Severity), v.Message, v.RuleID))
	}
	return sb.String()
}

// FormatReport renders the directory report: every file with issues,
// then a summary line.
func FormatReport(report *engine.DirectoryReport) string {
	var sb strings.Builder
	for _, result := range report.Results {
		if out := FormatResult(result); out != "" {
			sb.WriteString(out)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(Summary(report))
	return sb.String()
}

// Summary renders the one-line report summary.
func Summary(report *engine.DirectoryReport) string {
	problems := report.TotalErrors + report.TotalWarnings
	if problems == 0 {
		return fmt.Sprintf("%d files checked, no problems found\n", report.TotalFiles)
	}
	return fmt.Sprintf("%d files checked: %d problems (%d errors, %d warnings) in %d files\n",
		report.TotalFiles, problems, report.TotalErrors, report.TotalWarnings,
		report.FilesWithIssues())
}

// FormatRules renders the registered rules with their effective
// severity and options, one per line.
func FormatRules(registry *rules.Registry, effective *rules.EffectiveRuleSet) string {
	var sb strings.Builder
	for _, id := range registry.IDs() {
		cfg, _ := effective.Config(id)
		line := fmt.Sprintf("%-36s %-5s", id, severityLabel(cfg.Severity))
		if len(cfg.Options) > 0 {
			line += "  " + formatOptions(cfg.Options)
		}
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return sb.String()
}

func severityLabel(s rules.Severity) string {
	switch s {
	case rules.Error:
		return "error"
	case rules.Warn:
		return "warn"
	}
	return "off"
}

func formatOptions(opts rules.Options) string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, opts[k]))
	}
	return strings.Join(parts, " ")
}
