package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abrick/brick/internal/display"
	"github.com/abrick/brick/internal/engine"
)

func lintCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Lint a file or directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}

			report, err := runLint(cmd, target)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				if err := outputJSON(report); err != nil {
					return err
				}
			case "text":
				fmt.Print(display.FormatReport(report))
			default:
				return fmt.Errorf("unknown output format %q", format)
			}

			if report.TotalErrors > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

// runLint builds the engine for target and lints it, treating a single
// file as a one-file report.
func runLint(cmd *cobra.Command, target string) (*engine.DirectoryReport, error) {
	eng, err := newEngine(targetDir(target))
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", target, err)
	}

	if info.IsDir() {
		return eng.LintDirectory(cmd.Context(), target)
	}

	result := eng.LintFile(cmd.Context(), target)
	return &engine.DirectoryReport{
		TotalFiles:    1,
		TotalErrors:   result.ErrorCount,
		TotalWarnings: result.WarningCount,
		Results:       []*engine.LintResult{result},
	}, nil
}
