package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abrick/brick/internal/export"
	"github.com/abrick/brick/internal/storage"
)

func exportCmd() *cobra.Command {
	var (
		format      string
		output      string
		projectName string
	)

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Lint a tree and export the report as JSON, Markdown or SQLite",
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
			case "sqlite":
				if output == "" {
					output = "brick-report.db"
				}
				db, err := storage.Open(output)
				if err != nil {
					return fmt.Errorf("open report database: %w", err)
				}
				defer db.Close()
				if err := db.WriteReport(report); err != nil {
					return err
				}
				fmt.Printf("report written to %s (%d files)\n", output, report.TotalFiles)
				return nil

			case "json", "markdown":
				w := os.Stdout
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				if format == "json" {
					return export.WriteJSON(w, report)
				}
				opts := export.DefaultOptions()
				if projectName != "" {
					opts.ProjectName = projectName
				}
				return export.WriteMarkdown(w, report, opts)

			default:
				return fmt.Errorf("unknown export format %q", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format (json, markdown, sqlite)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default stdout; sqlite defaults to brick-report.db)")
	cmd.Flags().StringVar(&projectName, "project-name", "", "project name for the Markdown header")
	return cmd
}
