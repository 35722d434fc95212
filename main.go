package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abrick/brick/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brick",
		Short: "brick - multi-language code quality analyzer",
		Long: `brick parses source files into a language-independent node graph,
derives metrics such as cyclomatic complexity, and evaluates a
configurable rule set over the result. Supported languages: Python,
JavaScript, TypeScript and TSX.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cmd.ConfigPath, "config", "c", "", "config file path (default: discovered)")
	rootCmd.PersistentFlags().StringVarP(&cmd.Preset, "preset", "p", "", "builtin preset (recommended, strict, minimal)")
	rootCmd.PersistentFlags().IntVarP(&cmd.Workers, "workers", "w", 0, "worker pool size for directory linting (default: one per CPU)")

	cmd.RegisterCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
