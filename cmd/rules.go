package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abrick/brick/internal/display"
	"github.com/abrick/brick/internal/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List registered rules with their effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(".")
			if err != nil {
				return err
			}
			fmt.Print(display.FormatRules(eng.Rules(), eng.Effective()))
			fmt.Printf("\npresets: %v\n", rules.PresetNames())
			return nil
		},
	}
	return cmd
}
