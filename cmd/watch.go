package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abrick/brick/internal/display"
	"github.com/abrick/brick/internal/engine"
	"github.com/abrick/brick/internal/watcher"
)

func watchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Watch a directory and re-lint files on change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}

			eng, err := newEngine(target)
			if err != nil {
				return err
			}

			w, err := watcher.New(target, eng,
				watcher.WithDebounceDelay(debounce),
				watcher.WithOnLintStart(func(files []string) {
					fmt.Printf("change detected, re-linting %d files...\n", len(files))
				}),
				watcher.WithOnLintDone(func(report *engine.DirectoryReport, d time.Duration) {
					fmt.Print(display.FormatReport(report))
					fmt.Printf("done in %s\n\n", d.Round(time.Millisecond))
				}),
				watcher.WithOnError(func(err error) {
					fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
				}),
			)
			if err != nil {
				return err
			}

			w.Start()
			defer w.Stop()
			fmt.Printf("watching %s (ctrl-c to stop)\n", target)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "delay before re-linting after a change")
	return cmd
}
