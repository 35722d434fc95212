package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abrick/brick/internal/config"
	"github.com/abrick/brick/internal/engine"
)

var (
	// ConfigPath is the explicit config file path; empty means
	// discovery relative to the lint target.
	ConfigPath string
	// Preset applies one builtin preset instead of a config file.
	Preset string
	// Workers bounds the directory lint worker pool; 0 means one per
	// CPU.
	Workers int
)

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(lintCmd())
	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(explainCmd())
}

// newEngine builds an engine and applies configuration: an explicit
// preset wins, then an explicit config path, then discovery in the
// target directory.
func newEngine(targetDir string) (*engine.Engine, error) {
	opts := []engine.Option{engine.WithExtendsLoader(config.LoadFile)}
	if Workers > 0 {
		opts = append(opts, engine.WithWorkers(Workers))
	}

	eng, err := engine.New(opts...)
	if err != nil {
		return nil, err
	}

	if Preset != "" {
		if err := eng.UsePreset(Preset); err != nil {
			return nil, err
		}
		return eng, nil
	}

	path := ConfigPath
	if path == "" {
		path = config.Discover(targetDir)
	}
	if path == "" {
		return eng, nil
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := eng.LoadConfig(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return eng, nil
}

// targetDir returns the directory configuration discovery starts from:
// the target itself when it is a directory, its parent otherwise.
func targetDir(target string) string {
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return target
	}
	return filepath.Dir(target)
}
