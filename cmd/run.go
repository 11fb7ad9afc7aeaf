package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/edulanding/internal/app"
	"github.com/abhisek/edulanding/internal/curriculum"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("stdout is not a terminal; use 'edulanding sections' or 'edulanding checklist' for plain output")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the course in the terminal UI (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runApp loads config and content, opens the log, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := cfg.OpenLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		cfg.Log.File = "-"
		logger, closer, _ = cfg.OpenLogger()
	}
	defer closer.Close()

	cat, err := curriculum.Default()
	if err != nil {
		logger.Error("curriculum failed to load", "error", err)
		return fmt.Errorf("load curriculum: %w", err)
	}

	return app.Run(cmd.Context(), app.Options{
		Config:  cfg,
		Catalog: cat,
		Logger:  logger,
	})
}
