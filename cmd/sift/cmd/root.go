package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/sift/internal/config"
	"github.com/sant0-9/sift/internal/prompts"
	"github.com/sant0-9/sift/internal/tui"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "sift",
	Short:   "Demo inbox assistant in your terminal",
	Version: version,
	Long: `sift is a demonstration inbox assistant. It loads a small fixed set of
emails and categorizes them, extracts action items, writes summaries and
drafts replies using deterministic pattern matching - no model, no network.

Run with no arguments to open the interactive UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tui.NewApp()
		p := tea.NewProgram(
			app,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore resolves the prompts file from config and opens the store.
// A load failure is reported but not fatal: the store then serves an
// empty mapping.
func openStore() *prompts.Store {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	path, err := cfg.PromptsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	store, err := prompts.New(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return store
}
