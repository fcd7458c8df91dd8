package cmd

import (
	"fmt"

	"github.com/sant0-9/sift/internal/prompts"
	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage the stored prompt set",
}

var promptsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		fmt.Printf("Prompts file: %s\n\n", store.Path())
		for _, key := range prompts.Keys {
			fmt.Printf("%s:\n  %s\n\n", key, store.Get(key))
		}
		return nil
	},
}

var promptsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all prompts to their defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		if err := store.ResetToDefaults(); err != nil {
			return err
		}
		fmt.Printf("Prompts reset to defaults in %s\n", store.Path())
		return nil
	},
}

func init() {
	promptsCmd.AddCommand(promptsShowCmd)
	promptsCmd.AddCommand(promptsResetCmd)
	rootCmd.AddCommand(promptsCmd)
}
