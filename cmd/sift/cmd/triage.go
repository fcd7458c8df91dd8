package cmd

import (
	"fmt"

	"github.com/sant0-9/sift/internal/engine"
	"github.com/sant0-9/sift/internal/mail"
	"github.com/sant0-9/sift/internal/processor"
	"github.com/spf13/cobra"
)

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Process the demo inbox and print the results",
	Long: `Run the full pipeline over the demo inbox without the UI:
categorize every email, extract action items from To-Do emails, and
print summaries and category counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		proc := processor.New(engine.New(), openStore())
		emails := mail.NewInbox().All()

		proc.ProcessBatch(emails)

		for _, e := range emails {
			fmt.Printf("[%d] %-10s %s\n", e.ID, e.Category, e.Subject)
			fmt.Printf("    From: %s\n", e.Sender)
			fmt.Printf("    %s\n", e.Summary)
			for i, task := range e.Actions {
				fmt.Printf("    %d. %s [%s]", i+1, task.Task, task.Priority)
				if task.Deadline != "" {
					fmt.Printf(" due %s", task.Deadline)
				}
				fmt.Println()
			}
			fmt.Println()
		}

		stats := proc.Stats(emails)
		fmt.Printf("Total: %d  Important: %d  To-Do: %d  Newsletter: %d  Spam: %d\n",
			stats.Total, stats.Important, stats.ToDo, stats.Newsletter, stats.Spam)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(triageCmd)
}
