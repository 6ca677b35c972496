package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded moves",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		if appInstance.History == nil {
			return fmt.Errorf("history store is not configured")
		}

		moves, err := appInstance.History.List(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}
		if len(moves) == 0 {
			fmt.Println("No moves recorded.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"When", "Name", "Category", "Backend", "Destination"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, m := range moves {
			table.Append([]string{
				m.MovedAt.Format(time.RFC3339),
				m.Name,
				m.Category,
				m.Backend,
				m.Destination,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
