package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <path>",
	Short: "Classify a single file into a category",
	Long: `Classify prints the category for the given file. The argument may be a bare
name; content extraction only happens when a readable file sits at the path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		category := appInstance.Engine.Classify(args[0])
		color.New(color.FgGreen, color.Bold).Println(category)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
