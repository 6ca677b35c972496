package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docsort/internal/mover"
)

var (
	organizeBase string
	organizeDry  bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Move files in a folder into category subfolders",
	Long: `Organize classifies every top-level file in the base folder and moves it
into the subfolder named after its category. Hidden files and existing
category folders are left alone; name collisions get a _dupN suffix.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		base := organizeBase
		if base == "" {
			base = appInstance.Config.Organize.Base
		}
		if base == "" {
			return fmt.Errorf("no base folder configured; pass --base or set organize.base")
		}
		if _, err := os.Stat(base); err != nil {
			return fmt.Errorf("base folder %s: %w", base, err)
		}

		m := mover.NewLocal(appInstance.Engine, appInstance.Recorder())
		results, err := m.Run(cmd.Context(), base, appInstance.Engine.Categories(), organizeDry)
		if err != nil {
			return err
		}

		for _, r := range results {
			if organizeDry {
				fmt.Printf("would move %s -> %s\n", r.Name, r.Category)
			} else {
				fmt.Printf("moved %s -> %s\n", color.CyanString(r.Name), color.GreenString(r.Category))
			}
		}
		fmt.Printf("%d file(s) processed\n", len(results))
		return nil
	},
}

func init() {
	organizeCmd.Flags().StringVar(&organizeBase, "base", "", "folder to organize (default from config)")
	organizeCmd.Flags().BoolVar(&organizeDry, "dry-run", false, "report planned moves without moving anything")
	rootCmd.AddCommand(organizeCmd)
}
