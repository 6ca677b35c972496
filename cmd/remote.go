package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docsort/internal/remote"
)

var remoteDry bool

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Move bucket objects into category folders",
	Long: `Remote lists the top-level objects of the configured bucket, classifies each
by name, and re-parents it into a folder named after its category. Folders are
created on demand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		cfg := appInstance.Config.Remote
		m, err := remote.New(remote.Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			UseSSL:    cfg.UseSSL,
		}, appInstance.Engine, appInstance.Recorder())
		if err != nil {
			return fmt.Errorf("failed to initialize remote mover: %w", err)
		}

		results, err := m.Run(cmd.Context(), appInstance.Engine.Categories(), remoteDry)
		if err != nil {
			return err
		}

		for _, r := range results {
			if remoteDry {
				fmt.Printf("would move %s -> %s\n", r.Name, r.Category)
			} else {
				fmt.Printf("moved %s -> %s\n", color.CyanString(r.Name), color.GreenString(r.Category))
			}
		}
		fmt.Printf("%d object(s) processed\n", len(results))
		return nil
	},
}

func init() {
	remoteCmd.Flags().BoolVar(&remoteDry, "dry-run", false, "report planned moves without moving anything")
	rootCmd.AddCommand(remoteCmd)
}
