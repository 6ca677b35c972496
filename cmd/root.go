package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"docsort/internal/app"
	"docsort/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docsort",
	Short: "Docsort CLI",
	Long: `Docsort classifies documents into topical categories from their name and
content, and files them into category folders locally or in S3-compatible storage.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context
		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance placed there by
// PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check history database connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if appInstance.History == nil {
			return fmt.Errorf("history store is not configured")
		}
		if err := appInstance.History.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("history database ping failed: %w", err)
		}
		fmt.Println("History database connection successful.")
		return nil
	},
}
