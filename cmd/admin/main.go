// Package main is the terminal client for the occurrence administration
// backend: authentication, listing and filtering, registration, lifecycle
// transitions, the audit log and the dashboard summaries.
package main

import (
	"fmt"
	"os"

	"github.com/sosdefesa/admin/cmd/admin/commands"
	"github.com/sosdefesa/admin/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := commands.NewApp(cfg, logger)

	rootCmd := &cobra.Command{
		Use:   "admin",
		Short: "Civil defense occurrence administration",
		Long: `Civil defense occurrence administration.

Terminal client for the occurrence backend. Provides commands for
authentication, occurrence management, the audit log and the dashboard.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				fmt.Printf("Error showing help: %v\n", err)
			}
		},
	}

	for _, c := range commands.LoginCommands(app) {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(commands.DashboardCommand(app))
	rootCmd.AddCommand(commands.OccurrenceCommands(app))
	rootCmd.AddCommand(commands.LogsCommand(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
