// Package cmd contains the CLI entrypoints of the e-SIC backend.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "esic-backend",
	Short: "Citizen information request (e-SIC) backend",
	Long: `Backend service for a citizen information request portal (e-SIC).

Citizens submit access-to-information requests and track them by protocol;
operators list, answer, and close requests through authenticated admin
endpoints. Configuration comes from environment variables; a .env file in
the working directory is loaded when present.`,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
