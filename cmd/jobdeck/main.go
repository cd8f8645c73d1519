// Package main provides the entry point for the jobdeck dashboard and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobdeck",
	Short: "Job application tracking dashboard",
	Long:  "Jobdeck serves a web dashboard over the job-tracker backend API: saved jobs, outreach emails, and aggregated multi-board job search.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
