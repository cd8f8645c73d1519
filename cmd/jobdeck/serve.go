package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdeck/internal/web"
)

var (
	servePort   int
	serveAPIURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long:  `Start an HTTP server that renders the jobdeck dashboard pages over the backend API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3000, "Port to listen on")
	serveCmd.Flags().StringVar(&serveAPIURL, "api-url", "", "Backend API base URL (defaults to JOBDECK_API_URL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	store, err := openSession()
	if err != nil {
		return err
	}

	client := newClient(serveAPIURL, store)

	srv, err := web.New(web.Config{Port: servePort}, client, store)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
