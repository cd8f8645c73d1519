package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	loginAPIURL   string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	Long:  `Exchange credentials for a bearer token and persist it to the per-user session file. Subsequent commands and the dashboard reuse the session.`,
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.Flags().StringVar(&loginAPIURL, "api-url", "", "Backend API base URL (defaults to JOBDECK_API_URL)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	store, err := openSession()
	if err != nil {
		return err
	}
	client := newClient(loginAPIURL, store)

	login, err := client.Login(cmd.Context(), loginEmail, loginPassword)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := store.SetToken(login.AccessToken); err != nil {
		return err
	}

	user, err := client.Me(cmd.Context())
	if err != nil {
		return fmt.Errorf("logged in but failed to fetch profile: %w", err)
	}
	if err := store.SetUser(user); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Email)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	store, err := openSession()
	if err != nil {
		return err
	}
	if err := store.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
