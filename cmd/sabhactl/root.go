package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sabha/internal/authn"
	"sabha/internal/backend"
	"sabha/internal/platform/config"
)

var (
	flagBackendURL string
	flagAuthURL    string
	flagAnonKey    string
)

// rootCmd is the admin console for the community portal. Credentials are
// exchanged directly with the auth provider; everything else talks to the
// community backend with the saved access token.
var rootCmd = &cobra.Command{
	Use:   "sabhactl",
	Short: "Admin console for the community membership portal",
	Long: `sabhactl manages the community membership roster from the terminal.

Sign in first, then use the interactive roster console:
  sabhactl login
  sabhactl roster`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackendURL, "backend-url", "", "community backend base URL (default $BACKEND_URL)")
	rootCmd.PersistentFlags().StringVar(&flagAuthURL, "auth-url", "", "auth provider base URL (default $AUTH_URL)")
	rootCmd.PersistentFlags().StringVar(&flagAnonKey, "auth-anon-key", "", "auth provider anon key (default $AUTH_ANON_KEY)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(announcementsCmd)
	rootCmd.AddCommand(dashboardCmd)
}

func backendClient() *backend.Client {
	cfg := config.FromEnv()
	url := flagBackendURL
	if url == "" {
		url = cfg.BackendURL
	}
	return backend.New(url)
}

func authClient() *authn.Client {
	cfg := config.FromEnv()
	url, key := flagAuthURL, flagAnonKey
	if url == "" {
		url = cfg.AuthURL
	}
	if key == "" {
		key = cfg.AuthAnonKey
	}
	return authn.New(url, key)
}
