package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and save the session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var email string
		if len(args) == 1 {
			email = args[0]
		} else {
			fmt.Print("Email: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}

		fmt.Print("Password: ")
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		provSess, err := authClient().SignIn(ctx, email, string(pw))
		if err != nil {
			return err
		}

		// Role is advisory for the CLI; the backend enforces it again on
		// every admin call.
		role, err := backendClient().CheckRole(ctx, provSess.AccessToken)
		if err != nil {
			role = ""
		}

		if err := saveSession(storedSession{
			AccessToken:  provSess.AccessToken,
			RefreshToken: provSess.RefreshToken,
			Email:        provSess.User.Email,
			Role:         role,
			SavedAt:      time.Now(),
		}); err != nil {
			return err
		}

		color.Green("Logged in as %s", provSess.User.Email)
		if !strings.EqualFold(role, "admin") {
			color.Yellow("Note: this account has no admin role; roster commands will be rejected by the backend.")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the saved session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err == nil {
			// Best effort: the local session is cleared even if the
			// provider call fails.
			if err := authClient().SignOut(cmd.Context(), sess.AccessToken); err != nil {
				color.Yellow("provider sign-out failed: %v", err)
			}
		}
		if err := clearSession(); err != nil {
			return err
		}
		color.Green("Logged out.")
		return nil
	},
}
