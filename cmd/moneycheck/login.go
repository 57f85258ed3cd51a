package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/LEEJEHEON/moneycheck/internal/common"
	"github.com/LEEJEHEON/moneycheck/internal/session"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the ledger server",
		Long: `Log in to the ledger server and save the session locally.

The session cookie is stored under the config directory and reused by the
dashboard until you log out or the server expires it.`,
		RunE: runLogin,
	}

	cmd.Flags().String("username", "", "username (prompted when omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	username, _ := cmd.Flags().GetString("username")
	if username == "" {
		var err error
		if username, err = promptLine("Username"); err != nil {
			return err
		}
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.Login(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("login failed: %s", common.UserMessage(err))
	}

	store, err := identityStore()
	if err != nil {
		return err
	}
	if err := store.Save(session.Identity{
		Username:      result.Username,
		SessionCookie: result.SessionCookie,
		UserID:        result.UserID,
		IsAdmin:       result.IsAdmin,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	role := "user"
	if result.IsAdmin {
		role = "admin"
	}
	slog.Info("Logged in", "username", result.Username, "role", role)
	fmt.Printf("Logged in as %s. Run \"moneycheck\" to open the dashboard.\n", result.Username)

	return nil
}
