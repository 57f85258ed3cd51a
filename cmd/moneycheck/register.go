package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LEEJEHEON/moneycheck/internal/common"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account on the ledger server",
		RunE:  runRegister,
	}
}

func runRegister(cmd *cobra.Command, _ []string) error {
	username, err := promptLine("Username")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	email, err := promptLine("Email")
	if err != nil {
		return err
	}

	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Register(cmd.Context(), username, email, password); err != nil {
		return fmt.Errorf("registration failed: %s", common.UserMessage(err))
	}

	fmt.Printf("Account %s created. Run \"moneycheck login\" to sign in.\n", username)
	return nil
}
