package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/LEEJEHEON/moneycheck/internal/common"
	"github.com/LEEJEHEON/moneycheck/internal/config"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to a CSV file",
		Long: `Export the full transaction list to a CSV file.

Requires a saved session; run "moneycheck login" first.`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "transactions.csv", "output file path")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	store, err := identityStore()
	if err != nil {
		return err
	}
	identity, err := store.Load()
	if err != nil {
		return fmt.Errorf("not logged in, run \"moneycheck login\" first: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	client.SetSessionCookie(identity.SessionCookie)

	transactions, err := client.ListTransactions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %s", common.UserMessage(err))
	}

	output, _ := cmd.Flags().GetString("output")
	output = config.ExpandPath(output)

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	header := []string{"id", "date", "type", "category", "amount", "description", "memo"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bar := progressbar.NewOptions(len(transactions),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Exporting transactions..."),
	)

	for _, tx := range transactions {
		record := []string{
			strconv.Itoa(tx.ID),
			tx.TransactionDate.String(),
			string(tx.Type),
			tx.Category.Name,
			tx.Amount.StringFixed(2),
			tx.Description,
			tx.Memo,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		_ = bar.Add(1)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	fmt.Printf("\nExported %d transactions to %s\n", len(transactions), output)
	return nil
}
