package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LEEJEHEON/moneycheck/internal/api"
	"github.com/LEEJEHEON/moneycheck/internal/common"
	"github.com/LEEJEHEON/moneycheck/internal/config"
	"github.com/LEEJEHEON/moneycheck/internal/session"
	"github.com/LEEJEHEON/moneycheck/internal/tui"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "moneycheck",
		Short: "Household ledger client",
		Long: `moneycheck: a terminal client for the moneycheck ledger server.

Track income and expenses, manage categories, and review monthly reports
without leaving the terminal. Administrators additionally manage user
accounts and the server itself.`,
		PersistentPreRunE: initConfig,
		RunE:              runDashboard,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/moneycheck/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("server", "", "ledger server URL (default: http://localhost:8000)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))

	// Add commands
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/moneycheck", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MONEYCHECK")
	viper.AutomaticEnv()

	viper.SetDefault("server.url", "http://localhost:8000")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := common.SetupLogger(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

// newClient builds the REST client for the configured server.
func newClient() (*api.Client, error) {
	client, err := api.New(viper.GetString("server.url"))
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// identityStore opens the persisted identity under the config directory.
func identityStore() (*session.Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return session.NewStore(dir), nil
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	store, err := identityStore()
	if err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithClient(client),
		tui.WithGuard(session.NewGuard(store)),
	}
	if raw := viper.GetString("budget.monthly"); raw != "" {
		budget, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid budget.monthly %q: %w", raw, common.ErrInvalidConfig)
		}
		opts = append(opts, tui.WithMonthlyBudget(budget))
	}

	return tui.Run(cmd.Context(), opts...)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("moneycheck version", "version", version)
		},
	}
}
