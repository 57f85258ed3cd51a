package tui

import (
	"github.com/shopspring/decimal"

	"github.com/LEEJEHEON/moneycheck/internal/api"
	"github.com/LEEJEHEON/moneycheck/internal/session"
	"github.com/LEEJEHEON/moneycheck/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Client        *api.Client
	Guard         *session.Guard
	Theme         themes.Theme
	MonthlyBudget decimal.Decimal
	Width         int
	Height        int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  100,
		Height: 30,
	}
}

// WithClient sets the API client.
func WithClient(client *api.Client) Option {
	return func(c *Config) {
		c.Client = client
	}
}

// WithGuard sets the session guard.
func WithGuard(guard *session.Guard) Option {
	return func(c *Config) {
		c.Guard = guard
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithMonthlyBudget sets the configured monthly spending budget used by the
// dashboard and budget views.
func WithMonthlyBudget(budget decimal.Decimal) Option {
	return func(c *Config) {
		c.MonthlyBudget = budget
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
