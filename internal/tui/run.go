package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEEJEHEON/moneycheck/internal/common"
)

// Run mounts the saved identity and starts the dashboard. Without a
// usable identity it tells the caller to log in instead of starting.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Client == nil || cfg.Guard == nil {
		return common.ErrMissingConfig
	}

	identity, err := cfg.Guard.Mount()
	if err != nil {
		if errors.Is(err, common.ErrNoIdentity) {
			return fmt.Errorf("not logged in, run \"moneycheck login\" first: %w", err)
		}
		return fmt.Errorf("loading identity: %w", err)
	}
	cfg.Client.SetSessionCookie(identity.SessionCookie)

	program := tea.NewProgram(newModel(cfg, *identity), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}

	if m, ok := final.(Model); ok && m.sessionExpired {
		fmt.Println(common.UserMessage(common.ErrUnauthorized))
	}
	return nil
}
