// Package config resolves the application's filesystem paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "moneycheck"

// Dir returns the moneycheck config directory, creating it if needed.
// The identity record and the optional config file live here.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}

	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return dir, nil
}

// ExpandPath resolves a user-supplied path: a leading ~ expands to the
// home directory and $VAR references are substituted.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
