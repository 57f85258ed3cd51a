package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("LEDGER_EXPORT_DIR", "/srv/exports")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde alone", in: "~", want: home},
		{name: "tilde prefix", in: "~/exports", want: filepath.Join(home, "exports")},
		{name: "env var", in: "$LEDGER_EXPORT_DIR/out.csv", want: "/srv/exports/out.csv"},
		{name: "plain path untouched", in: "out.csv", want: "out.csv"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := Dir()
	require.NoError(t, err)

	assert.Equal(t, appDirName, filepath.Base(dir))
	assert.DirExists(t, dir)
}
