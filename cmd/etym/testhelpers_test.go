package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// executeRootCommand runs a fresh root command with args and returns what it wrote to stdout.
// The global configFile and color switch are restored when the test ends.
func executeRootCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	oldConfigFile := configFile
	oldNoColor := color.NoColor
	t.Cleanup(func() {
		configFile = oldConfigFile
		color.NoColor = oldNoColor
	})
	t.Setenv("ETYM_BASE_URL", "")
	t.Setenv("ETYM_WORDS_FILE", "")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
