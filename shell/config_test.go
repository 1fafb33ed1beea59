package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hqdem/gatesynth/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileIsZeroValue(t *testing.T) {
	cfg, err := shell.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.PassAliases)
}

func TestLoadConfigParsesAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gatesynth.yml")
	content := "pass_aliases:\n  quick: resyn\ndefault_objective: delay\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := shell.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resyn", cfg.ResolvePass("quick"))
	assert.Equal(t, "delay", cfg.DefaultObjective)
	assert.Equal(t, "unmapped", cfg.ResolvePass("unmapped"))
}
