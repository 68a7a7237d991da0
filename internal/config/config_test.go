package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmiyake/picking-list-generator/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// The default path is allowed to be absent; the run proceeds on built-in
// defaults.
func TestLoadDefaultPathMissing(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := config.Load(config.DefaultPath)
	require.NoError(t, err)

	assert.Equal(t, "data/master/cm_master.xlsx", cfg.Master.CM.File)
	assert.Equal(t, "CM Master", cfg.Master.CM.Sheet)
	assert.Equal(t, "Part Number", cfg.Master.CM.Columns.PartNumber)
	assert.Equal(t, "data/master/a_parts_master.xlsx", cfg.Master.AParts.File)
	assert.Equal(t, "Qty Per Box", cfg.Master.AParts.Columns.QuantityPerBox)
	assert.Equal(t, "data/output", cfg.OutputDir)
	assert.Equal(t, "result", cfg.OutputSuffix)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

// An explicitly given path must exist.
func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
master:
  cm:
    file: /srv/master/cm.xlsx
output_dir: /srv/out
logging:
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/master/cm.xlsx", cfg.Master.CM.File)
	assert.Equal(t, "CM Master", cfg.Master.CM.Sheet, "unset option defaulted")
	assert.Equal(t, "/srv/out", cfg.OutputDir)
	assert.Equal(t, "result", cfg.OutputSuffix)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadColumnOverrides(t *testing.T) {
	path := writeConfig(t, `
master:
  a_parts:
    columns:
      part_number: "品番"
      quantity_per_box: "入数"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "品番", cfg.Master.AParts.Columns.PartNumber)
	assert.Equal(t, "入数", cfg.Master.AParts.Columns.QuantityPerBox)
	assert.Equal(t, "Part Name", cfg.Master.AParts.Columns.PartName)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "output_dir: [broken")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "logging:\n  level: chatty\n"},
		{"bad format", "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}
