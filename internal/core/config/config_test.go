package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/tmp/data")

	require.NoError(t, err)
	assert.Equal(t, []string{"Client Work", "Photo Editing", "Routine"}, cfg.DefaultGenres)
	assert.Equal(t, "Routine", cfg.RoutineGenre)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
default_genres:
  - Work
  - Chores
routine_genre: Chores
tui:
  theme: gruvbox
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, "/tmp/data")

	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Chores"}, cfg.DefaultGenres)
	assert.Equal(t, "Chores", cfg.RoutineGenre)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("routine_genre: Daily\n"), 0o644))

	cfg, err := Load(path, dir)

	require.NoError(t, err)
	assert.Equal(t, "Daily", cfg.RoutineGenre)
	assert.Equal(t, []string{"Client Work", "Photo Editing", "Routine"}, cfg.DefaultGenres)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_genres: [unclosed"), 0o644))

	_, err := Load(path, dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "solarized-disco" }, true},
		{"empty default genre", func(c *Config) { c.DefaultGenres = []string{"Work", ""} }, true},
		{"duplicate default genre", func(c *Config) { c.DefaultGenres = []string{"Work", "Work"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_EmptyRoutineGenre(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoutineGenre = ""
	// applyDefaults is what normally backfills this; Validate alone rejects it.
	assert.Error(t, cfg.Validate())
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := DefaultConfig()
	cfg.DataDir = file

	assert.Error(t, cfg.ValidateDeep())
}
