package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"RecipeFile", cfg.RecipeFile, "recipes.json"},
		{"MinMultiplier", cfg.MinMultiplier, 0.5},
		{"MaxMultiplier", cfg.MaxMultiplier, 10.0},
		{"MultiplierStep", cfg.MultiplierStep, 0.5},
		{"LogFile", cfg.LogFile, ""},
		{"WebAddr", cfg.WebAddr, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("RECIPEVIEW_RECIPE_FILE", "/tmp/cookbook.yaml")
	t.Setenv("RECIPEVIEW_MAX_MULTIPLIER", "4")

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, Init(""))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cookbook.yaml", cfg.RecipeFile)
	assert.Equal(t, 4.0, cfg.MaxMultiplier)
}

func TestInit_ConfigFile(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "recipeview.yaml")
	content := "recipe_file: cookbook.toml\nmin_multiplier: 1\nmax_multiplier: 6\nmultiplier_step: 0.25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, Init(path))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cookbook.toml", cfg.RecipeFile)
	assert.Equal(t, 1.0, cfg.MinMultiplier)
	assert.Equal(t, 6.0, cfg.MaxMultiplier)
	assert.Equal(t, 0.25, cfg.MultiplierStep)
}

func TestInit_ExplicitMissingFile(t *testing.T) {
	resetViper(t)
	err := Init(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInit_NoConfigIsFine(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	assert.NoError(t, Init(""))
}

func TestValidate(t *testing.T) {
	valid := Config{RecipeFile: "r.json", MinMultiplier: 0.5, MaxMultiplier: 10, MultiplierStep: 0.5}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min", func(c *Config) { c.MinMultiplier = 0 }},
		{"max below min", func(c *Config) { c.MaxMultiplier = 0.25 }},
		{"zero step", func(c *Config) { c.MultiplierStep = 0 }},
		{"empty file", func(c *Config) { c.RecipeFile = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
