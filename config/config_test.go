package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esimov/m3/color"
)

func TestConfig_Default(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(cfg.Validate())
	seed, err := cfg.Seed()
	assert.NoError(err)
	assert.Equal(color.ARGB(0xff6750a4), seed)
	mode, err := cfg.Mode()
	assert.NoError(err)
	assert.Equal(color.Light, mode)
}

func TestConfig_ParseYAML(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse([]byte(`
theme:
  seed: "#00ff00"
  mode: dark
text_field:
  max_len: 32
log:
  level: debug
  human: true
`), ".yaml")
	require.NoError(t, err)
	assert.Equal("#00ff00", cfg.Theme.Seed)
	assert.Equal("dark", cfg.Theme.Mode)
	assert.Equal(32, cfg.TextField.MaxLen)
	// Unset fields keep their defaults.
	assert.Equal(float32(16), cfg.TextField.FontSize)
	assert.Equal("debug", cfg.Log.Level)
	assert.True(cfg.Log.Human)
}

func TestConfig_ParseTOML(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse([]byte(`
[theme]
seed = "0xff336699"
mode = "light"

[text_field]
font_size = 20.0
`), ".toml")
	require.NoError(t, err)
	seed, err := cfg.Seed()
	assert.NoError(err)
	assert.Equal(color.ARGB(0xff336699), seed)
	assert.Equal(float32(20), cfg.TextField.FontSize)
	assert.Equal(10, cfg.TextField.MaxLen)
}

func TestConfig_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse([]byte("theme:\n  seed: \"not a color\"\n"), ".yml")
	assert.ErrorContains(err, "argb")

	_, err = Parse([]byte("theme:\n  mode: sepia\n"), ".yml")
	assert.ErrorContains(err, "oneof")

	_, err = Parse([]byte("[text_field]\nmax_len = -1\n"), ".toml")
	assert.ErrorContains(err, "gte")

	_, err = Parse([]byte("[text_field]\nfont_size = 0.0\n"), ".toml")
	assert.ErrorContains(err, "gt")

	_, err = Parse([]byte("[log]\nlevel = \"loud\"\n"), ".toml")
	assert.Error(err)

	_, err = Parse([]byte("{}"), ".json")
	assert.ErrorIs(err, ErrFormat)

	_, err = Parse([]byte("theme: [unclosed"), ".yaml")
	assert.ErrorContains(err, "parsing yaml")
}

func TestConfig_Load(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "theme.TOML")
	require.NoError(t, os.WriteFile(path, []byte("[theme]\nmode = \"dark\"\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal("dark", cfg.Theme.Mode)
	assert.Equal(DefaultSeed, cfg.Theme.Seed)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
