package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.SynthOptions()
	assert.Equal(t, "Builder", opts.Suffix)
	assert.Equal(t, "New", opts.ConstructorPrefix)
	assert.Equal(t, "Build", opts.BuildMethod)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty suffix", func(c *Config) { c.Suffix = "" }, "suffix"},
		{"suffix with dash", func(c *Config) { c.Suffix = "-B" }, "suffix"},
		{"empty prefix", func(c *Config) { c.ConstructorPrefix = "" }, "constructor_prefix"},
		{"keyword build method", func(c *Config) { c.BuildMethod = "func" }, "build_method"},
		{"tag with colon", func(c *Config) { c.Tag = "a:b" }, "tag"},
		{"accessor key with equals", func(c *Config) { c.AccessorKey = "a=b" }, "accessor_key"},
		{"directive with space", func(c *Config) { c.Directive = "a b" }, "directive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewViper_NoConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNewViper_ConfigFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := "suffix: Draft\naccessor_key: add\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".buildergen.yaml"), []byte(content), 0o644))

	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "Draft", cfg.Suffix)
	assert.Equal(t, "add", cfg.AccessorKey)
	assert.Equal(t, "builder", cfg.Tag)
}

func TestNewViper_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("build_method: Finish\n"), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "Finish", cfg.BuildMethod)
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestNewViper_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BUILDERGEN_SUFFIX", "Maker")

	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "Maker", cfg.Suffix)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BUILDERGEN_BUILD_METHOD", "not valid")

	v, err := NewViper("")
	require.NoError(t, err)

	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build_method")
}
