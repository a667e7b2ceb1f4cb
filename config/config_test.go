package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg, err := config.Load(fs, "/repo")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.egit", cfg.DotEgitPath)
	assert.Equal(t, "master", cfg.DefaultBranch)
	assert.Equal(t, ".egitignore", cfg.IgnoreFile)
}

func TestLoadReadsConfigFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/.egit/config", []byte("[core]\ndefaultBranch = trunk\nignoreFile = .ignore\n"), 0o644))

	cfg, err := config.Load(fs, "/repo")
	require.NoError(t, err)
	assert.Equal(t, "trunk", cfg.DefaultBranch)
	assert.Equal(t, ".ignore", cfg.IgnoreFile)
}
