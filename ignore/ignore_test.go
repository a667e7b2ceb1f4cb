package ignore_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/ignore"
)

func TestLoadMissingFileYieldsEmptyList(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	l, err := ignore.Load(fs, "/repo/.egitignore")
	require.NoError(t, err)
	assert.False(t, l.IsIgnored("hello.txt"))
}

func TestIsIgnoredByComponent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/.egitignore", []byte("build\nnode_modules\n"), 0o644))

	l, err := ignore.Load(fs, "/repo/.egitignore")
	require.NoError(t, err)

	assert.True(t, l.IsIgnored("build"))
	assert.True(t, l.IsIgnored("build/output.bin"))
	assert.True(t, l.IsIgnored("src/node_modules/left-pad/index.js"))
	assert.False(t, l.IsIgnored("src/main.go"))
}

func TestEgitDirectoryIsAlwaysIgnored(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	l, err := ignore.Load(fs, "/repo/.egitignore")
	require.NoError(t, err)

	assert.True(t, l.IsIgnored(".egit/objects/ab/cdef"))
}
