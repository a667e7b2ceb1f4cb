package historygraph_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/backend/fsbackend"
	"github.com/augustgit/egit/historygraph"
	"github.com/augustgit/egit/objects"
)

func newTestStore(t *testing.T) backend.Backend {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := fsbackend.New(fs, "/repo/.egit")
	require.NoError(t, err)
	require.NoError(t, store.Init("master"))
	return store
}

func writeCommit(t *testing.T, store backend.Backend, msg string, parents ...objects.Oid) objects.Oid {
	t.Helper()
	tree := objects.NewTree([]byte{})
	require.NoError(t, store.WriteObject(tree))
	c := objects.NewCommitObject(objects.Commit{Tree: tree.ID(), Parents: parents, Message: msg})
	require.NoError(t, store.WriteObject(c))
	return c.ID()
}

func TestWalkerVisitsMainlineBeforeMergeBranch(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	root := writeCommit(t, store, "root")
	mainline := writeCommit(t, store, "mainline", root)
	sideA := writeCommit(t, store, "side-a", root)
	merge := writeCommit(t, store, "merge", mainline, sideA)

	got, err := historygraph.Collect(store, []objects.Oid{merge})
	require.NoError(t, err)
	assert.Equal(t, []objects.Oid{merge, mainline, root, sideA}, got)
}

func TestWalkerYieldsEachCommitOnce(t *testing.T) {
	t.Parallel()

	// each commit visited once, even when reachable through multiple parents
	store := newTestStore(t)
	root := writeCommit(t, store, "root")
	a := writeCommit(t, store, "a", root)
	b := writeCommit(t, store, "b", root)
	merge := writeCommit(t, store, "merge", a, b)

	got, err := historygraph.Collect(store, []objects.Oid{merge})
	require.NoError(t, err)

	seen := map[objects.Oid]int{}
	for _, id := range got {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "commit %s visited more than once", id)
	}
}
