package historygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/historygraph"
	"github.com/augustgit/egit/objects"
)

func TestMergeBase(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	root := writeCommit(t, store, "root")
	a := writeCommit(t, store, "a", root)
	b := writeCommit(t, store, "b", root)

	base, err := historygraph.MergeBase(store, a, b)
	require.NoError(t, err)
	assert.Equal(t, root, base)
}

func TestMergeBaseSymmetry(t *testing.T) {
	t.Parallel()

	// merge base is symmetric in the two commits given
	store := newTestStore(t)
	root := writeCommit(t, store, "root")
	a := writeCommit(t, store, "a", root)
	b := writeCommit(t, store, "b", root)

	ab, err := historygraph.MergeBase(store, a, b)
	require.NoError(t, err)
	ba, err := historygraph.MergeBase(store, b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestMergeBaseFastForward(t *testing.T) {
	t.Parallel()

	// when other is a descendant of HEAD, merge_base(HEAD, other) == HEAD.
	store := newTestStore(t)
	root := writeCommit(t, store, "root")
	child := writeCommit(t, store, "child", root)

	base, err := historygraph.MergeBase(store, root, child)
	require.NoError(t, err)
	assert.Equal(t, root, base)
}

func TestMergeBaseDisjointHistoriesReturnsZero(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	a := writeCommit(t, store, "a")
	b := writeCommit(t, store, "b")

	base, err := historygraph.MergeBase(store, a, b)
	require.NoError(t, err)
	assert.True(t, base.IsZero())
}
