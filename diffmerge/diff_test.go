package diffmerge_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/backend/fsbackend"
	"github.com/augustgit/egit/diffmerge"
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

func fakeDiffFn(labelA string, a []byte, labelB string, b []byte) ([]byte, error) {
	return []byte("--- " + labelA + "\n+++ " + labelB + "\n-" + string(a) + "\n+" + string(b) + "\n"), nil
}

func fakeThreeWayFn(headLabel string, head []byte, otherLabel string, other []byte, baseLabel string, base []byte) ([]byte, bool, error) {
	if string(head) == string(other) {
		return head, false, nil
	}
	if string(head) == string(base) {
		return other, false, nil
	}
	if string(other) == string(base) {
		return head, false, nil
	}
	markers := "<<<<<<< " + headLabel + "\n" + string(head) + "=======\n" + string(other) + ">>>>>>> " + otherLabel + "\n"
	return []byte(markers), true, nil
}

func TestCompareTrees(t *testing.T) {
	t.Parallel()

	id1, err := objects.NewOidFromHex("3b18e512dba79e4c8300dd08aeb37f8e728b8dad")
	require.NoError(t, err)

	a := map[string]objects.Oid{"hello.txt": id1}
	b := map[string]objects.Oid{"other.txt": id1}

	entries := diffmerge.CompareTrees(a, b)
	require.Len(t, entries, 2)
	assert.Equal(t, "hello.txt", entries[0].Path)
	assert.True(t, entries[0].Oids[1].IsZero())
	assert.Equal(t, "other.txt", entries[1].Path)
	assert.True(t, entries[1].Oids[0].IsZero())
}

func TestIterChangedFiles(t *testing.T) {
	t.Parallel()

	id1, err := objects.NewOidFromHex("3b18e512dba79e4c8300dd08aeb37f8e728b8dad")
	require.NoError(t, err)
	id2, err := objects.NewOidFromHex("e3c3e3e1b5b5d2f5ad5f1dcd7c6f9b4d5f3a3c2a")
	require.NoError(t, err)

	old := map[string]objects.Oid{"a.txt": id1, "b.txt": id1}
	newTree := map[string]objects.Oid{"a.txt": id2, "c.txt": id1}

	changes := diffmerge.IterChangedFiles(old, newTree)
	byPath := map[string]diffmerge.ChangeAction{}
	for _, c := range changes {
		byPath[c.Path] = c.Action
	}
	assert.Equal(t, diffmerge.ActionModified, byPath["a.txt"])
	assert.Equal(t, diffmerge.ActionDeleted, byPath["b.txt"])
	assert.Equal(t, diffmerge.ActionCreated, byPath["c.txt"])
}

func TestDiffFiles(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	blobA := objects.NewBlob([]byte("hi\n"))
	blobB := objects.NewBlob([]byte("bye\n"))
	require.NoError(t, store.WriteObject(blobA))
	require.NoError(t, store.WriteObject(blobB))

	engine := diffmerge.New(store, fakeDiffFn, fakeThreeWayFn)
	out, err := engine.DiffFiles(blobA.ID(), blobB.ID(), "hello.txt")
	require.NoError(t, err)
	assert.Contains(t, string(out), "-hi")
	assert.Contains(t, string(out), "+bye")
}
