package objects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/objects"
)

func TestEncodeTreeEntry(t *testing.T) {
	t.Parallel()

	blobID, err := objects.NewOidFromHex("3b18e512dba79e4c8300dd08aeb37f8e728b8dad")
	require.NoError(t, err)

	line, err := objects.EncodeTreeEntry(objects.TreeEntry{
		Mode:     objects.ModeBlob,
		Type:     objects.TypeBlob,
		ID:       blobID,
		Filename: "hello.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "100644 blob 3b18e512dba79e4c8300dd08aeb37f8e728b8dad hello.txt\n", string(line))

	// S2: the tree payload is exactly this single entry line, 63 bytes long.
	tree := objects.NewTree(line)
	assert.Equal(t, 63, len(tree.Bytes()))
}

func TestEncodeTreeEntryRejectsInvalidFilename(t *testing.T) {
	t.Parallel()

	for _, name := range []string{".", "..", "a/b"} {
		_, err := objects.EncodeTreeEntry(objects.TreeEntry{
			Mode:     objects.ModeBlob,
			Type:     objects.TypeBlob,
			Filename: name,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, objects.ErrInvariantViolation)
	}
}

func TestDecodeTreeEntries(t *testing.T) {
	t.Parallel()

	blobID, err := objects.NewOidFromHex("3b18e512dba79e4c8300dd08aeb37f8e728b8dad")
	require.NoError(t, err)
	line, err := objects.EncodeTreeEntry(objects.TreeEntry{
		Mode:     objects.ModeBlob,
		Type:     objects.TypeBlob,
		ID:       blobID,
		Filename: "hello.txt",
	})
	require.NoError(t, err)

	entries, err := objects.DecodeTreeEntries(line)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello.txt", entries[0].Filename)
	assert.Equal(t, blobID, entries[0].ID)
	assert.Equal(t, objects.ModeBlob, entries[0].Mode)
}

func TestDecodeTreeEntriesRejectsTruncatedLine(t *testing.T) {
	t.Parallel()

	_, err := objects.DecodeTreeEntries([]byte("100644 blob notrailingnewline"))
	require.Error(t, err)
	assert.ErrorIs(t, err, objects.ErrMalformedObject)
}
