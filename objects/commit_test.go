package objects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/objects"
)

func TestEncodeDecodeCommitRoundTrip(t *testing.T) {
	t.Parallel()

	treeID, err := objects.NewOidFromHex("9e5bb7b2daadf0a0edd1e8ede1f68559d88c1e44")
	require.NoError(t, err)
	parentID, err := objects.NewOidFromHex("3b18e512dba79e4c8300dd08aeb37f8e728b8dad")
	require.NoError(t, err)

	c := objects.Commit{
		Tree:    treeID,
		Parents: []objects.Oid{parentID},
		Message: "second commit",
	}
	payload := objects.EncodeCommit(c)

	decoded, err := objects.DecodeCommit(payload)
	require.NoError(t, err)
	assert.Equal(t, c.Tree, decoded.Tree)
	assert.Equal(t, c.Parents, decoded.Parents)
	assert.Equal(t, "second commit\n", decoded.Message)
}

func TestEncodeCommitRootCommit(t *testing.T) {
	t.Parallel()

	treeID, err := objects.NewOidFromHex("9e5bb7b2daadf0a0edd1e8ede1f68559d88c1e44")
	require.NoError(t, err)

	payload := objects.EncodeCommit(objects.Commit{Tree: treeID, Message: "first"})
	// S3: no parent lines, blank line, message.
	assert.Equal(t, "tree 9e5bb7b2daadf0a0edd1e8ede1f68559d88c1e44\n\nfirst\n", string(payload))
}

func TestDecodeCommitStripsStrayNulls(t *testing.T) {
	t.Parallel()

	payload := []byte("tree 9e5bb7b2daadf0a0edd1e8ede1f68559d88c1e44\x00\n\nmessage\n")
	c, err := objects.DecodeCommit(payload)
	require.NoError(t, err)
	assert.Equal(t, "9e5bb7b2daadf0a0edd1e8ede1f68559d88c1e44", c.Tree.String())
}

func TestDecodeCommitRejectsMissingTree(t *testing.T) {
	t.Parallel()

	_, err := objects.DecodeCommit([]byte("\nmessage\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, objects.ErrMalformedObject)
}

func TestDecodeCommitRejectsUnknownHeaderKey(t *testing.T) {
	t.Parallel()

	_, err := objects.DecodeCommit([]byte("tree 9e5bb7b2daadf0a0edd1e8ede1f68559d88c1e44\nbogus x\n\nmsg\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, objects.ErrMalformedObject)
}
