package objects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/objects"
)

func TestNewOidFromContent(t *testing.T) {
	t.Parallel()

	// S1: SHA-1 of "blob 3\0hi\n"
	id := objects.NewOidFromContent(objects.TypeBlob, []byte("hi\n"))
	assert.Equal(t, "45b983be36b73c0788dc9cbcb76cbb80fc7bb057", id.String())
}

func TestNewOidFromHex(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		id, err := objects.NewOidFromHex("3b18e512dba79e4c8300dd08aeb37f8e728b8dad")
		require.NoError(t, err)
		assert.Equal(t, "3b18e512dba79e4c8300dd08aeb37f8e728b8dad", id.String())
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		_, err := objects.NewOidFromHex("abcd")
		require.Error(t, err)
	})

	t.Run("not hex", func(t *testing.T) {
		t.Parallel()
		_, err := objects.NewOidFromHex("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
		require.Error(t, err)
	})
}

func TestIsHexOid(t *testing.T) {
	t.Parallel()

	assert.True(t, objects.IsHexOid("3b18e512dba79e4c8300dd08aeb37f8e728b8dad"))
	assert.False(t, objects.IsHexOid("not-an-oid"))
	assert.False(t, objects.IsHexOid(""))
}

func TestOidIsZero(t *testing.T) {
	t.Parallel()

	var o objects.Oid
	assert.True(t, o.IsZero())

	id, err := objects.NewOidFromHex("3b18e512dba79e4c8300dd08aeb37f8e728b8dad")
	require.NoError(t, err)
	assert.False(t, id.IsZero())
}
