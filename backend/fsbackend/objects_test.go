package fsbackend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augustgit/egit/objects"
)

func TestWriteObjectAndObject(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	require.NoError(t, b.Init("master"))

	blob := objects.NewBlob([]byte("hi\n"))
	require.NoError(t, b.WriteObject(blob))

	has, err := b.HasObject(blob.ID())
	require.NoError(t, err)
	assert.True(t, has)

	got, err := b.Object(blob.ID())
	require.NoError(t, err)
	assert.Equal(t, objects.TypeBlob, got.Type())
	assert.Equal(t, []byte("hi\n"), got.Bytes())
}

func TestWriteObjectIsIdempotent(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	require.NoError(t, b.Init("master"))

	blob := objects.NewBlob([]byte("hi\n"))
	require.NoError(t, b.WriteObject(blob))
	require.NoError(t, b.WriteObject(blob))
}

func TestObjectNotFound(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	require.NoError(t, b.Init("master"))

	var missing objects.Oid
	_, err := b.Object(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, objects.ErrNotFound)

	has, err := b.HasObject(missing)
	require.NoError(t, err)
	assert.False(t, has)
}
