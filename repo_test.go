package egit_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	egit "github.com/augustgit/egit"
	"github.com/augustgit/egit/backend"
)

func TestInitCommitLog(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("hi\n"), 0o644))

	repo, err := egit.Init(fs, "/repo")
	require.NoError(t, err)

	oid, err := repo.Commit("initial commit")
	require.NoError(t, err)
	assert.False(t, oid.IsZero())

	c, err := repo.GetCommit(oid)
	require.NoError(t, err)
	assert.Empty(t, c.Parents)
	assert.Equal(t, "initial commit\n", c.Message)

	head, err := repo.GetOid(backend.HeadRef)
	require.NoError(t, err)
	assert.Equal(t, oid, head)

	branch, onBranch, err := repo.CurrentBranch()
	require.NoError(t, err)
	assert.True(t, onBranch)
	assert.Equal(t, "master", branch)

	entries, err := repo.Log(oid)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, oid, entries[0].Oid)
}

func TestCheckoutDetachesHead(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("hi\n"), 0o644))

	repo, err := egit.Init(fs, "/repo")
	require.NoError(t, err)
	first, err := repo.Commit("first")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("bye\n"), 0o644))
	_, err = repo.Commit("second")
	require.NoError(t, err)

	require.NoError(t, repo.Checkout(first.String()))
	_, onBranch, err := repo.CurrentBranch()
	require.NoError(t, err)
	assert.False(t, onBranch)

	content, err := afero.ReadFile(fs, "/repo/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(content))
}

func TestBranchAndFastForwardMerge(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("hi\n"), 0o644))

	repo, err := egit.Init(fs, "/repo")
	require.NoError(t, err)
	base, err := repo.Commit("base")
	require.NoError(t, err)
	require.NoError(t, repo.Branch("feature", base))
	require.NoError(t, repo.Checkout("feature"))

	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("feature\n"), 0o644))
	tip, err := repo.Commit("feature work")
	require.NoError(t, err)

	require.NoError(t, repo.Checkout("master"))
	res, err := repo.Merge(tip)
	require.NoError(t, err)
	assert.True(t, res.FastForward)

	head, err := repo.GetOid(backend.HeadRef)
	require.NoError(t, err)
	assert.Equal(t, tip, head)
}

func TestStatusReportsWorkingChanges(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("hi\n"), 0o644))

	repo, err := egit.Init(fs, "/repo")
	require.NoError(t, err)
	_, err = repo.Commit("initial")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("changed\n"), 0o644))
	status, err := repo.GetStatus()
	require.NoError(t, err)
	require.Len(t, status.Changes, 1)
	assert.Equal(t, "hello.txt", status.Changes[0].Path)
}
