package egit

import (
	"github.com/spf13/afero"

	"github.com/augustgit/egit/objects"
)

// HashObject hashes content as a blob, persisting it to the store when
// write is true, and returns its Oid either way.
func (r *Repository) HashObject(content []byte, write bool) (objects.Oid, error) {
	blob := objects.NewBlob(content)
	if write {
		if err := r.store.WriteObject(blob); err != nil {
			return objects.Oid{}, err
		}
	}
	return blob.ID(), nil
}

// HashFile reads path from the filesystem and hashes it as HashObject
// does.
func (r *Repository) HashFile(path string, write bool) (objects.Oid, error) {
	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return objects.Oid{}, err
	}
	return r.HashObject(content, write)
}

// CatFile fetches the object named by id without interpreting it.
func (r *Repository) CatFile(id objects.Oid) (*objects.Object, error) {
	return r.store.Object(id)
}

// WriteTree snapshots the working directory root into a tree object and
// returns its Oid.
func (r *Repository) WriteTree() (objects.Oid, error) {
	return r.tree.WriteTree("")
}

// ReadTree materializes the tree named by id into the working directory.
func (r *Repository) ReadTree(id objects.Oid) error {
	return r.tree.ReadTree(id)
}

// DiffHead renders a unified diff between HEAD's tree and the working
// directory, for `egit diff` with no arguments.
func (r *Repository) DiffHead() ([]byte, error) {
	headOid, err := r.GetOid("HEAD")
	if err != nil {
		return nil, err
	}
	headCommit, err := r.GetCommit(headOid)
	if err != nil {
		return nil, err
	}
	headFiles, err := r.tree.GetTree(headCommit.Tree, "")
	if err != nil {
		return nil, err
	}
	workingFiles, err := r.tree.GetWorkingDirectory()
	if err != nil {
		return nil, err
	}
	return r.diff.DiffTrees(headFiles, workingFiles)
}

// DiffCommit renders a unified diff between a commit's parent (or an
// empty tree, for a root commit) and the commit itself, for `egit show`.
func (r *Repository) DiffCommit(id objects.Oid) ([]byte, error) {
	c, err := r.GetCommit(id)
	if err != nil {
		return nil, err
	}
	newFiles, err := r.tree.GetTree(c.Tree, "")
	if err != nil {
		return nil, err
	}

	oldFiles := map[string]objects.Oid{}
	if len(c.Parents) > 0 {
		parent, err := r.GetCommit(c.Parents[0])
		if err != nil {
			return nil, err
		}
		oldFiles, err = r.tree.GetTree(parent.Tree, "")
		if err != nil {
			return nil, err
		}
	}
	return r.diff.DiffTrees(oldFiles, newFiles)
}
