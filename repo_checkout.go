package egit

import (
	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/objects"
)

// Checkout switches the working directory and HEAD to name. When name
// names a branch, HEAD becomes symbolic (attached); otherwise (a tag or
// a raw Oid) HEAD is set directly and becomes detached.
func (r *Repository) Checkout(name string) error {
	oid, err := r.GetOid(name)
	if err != nil {
		return err
	}
	c, err := r.GetCommit(oid)
	if err != nil {
		return err
	}
	if err := r.tree.ReadTree(c.Tree); err != nil {
		return err
	}

	branchRef := "refs/heads/" + name
	branchVal, err := r.store.Reference(branchRef)
	if err != nil {
		return err
	}
	if !branchVal.IsAbsent() {
		return r.store.WriteReference(backend.HeadRef, backend.RefValue{Symbolic: true, Value: branchRef}, false)
	}
	return r.store.WriteReference(backend.HeadRef, backend.RefValue{Value: oid.String()}, false)
}

// Reset points HEAD at oid and materializes its tree into the working
// directory. The write follows HEAD's symbolic chain, so when HEAD is on a
// branch the branch moves to oid and HEAD stays attached.
func (r *Repository) Reset(oid objects.Oid) error {
	c, err := r.GetCommit(oid)
	if err != nil {
		return err
	}
	if err := r.store.WriteReference(backend.HeadRef, backend.RefValue{Value: oid.String()}, true); err != nil {
		return err
	}
	return r.tree.ReadTree(c.Tree)
}

// MergeResult reports how Merge resolved: a fast-forward moved HEAD
// directly with no new commit, otherwise the working directory now holds
// the three-way merged content (possibly with conflict markers) and
// MERGE_HEAD records the merge in progress for the next Commit call to
// fold in.
type MergeResult struct {
	FastForward bool
	Conflicts   []string
}

// Merge merges otherOid into the current HEAD. If HEAD is an ancestor of
// otherOid (a fast-forward), HEAD is simply moved and the working tree
// reset to match; otherwise the merge base is three-way merged into the
// working directory and MERGE_HEAD is set to otherOid so the next Commit
// produces a two-parent merge commit.
func (r *Repository) Merge(otherOid objects.Oid) (MergeResult, error) {
	headOid, err := r.GetOid(backend.HeadRef)
	if err != nil {
		return MergeResult{}, err
	}

	base, err := r.mergeBase(headOid, otherOid)
	if err != nil {
		return MergeResult{}, err
	}

	if base == headOid {
		if err := r.Reset(otherOid); err != nil {
			return MergeResult{}, err
		}
		return MergeResult{FastForward: true}, nil
	}

	headCommit, err := r.GetCommit(headOid)
	if err != nil {
		return MergeResult{}, err
	}
	otherCommit, err := r.GetCommit(otherOid)
	if err != nil {
		return MergeResult{}, err
	}

	var baseTree objects.Commit
	if !base.IsZero() {
		baseTree, err = r.GetCommit(base)
		if err != nil {
			return MergeResult{}, err
		}
	}

	headFiles, err := r.tree.GetTree(headCommit.Tree, "")
	if err != nil {
		return MergeResult{}, err
	}
	otherFiles, err := r.tree.GetTree(otherCommit.Tree, "")
	if err != nil {
		return MergeResult{}, err
	}
	var baseFiles map[string]objects.Oid
	if !base.IsZero() {
		baseFiles, err = r.tree.GetTree(baseTree.Tree, "")
		if err != nil {
			return MergeResult{}, err
		}
	}

	merged, err := r.diff.MergeTrees(headFiles, otherFiles, baseFiles)
	if err != nil {
		return MergeResult{}, err
	}

	if err := r.tree.EmptyCurrentDirectory(); err != nil {
		return MergeResult{}, err
	}
	var conflicts []string
	for path, res := range merged {
		if res.Conflict {
			conflicts = append(conflicts, path)
		}
		if err := r.writeWorkingFile(path, res.Content); err != nil {
			return MergeResult{}, err
		}
	}

	if err := r.store.WriteReference(backend.MergeHeadRef, backend.RefValue{Value: otherOid.String()}, false); err != nil {
		return MergeResult{}, err
	}
	return MergeResult{Conflicts: conflicts}, nil
}

func (r *Repository) writeWorkingFile(path string, content []byte) error {
	blob := objects.NewBlob(content)
	if err := r.store.WriteObject(blob); err != nil {
		return err
	}
	return r.tree.WriteFile(path, content)
}
