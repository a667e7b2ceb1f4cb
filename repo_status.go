package egit

import (
	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/diffmerge"
	"github.com/augustgit/egit/objects"
)

// Status summarizes the repository's current position: the branch HEAD
// names (or its detached Oid), whether a merge is in progress, and how
// the working directory differs from HEAD's tree.
type Status struct {
	Branch          string
	OnBranch        bool
	HeadOid         objects.Oid
	MergeInProgress bool
	MergeHeadOid    objects.Oid
	Changes         []diffmerge.ChangedFile
}

// GetStatus computes a Status snapshot.
func (r *Repository) GetStatus() (Status, error) {
	var s Status

	branch, onBranch, err := r.CurrentBranch()
	if err != nil {
		return Status{}, err
	}
	s.Branch, s.OnBranch = branch, onBranch

	headOid, err := r.GetOid(backend.HeadRef)
	if err != nil {
		return Status{}, err
	}
	s.HeadOid = headOid

	mergeVal, err := r.store.Reference(backend.MergeHeadRef)
	if err != nil {
		return Status{}, err
	}
	if !mergeVal.IsAbsent() {
		s.MergeInProgress = true
		s.MergeHeadOid, err = objects.NewOidFromHex(mergeVal.Value)
		if err != nil {
			return Status{}, err
		}
	}

	headCommit, err := r.GetCommit(headOid)
	if err != nil {
		return Status{}, err
	}
	headFiles, err := r.tree.GetTree(headCommit.Tree, "")
	if err != nil {
		return Status{}, err
	}
	workingFiles, err := r.tree.GetWorkingDirectory()
	if err != nil {
		return Status{}, err
	}
	s.Changes = diffmerge.IterChangedFiles(headFiles, workingFiles)
	return s, nil
}
