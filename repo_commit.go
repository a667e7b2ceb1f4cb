package egit

import (
	"golang.org/x/xerrors"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/objects"
)

// Commit snapshots the working directory, builds a commit object whose
// parents are HEAD's current tip (if any) and MERGE_HEAD's tip (if a
// merge is in progress), and advances HEAD to the new commit. A merge in
// progress is consumed: MERGE_HEAD is deleted once folded into the new
// commit's second parent.
func (r *Repository) Commit(message string) (objects.Oid, error) {
	treeID, err := r.tree.WriteTree("")
	if err != nil {
		return objects.Oid{}, err
	}

	c := objects.Commit{Tree: treeID, Message: message}

	headVal, err := r.store.ResolveReference(backend.HeadRef, true)
	if err != nil {
		return objects.Oid{}, err
	}
	if !headVal.IsAbsent() {
		headOid, err := objects.NewOidFromHex(headVal.Value)
		if err != nil {
			return objects.Oid{}, err
		}
		c.Parents = append(c.Parents, headOid)
	}

	mergeVal, err := r.store.Reference(backend.MergeHeadRef)
	if err != nil {
		return objects.Oid{}, err
	}
	mergeInProgress := !mergeVal.IsAbsent()
	if mergeInProgress {
		mergeOid, err := objects.NewOidFromHex(mergeVal.Value)
		if err != nil {
			return objects.Oid{}, err
		}
		c.Parents = append(c.Parents, mergeOid)
	}

	o := objects.NewCommitObject(c)
	if err := r.store.WriteObject(o); err != nil {
		return objects.Oid{}, err
	}

	if err := r.store.WriteReference(backend.HeadRef, backend.RefValue{Value: o.ID().String()}, true); err != nil {
		return objects.Oid{}, err
	}
	if mergeInProgress {
		if err := r.store.DeleteReference(backend.MergeHeadRef, false); err != nil {
			return objects.Oid{}, err
		}
	}
	return o.ID(), nil
}

// GetCommit fetches and decodes the commit object named by id.
func (r *Repository) GetCommit(id objects.Oid) (objects.Commit, error) {
	o, err := r.store.Object(id)
	if err != nil {
		return objects.Commit{}, err
	}
	if o.Type() != objects.TypeCommit {
		return objects.Commit{}, xerrors.Errorf("%s: %w: expected a commit, got %s", id, objects.ErrMalformedObject, o.Type())
	}
	return objects.DecodeCommit(o.Bytes())
}
