package diffmerge

import "github.com/augustgit/egit/objects"

// headLabel, otherLabel, baseLabel are the three labels the external
// three-way-merge collaborator is invoked with, matching the POSIX
// diff3 -m convention.
const (
	headLabel  = "HEAD"
	otherLabel = "MERGE_HEAD"
	baseLabel  = "BASE"
)

// MergeBlobs delegates to the external three-way-merge collaborator with
// the blobs named by headOid, otherOid, and baseOid. conflict reports
// whether the merged bytes contain embedded conflict markers. A conflict
// is reported non-fatally: the merge still completes and the caller
// surfaces it by leaving MERGE_HEAD in place.
func (e *Engine) MergeBlobs(headOid, otherOid, baseOid objects.Oid) (merged []byte, conflict bool, err error) {
	head, err := e.blobBytes(headOid)
	if err != nil {
		return nil, false, err
	}
	other, err := e.blobBytes(otherOid)
	if err != nil {
		return nil, false, err
	}
	base, err := e.blobBytes(baseOid)
	if err != nil {
		return nil, false, err
	}
	return e.threeWayFn(headLabel, head, otherLabel, other, baseLabel, base)
}

// MergeResult is one path's outcome from MergeTrees.
type MergeResult struct {
	Content  []byte
	Conflict bool
}

// MergeTrees produces merged bytes for every path across head, other, and
// base (the three-way ancestors), delegating each path to MergeBlobs.
func (e *Engine) MergeTrees(head, other, base map[string]objects.Oid) (map[string]MergeResult, error) {
	result := map[string]MergeResult{}
	for _, entry := range CompareTrees(head, other, base) {
		headOid, otherOid, baseOid := entry.Oids[0], entry.Oids[1], entry.Oids[2]
		merged, conflict, err := e.MergeBlobs(headOid, otherOid, baseOid)
		if err != nil {
			return nil, err
		}
		result[entry.Path] = MergeResult{Content: merged, Conflict: conflict}
	}
	return result, nil
}
