package egit

import (
	"github.com/augustgit/egit/historygraph"
	"github.com/augustgit/egit/objects"
)

// mergeBase is a thin wrapper over historygraph.MergeBase scoped to this
// repository's store.
func (r *Repository) mergeBase(c1, c2 objects.Oid) (objects.Oid, error) {
	return historygraph.MergeBase(r.store, c1, c2)
}

// MergeBaseFor exposes mergeBase for callers (such as the merge-base
// command) that only need the common ancestor, not a full merge.
func (r *Repository) MergeBaseFor(c1, c2 objects.Oid) (objects.Oid, error) {
	return r.mergeBase(c1, c2)
}
