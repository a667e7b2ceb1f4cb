package historygraph

import (
	"errors"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/objects"
)

// ErrNoCommonAncestor is returned by callers of MergeBase when the zero
// Oid result (disjoint histories) should be treated as an error, such as
// the merge-base command.
var ErrNoCommonAncestor = errors.New("no common ancestor")

// MergeBase returns the first OID that appears in both the ancestry of c1
// and the ancestry of c2, walked in c1's traversal order, or the zero Oid
// when the histories are disjoint: materialize c2's full ancestor set,
// then walk c1 in order and return the first hit.
func MergeBase(store backend.Backend, c1, c2 objects.Oid) (objects.Oid, error) {
	ancestorsOfC2, err := Collect(store, []objects.Oid{c2})
	if err != nil {
		return objects.Oid{}, err
	}
	inC2 := make(map[objects.Oid]struct{}, len(ancestorsOfC2))
	for _, id := range ancestorsOfC2 {
		inC2[id] = struct{}{}
	}

	w := NewWalker(store, []objects.Oid{c1})
	for {
		id, ok, err := w.Next()
		if err != nil {
			return objects.Oid{}, err
		}
		if !ok {
			return objects.Oid{}, nil
		}
		if _, common := inC2[id]; common {
			return id, nil
		}
	}
}
