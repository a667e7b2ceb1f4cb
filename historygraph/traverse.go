// Package historygraph implements History Traversal (C6): walking the
// commit DAG in the mainline-first order the rest of egit depends on, and
// computing merge bases over that walk.
package historygraph

import (
	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/objects"
)

// Walker is a non-restartable, lazy traversal over the commit graph
// reachable from a set of starting OIDs. Each commit is yielded at most
// once, in an order that visits first-parents before merge-side
// parents: the work queue pushes a commit's first parent to the front
// (depth-first along the mainline) and its remaining parents to the back
// (breadth-first across merge branches).
type Walker struct {
	store   backend.Backend
	deque   []objects.Oid
	visited map[objects.Oid]struct{}
}

// NewWalker seeds a Walker from starts. Zero OIDs among starts are
// ignored, matching the treatment of absent parents during the walk.
func NewWalker(store backend.Backend, starts []objects.Oid) *Walker {
	deque := make([]objects.Oid, len(starts))
	copy(deque, starts)
	return &Walker{
		store:   store,
		deque:   deque,
		visited: map[objects.Oid]struct{}{},
	}
}

// Next returns the next commit OID in the walk. ok is false once the walk
// is exhausted.
func (w *Walker) Next() (id objects.Oid, ok bool, err error) {
	for len(w.deque) > 0 {
		id = w.deque[0]
		w.deque = w.deque[1:]

		if id.IsZero() {
			continue
		}
		if _, seen := w.visited[id]; seen {
			continue
		}
		w.visited[id] = struct{}{}

		o, err := w.store.Object(id)
		if err != nil {
			return objects.Oid{}, false, err
		}
		c, err := objects.DecodeCommit(o.Bytes())
		if err != nil {
			return objects.Oid{}, false, err
		}

		if len(c.Parents) > 0 {
			front := []objects.Oid{c.Parents[0]}
			w.deque = append(front, w.deque...)
			if len(c.Parents) > 1 {
				w.deque = append(w.deque, c.Parents[1:]...)
			}
		}
		return id, true, nil
	}
	return objects.Oid{}, false, nil
}

// Collect drains a Walker into a slice. Intended for tests and for call
// sites (like MergeBase) that need the full ancestor set rather than a
// streaming walk.
func Collect(store backend.Backend, starts []objects.Oid) ([]objects.Oid, error) {
	w := NewWalker(store, starts)
	var out []objects.Oid
	for {
		id, ok, err := w.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, id)
	}
}
