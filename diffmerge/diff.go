// Package diffmerge implements the Diff/Merge Engine (C8): comparing
// trees path-wise, producing textual diffs, and performing three-way
// merges, by delegating the actual text comparison to an external
// collaborator.
package diffmerge

import (
	"sort"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/objects"
)

// UnifiedDiffFunc takes two labeled byte buffers and returns a unified
// diff byte stream. This is the core's only dependency on an external
// text-diff tool.
type UnifiedDiffFunc func(labelA string, a []byte, labelB string, b []byte) ([]byte, error)

// ThreeWayMergeFunc takes three labeled byte buffers (head, other, base)
// and returns the merged byte stream. conflict reports whether the merge
// left conflict markers embedded in merged; only a conflict or a clean
// merge are acceptable outcomes, any other failure is returned as err.
type ThreeWayMergeFunc func(headLabel string, head []byte, otherLabel string, other []byte, baseLabel string, base []byte) (merged []byte, conflict bool, err error)

// Engine ties the tree-flattening primitives to the external diff/merge
// collaborators.
type Engine struct {
	store      backend.Backend
	diffFn     UnifiedDiffFunc
	threeWayFn ThreeWayMergeFunc
}

// New returns an Engine reading blobs from store and delegating text
// comparison to diffFn and threeWayFn.
func New(store backend.Backend, diffFn UnifiedDiffFunc, threeWayFn ThreeWayMergeFunc) *Engine {
	return &Engine{store: store, diffFn: diffFn, threeWayFn: threeWayFn}
}

// PathEntry is one row of CompareTrees: a path plus its per-tree OID
// (the zero Oid where the path is absent from that tree).
type PathEntry struct {
	Path string
	Oids []objects.Oid
}

// CompareTrees returns, for the union of paths across trees, the OID each
// tree has at that path (or the zero Oid when absent). Order is stable
// (lexicographic by path) but otherwise carries no semantic meaning.
func CompareTrees(trees ...map[string]objects.Oid) []PathEntry {
	paths := map[string]struct{}{}
	for _, t := range trees {
		for p := range t {
			paths[p] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	entries := make([]PathEntry, 0, len(sorted))
	for _, p := range sorted {
		oids := make([]objects.Oid, len(trees))
		for i, t := range trees {
			oids[i] = t[p]
		}
		entries = append(entries, PathEntry{Path: p, Oids: oids})
	}
	return entries
}

// ChangeAction classifies how a path differs between two trees.
type ChangeAction string

// The three kinds of change IterChangedFiles reports.
const (
	ActionCreated  ChangeAction = "created"
	ActionDeleted  ChangeAction = "deleted"
	ActionModified ChangeAction = "modified"
)

// ChangedFile is one row of IterChangedFiles.
type ChangedFile struct {
	Path   string
	Action ChangeAction
}

// IterChangedFiles classifies every path that differs between old and new.
func IterChangedFiles(old, new map[string]objects.Oid) []ChangedFile {
	var out []ChangedFile
	for _, e := range CompareTrees(old, new) {
		oldID, newID := e.Oids[0], e.Oids[1]
		switch {
		case oldID.IsZero() && !newID.IsZero():
			out = append(out, ChangedFile{Path: e.Path, Action: ActionCreated})
		case !oldID.IsZero() && newID.IsZero():
			out = append(out, ChangedFile{Path: e.Path, Action: ActionDeleted})
		case oldID != newID:
			out = append(out, ChangedFile{Path: e.Path, Action: ActionModified})
		}
	}
	return out
}

// DiffFiles delegates to the external unified-diff collaborator, using
// the blobs named by oidA and oidB (or an empty buffer when an Oid is
// zero) and a/<path>, b/<path> as labels.
func (e *Engine) DiffFiles(oidA, oidB objects.Oid, path string) ([]byte, error) {
	a, err := e.blobBytes(oidA)
	if err != nil {
		return nil, err
	}
	b, err := e.blobBytes(oidB)
	if err != nil {
		return nil, err
	}
	return e.diffFn("a/"+path, a, "b/"+path, b)
}

// DiffTrees concatenates DiffFiles output for every path where a and b
// differ.
func (e *Engine) DiffTrees(a, b map[string]objects.Oid) ([]byte, error) {
	var out []byte
	for _, entry := range CompareTrees(a, b) {
		oidA, oidB := entry.Oids[0], entry.Oids[1]
		if oidA == oidB {
			continue
		}
		chunk, err := e.DiffFiles(oidA, oidB, entry.Path)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

func (e *Engine) blobBytes(id objects.Oid) ([]byte, error) {
	if id.IsZero() {
		return nil, nil
	}
	o, err := e.store.Object(id)
	if err != nil {
		return nil, err
	}
	return o.Bytes(), nil
}
