// Package backend defines the storage contract egit's core relies on: a
// content-addressed object store (C1) plus a reference namespace (C2). The
// only implementation shipped is backend/fsbackend, but callers depend on
// this interface so an alternate backend could be substituted.
package backend

import "github.com/augustgit/egit/objects"

// Well-known reference names.
const (
	HeadRef      = "HEAD"
	MergeHeadRef = "MERGE_HEAD"
)

// RefValue is the in-memory representation of a reference's value: either
// symbolic (pointing at another refname) or direct (naming an OID).
// Absence is represented as a non-symbolic RefValue with an empty Value,
// the store never raises on a missing ref.
type RefValue struct {
	Symbolic bool
	Value    string
}

// IsAbsent reports whether this RefValue represents a ref that does not
// exist (or whose symbolic chain terminates at a missing target).
func (r RefValue) IsAbsent() bool {
	return r.Value == ""
}

// RefWalkFunc is called once per reference during WalkReferences. Returning
// ErrWalkStop halts the walk early without it being treated as a failure.
type RefWalkFunc func(name string, val RefValue) error

// ErrWalkStop is a sentinel a RefWalkFunc can return to stop WalkReferences
// early.
var ErrWalkStop = walkStop{}

type walkStop struct{}

func (walkStop) Error() string { return "egit: walk stopped" }

// Backend is the storage contract consumed by the rest of egit's core.
type Backend interface {
	// Init creates the on-disk layout for a fresh repository (objects and
	// refs directories, and a symbolic HEAD).
	Init(defaultBranch string) error
	Close() error

	// WriteObject persists an object, keyed by its own Oid. Writing an
	// object that already exists succeeds without error.
	WriteObject(o *objects.Object) error
	// HasObject reports whether an object with the given Oid is stored.
	HasObject(id objects.Oid) (bool, error)
	// Object fetches and decodes a stored object. Returns
	// objects.ErrNotFound if absent.
	Object(id objects.Oid) (*objects.Object, error)

	// Reference reads the raw (non-recursive) value at name. Returns an
	// absent RefValue, not an error, if name does not exist.
	Reference(name string) (RefValue, error)
	// ResolveReference reads the value at name, following symbolic
	// indirection when deref is true.
	ResolveReference(name string, deref bool) (RefValue, error)
	// WriteReference writes val at name. When deref is true and the
	// existing value at name is symbolic, the chain is followed and the
	// final target is updated instead of name itself.
	WriteReference(name string, val RefValue, deref bool) error
	// DeleteReference removes the ref at name (resolved per deref) if it
	// exists.
	DeleteReference(name string, deref bool) error
	// WalkReferences yields every concrete reference under the store:
	// HEAD, MERGE_HEAD when present, and every ref under refs/.
	WalkReferences(deref bool, fn RefWalkFunc) error
}
