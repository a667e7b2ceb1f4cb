package objects

import "errors"

// Error kinds surfaced by the object store and object codecs.
var (
	// ErrNotFound is returned when an object is looked up but does not
	// exist. A missing ref is not an error: it reads as an absent value.
	ErrNotFound = errors.New("egit: not found")
	// ErrMalformedObject is returned when an object's header or payload
	// cannot be parsed.
	ErrMalformedObject = errors.New("egit: malformed object")
	// ErrUnknownRef is returned by the name resolver once every probe has
	// been exhausted.
	ErrUnknownRef = errors.New("egit: unknown ref")
	// ErrInvariantViolation is returned when a tree entry has an invalid filename
	// (one that is "." or "..", or that contains a path separator).
	ErrInvariantViolation = errors.New("egit: invariant violation")
)
