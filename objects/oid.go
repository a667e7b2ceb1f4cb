// Package objects implements egit's content-addressed object model: the
// blob/tree/commit types, their on-disk encoding, and the Oid that
// identifies them.
package objects

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is the digest mandated by the object format, not used for anything security-sensitive.
	"encoding/hex"
	"fmt"

	"golang.org/x/xerrors"
)

// OidSize is the number of raw bytes in an Oid (SHA-1 digest size).
const OidSize = sha1.Size

// OidHexSize is the number of hex characters in an Oid's string form.
const OidHexSize = OidSize * 2

// Oid uniquely identifies an object by the SHA-1 digest of its header and
// payload. The zero Oid is used to represent "no object" in places where a
// parent, tree, or target may be absent.
type Oid [OidSize]byte

// String returns the 40-character lowercase hex representation of the Oid.
func (o Oid) String() string {
	return hex.EncodeToString(o[:])
}

// IsZero returns whether the Oid is the zero value, used to represent an
// absent object reference.
func (o Oid) IsZero() bool {
	return o == Oid{}
}

// Bytes returns the raw 20-byte digest.
func (o Oid) Bytes() []byte {
	return o[:]
}

// NewOidFromHex parses a 40-character hex string into an Oid.
func NewOidFromHex(s string) (Oid, error) {
	var o Oid
	if len(s) != OidHexSize {
		return o, xerrors.Errorf("%w: oid %q must be %d hex characters", ErrMalformedObject, s, OidHexSize)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return o, xerrors.Errorf("%w: oid %q is not valid hex: %v", ErrMalformedObject, s, err)
	}
	copy(o[:], b)
	return o, nil
}

// IsHexOid reports whether s has the exact shape of an Oid: 40 ASCII hex
// characters. It does not check that an object with that id exists.
func IsHexOid(s string) bool {
	if len(s) != OidHexSize {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NewOidFromContent computes the Oid of an object of the given type
// containing payload, per the header format `"<type> <len>\0<payload>"`.
func NewOidFromContent(typ ObjectType, payload []byte) Oid {
	h := sha1.New() //nolint:gosec // see OidSize above.
	fmt.Fprintf(h, "%s %d\x00", typ, len(payload))
	h.Write(payload)
	var o Oid
	copy(o[:], h.Sum(nil))
	return o
}
