package objects

import (
	"bytes"
	"strconv"
	"sync"

	"golang.org/x/xerrors"

	"github.com/augustgit/egit/internal/readutil"
)

// ObjectType is the declared type of an object, as recorded in its header.
// It is never inferred from the payload.
type ObjectType string

// The three object types known to the store.
const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

// Object is the in-memory representation of any stored object: its
// declared type plus its raw payload. The Oid is derived from both and
// cached after first computation.
type Object struct {
	typ     ObjectType
	payload []byte

	idOnce sync.Once
	id     Oid
}

// New builds an Object of the given type around payload. The bytes are not
// copied; callers must not mutate payload afterwards.
func New(typ ObjectType, payload []byte) *Object {
	return &Object{typ: typ, payload: payload}
}

// Type returns the object's declared type.
func (o *Object) Type() ObjectType {
	return o.typ
}

// Bytes returns the object's payload, excluding the header.
func (o *Object) Bytes() []byte {
	return o.payload
}

// ID returns the Oid of the object, computing it on first call.
func (o *Object) ID() Oid {
	o.idOnce.Do(func() {
		o.id = NewOidFromContent(o.typ, o.payload)
	})
	return o.id
}

// Encode returns the full on-disk representation: "<type> <len>\0<payload>".
func (o *Object) Encode() []byte {
	header := EncodeHeader(o.typ, len(o.payload))
	buf := make([]byte, 0, len(header)+1+len(o.payload))
	buf = append(buf, header...)
	buf = append(buf, 0x00)
	buf = append(buf, o.payload...)
	return buf
}

// EncodeHeader returns the ASCII header "<type> <len>" for the given type
// and payload length.
func EncodeHeader(typ ObjectType, size int) []byte {
	return []byte(string(typ) + " " + strconv.Itoa(size))
}

// Split partitions raw stored bytes ("<type> <len>\0<payload>") into its
// type and payload. The declared size is advisory; the returned payload's
// actual length is authoritative.
func Split(raw []byte) (typ ObjectType, payload []byte, err error) {
	nul := bytes.IndexByte(raw, 0x00)
	if nul < 0 {
		return "", nil, xerrors.Errorf("%w: missing NUL separator", ErrMalformedObject)
	}
	header := raw[:nul]
	payload = raw[nul+1:]

	typBytes := readutil.ReadTo(header, ' ')
	if typBytes == nil {
		return "", nil, xerrors.Errorf("%w: missing type/size separator in header %q", ErrMalformedObject, header)
	}
	return ObjectType(typBytes), payload, nil
}

// NewFromRaw decodes a raw on-disk object record, validating that its type
// is one of the three known kinds.
func NewFromRaw(raw []byte) (*Object, error) {
	typ, payload, err := Split(raw)
	if err != nil {
		return nil, err
	}
	switch typ {
	case TypeBlob, TypeTree, TypeCommit:
	default:
		return nil, xerrors.Errorf("%w: unknown object type %q", ErrMalformedObject, typ)
	}
	return New(typ, payload), nil
}
