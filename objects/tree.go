package objects

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/augustgit/egit/internal/readutil"
)

// TreeEntryMode is the two kinds of mode a tree entry may carry.
type TreeEntryMode string

// The two tree entry modes: a regular file, or a subdirectory.
const (
	ModeBlob TreeEntryMode = "100644"
	ModeTree TreeEntryMode = "040000"
)

// TreeEntry is one line of a tree object: a child blob or subtree.
type TreeEntry struct {
	Mode     TreeEntryMode
	Type     ObjectType
	ID       Oid
	Filename string
}

// ValidateFilename rejects a tree entry filename that is ".", "..", or
// contains a path separator.
func ValidateFilename(name string) error {
	if name == "." || name == ".." || strings.ContainsRune(name, '/') {
		return xerrors.Errorf("%w: invalid tree entry filename %q", ErrInvariantViolation, name)
	}
	return nil
}

// EncodeTreeEntry renders a single tree entry line:
// "<mode> <type> <oid> <filename>\n".
func EncodeTreeEntry(e TreeEntry) ([]byte, error) {
	if err := ValidateFilename(e.Filename); err != nil {
		return nil, err
	}
	line := string(e.Mode) + " " + string(e.Type) + " " + e.ID.String() + " " + e.Filename + "\n"
	return []byte(line), nil
}

// NewTree builds a tree Object from already-encoded, ordered entry lines.
func NewTree(entryLines []byte) *Object {
	return New(TypeTree, entryLines)
}

// DecodeTreeEntries parses a tree object's payload into its entries, in
// the order they appear in the payload.
func DecodeTreeEntries(payload []byte) ([]TreeEntry, error) {
	entries := []TreeEntry{}
	for len(payload) > 0 {
		line := readutil.ReadTo(payload, '\n')
		if line == nil {
			return nil, xerrors.Errorf("%w: tree entry missing trailing newline", ErrMalformedObject)
		}
		entry, err := decodeTreeEntryLine(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		payload = payload[len(line)+1:]
	}
	return entries, nil
}

func decodeTreeEntryLine(line []byte) (TreeEntry, error) {
	fields := strings.SplitN(string(line), " ", 4)
	if len(fields) != 4 {
		return TreeEntry{}, xerrors.Errorf("%w: malformed tree entry line %q", ErrMalformedObject, line)
	}
	mode, typ, oidHex, filename := fields[0], fields[1], fields[2], fields[3]

	switch TreeEntryMode(mode) {
	case ModeBlob, ModeTree:
	default:
		return TreeEntry{}, xerrors.Errorf("%w: unknown tree entry mode %q", ErrMalformedObject, mode)
	}
	switch ObjectType(typ) {
	case TypeBlob, TypeTree:
	default:
		return TreeEntry{}, xerrors.Errorf("%w: unknown tree entry type %q", ErrMalformedObject, typ)
	}
	id, err := NewOidFromHex(oidHex)
	if err != nil {
		return TreeEntry{}, err
	}
	if err := ValidateFilename(filename); err != nil {
		return TreeEntry{}, err
	}

	return TreeEntry{
		Mode:     TreeEntryMode(mode),
		Type:     ObjectType(typ),
		ID:       id,
		Filename: filename,
	}, nil
}

// ModeForType returns the canonical mode for an object type appearing as a
// tree entry.
func ModeForType(typ ObjectType) TreeEntryMode {
	if typ == TypeTree {
		return ModeTree
	}
	return ModeBlob
}
