package objects

import (
	"bytes"
	"strings"

	"golang.org/x/xerrors"

	"github.com/augustgit/egit/internal/readutil"
)

// Commit is the in-memory representation of a commit object: the tree it
// snapshots, its ordered parents, and its free-form message.
type Commit struct {
	Tree    Oid
	Parents []Oid
	Message string
}

// EncodeCommit renders a commit payload:
//
//	tree <oid>\n
//	commit <parent_oid>\n   (zero or more)
//	\n
//	<message>\n
func EncodeCommit(c Commit) []byte {
	var buf bytes.Buffer
	buf.WriteString("tree " + c.Tree.String() + "\n")
	for _, p := range c.Parents {
		buf.WriteString("commit " + p.String() + "\n")
	}
	buf.WriteString("\n")
	buf.WriteString(c.Message)
	if !strings.HasSuffix(c.Message, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// NewCommitObject builds the storable Object for a Commit.
func NewCommitObject(c Commit) *Object {
	return New(TypeCommit, EncodeCommit(c))
}

// DecodeCommit parses a commit payload. Header lines are read until a
// blank line is reached; exactly one "tree" line is required, zero or
// more "commit" lines record parents in encounter order, and any other
// header key is a parse error. The remainder of the payload, after the
// blank line, is the message. Stray NUL bytes inside header values are
// stripped as a defensive measure against legacy records.
func DecodeCommit(payload []byte) (Commit, error) {
	var c Commit
	haveTree := false

	rest := payload
	for {
		line := readutil.ReadTo(rest, '\n')
		if line == nil {
			return Commit{}, xerrors.Errorf("%w: commit missing blank line before message", ErrMalformedObject)
		}
		rest = rest[len(line)+1:]

		if len(line) == 0 {
			break
		}

		line = stripNulls(line)
		fields := strings.SplitN(string(line), " ", 2)
		if len(fields) != 2 {
			return Commit{}, xerrors.Errorf("%w: malformed commit header line %q", ErrMalformedObject, line)
		}
		key, value := fields[0], fields[1]

		switch key {
		case "tree":
			if haveTree {
				return Commit{}, xerrors.Errorf("%w: commit has more than one tree header", ErrMalformedObject)
			}
			id, err := NewOidFromHex(value)
			if err != nil {
				return Commit{}, err
			}
			c.Tree = id
			haveTree = true
		case "commit":
			id, err := NewOidFromHex(value)
			if err != nil {
				return Commit{}, err
			}
			c.Parents = append(c.Parents, id)
		default:
			return Commit{}, xerrors.Errorf("%w: unknown commit header key %q", ErrMalformedObject, key)
		}
	}

	if !haveTree {
		return Commit{}, xerrors.Errorf("%w: commit missing tree header", ErrMalformedObject)
	}

	c.Message = string(rest)
	return c, nil
}

func stripNulls(b []byte) []byte {
	if bytes.IndexByte(b, 0x00) < 0 {
		return b
	}
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != 0x00 {
			out = append(out, c)
		}
	}
	return out
}
