package egit

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/objects"
)

// refCandidates are the prefixes GetOid probes, in order, for any name
// other than "HEAD"; a 40-hex name is taken as an Oid only once every
// probe has missed.
var refCandidates = []string{"%s", "refs/%s", "refs/heads/%s", "refs/tags/%s"}

// GetOid resolves name to an Oid: "HEAD" is special-cased, then name,
// refs/<name>, refs/heads/<name>, and refs/tags/<name> are probed in
// order for the first ref that exists, and finally name is accepted
// as a literal 40-hex Oid. Returns objects.ErrUnknownRef if nothing
// matches.
func (r *Repository) GetOid(name string) (objects.Oid, error) {
	if name == backend.HeadRef {
		return r.resolveRefName(backend.HeadRef)
	}

	for _, pattern := range refCandidates {
		refName := fmtRef(pattern, name)
		val, err := r.store.ResolveReference(refName, true)
		if err != nil {
			return objects.Oid{}, err
		}
		if !val.IsAbsent() {
			return objects.NewOidFromHex(val.Value)
		}
	}

	if objects.IsHexOid(name) {
		return objects.NewOidFromHex(name)
	}
	return objects.Oid{}, xerrors.Errorf("%w: %q", objects.ErrUnknownRef, name)
}

func fmtRef(pattern, name string) string {
	return strings.Replace(pattern, "%s", name, 1)
}

func (r *Repository) resolveRefName(name string) (objects.Oid, error) {
	val, err := r.store.ResolveReference(name, true)
	if err != nil {
		return objects.Oid{}, err
	}
	if val.IsAbsent() {
		return objects.Oid{}, xerrors.Errorf("%w: %q", objects.ErrUnknownRef, name)
	}
	return objects.NewOidFromHex(val.Value)
}

// CurrentBranch reports the branch HEAD symbolically points to, and
// whether HEAD is symbolic at all (false means a detached HEAD).
func (r *Repository) CurrentBranch() (branch string, onBranch bool, err error) {
	val, err := r.store.Reference(backend.HeadRef)
	if err != nil {
		return "", false, err
	}
	if !val.Symbolic {
		return "", false, nil
	}
	const prefix = "refs/heads/"
	if !strings.HasPrefix(val.Value, prefix) {
		return val.Value, true, nil
	}
	return strings.TrimPrefix(val.Value, prefix), true, nil
}

// Branch creates (or overwrites) refs/heads/<name> to point at startOid.
func (r *Repository) Branch(name string, startOid objects.Oid) error {
	return r.store.WriteReference("refs/heads/"+name, backend.RefValue{Value: startOid.String()}, false)
}

// ListBranches returns every branch name under refs/heads, sorted.
func (r *Repository) ListBranches() ([]string, error) {
	var names []string
	err := r.store.WalkReferences(false, func(name string, val backend.RefValue) error {
		const prefix = "refs/heads/"
		if strings.HasPrefix(name, prefix) {
			names = append(names, strings.TrimPrefix(name, prefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Tag creates refs/tags/<name> pointing at oid. Tags are plain refs: egit
// has no tag object type.
func (r *Repository) Tag(name string, oid objects.Oid) error {
	return r.store.WriteReference("refs/tags/"+name, backend.RefValue{Value: oid.String()}, false)
}

// ShowRefs yields every concrete reference (HEAD, MERGE_HEAD, refs/...)
// with its resolved Oid, for the show-ref command.
func (r *Repository) ShowRefs() (map[string]objects.Oid, error) {
	result := map[string]objects.Oid{}
	err := r.store.WalkReferences(true, func(name string, val backend.RefValue) error {
		if val.IsAbsent() {
			return nil
		}
		id, err := objects.NewOidFromHex(val.Value)
		if err != nil {
			return err
		}
		result[name] = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
