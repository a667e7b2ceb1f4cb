package fsbackend

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/internal/egitpath"
)

const symbolicPrefix = "ref: "

// refFilePath maps a ref name to its absolute on-disk path. HEAD and
// MERGE_HEAD live directly under .egit; everything else lives under
// .egit/<name> (name already includes the "refs/heads/" or "refs/tags/"
// prefix).
func (b *Backend) refFilePath(name string) string {
	return b.path(name)
}

// readRefFile reads the raw, non-recursive value stored at name. A
// missing file is not an error: it yields the absent RefValue.
func (b *Backend) readRefFile(name string) (backend.RefValue, error) {
	raw, err := afero.ReadFile(b.fs, b.refFilePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return backend.RefValue{}, nil
		}
		return backend.RefValue{}, xerrors.Errorf("could not read ref %s: %w", name, err)
	}

	content := strings.TrimRight(string(raw), "\n")
	if strings.HasPrefix(content, symbolicPrefix) {
		return backend.RefValue{Symbolic: true, Value: strings.TrimPrefix(content, symbolicPrefix)}, nil
	}
	return backend.RefValue{Value: content}, nil
}

// Reference returns the raw value stored at name, without following
// symbolic indirection.
func (b *Backend) Reference(name string) (backend.RefValue, error) {
	return b.readRefFile(name)
}

// ResolveReference reads the value at name, following the chain of
// symbolic indirections when deref is true, guarding against cycles. The
// chain always terminates at either a direct RefValue or the absent
// RefValue: a missing ref file is never an error.
func (b *Backend) ResolveReference(name string, deref bool) (backend.RefValue, error) {
	cur, err := b.readRefFile(name)
	if err != nil {
		return backend.RefValue{}, err
	}
	if !deref {
		return cur, nil
	}

	visited := map[string]struct{}{name: {}}
	for cur.Symbolic {
		if _, ok := visited[cur.Value]; ok {
			return backend.RefValue{}, xerrors.Errorf("circular reference detected resolving %s", name)
		}
		visited[cur.Value] = struct{}{}
		next, err := b.readRefFile(cur.Value)
		if err != nil {
			return backend.RefValue{}, err
		}
		cur = next
	}
	return cur, nil
}

// finalRefFile returns the name of the file that an update_ref(name, ...,
// deref) call should actually write to: name itself when deref is false
// or the ref at name isn't symbolic, otherwise the terminal name reached
// by following the symbolic chain.
func (b *Backend) finalRefFile(name string, deref bool) (string, error) {
	if !deref {
		return name, nil
	}

	visited := map[string]struct{}{}
	cur := name
	for {
		if _, ok := visited[cur]; ok {
			return "", xerrors.Errorf("circular reference detected resolving %s", name)
		}
		visited[cur] = struct{}{}

		raw, err := b.readRefFile(cur)
		if err != nil {
			return "", err
		}
		if !raw.Symbolic {
			return cur, nil
		}
		cur = raw.Value
	}
}

// WriteReference writes val at name (or at the terminal target of name's
// symbolic chain, when deref is true).
func (b *Backend) WriteReference(name string, val backend.RefValue, deref bool) error {
	if !val.Symbolic && val.Value == "" {
		return xerrors.Errorf("egit: cannot write an empty direct reference for %s", name)
	}

	target, err := b.finalRefFile(name, deref)
	if err != nil {
		return err
	}
	return b.writeRefFile(target, refValueBytes(val.Symbolic, val.Value))
}

func refValueBytes(symbolic bool, value string) []byte {
	if symbolic {
		return []byte(symbolicPrefix + value + "\n")
	}
	return []byte(value + "\n")
}

func (b *Backend) writeRefFile(name string, content []byte) error {
	p := b.refFilePath(name)
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return xerrors.Errorf("could not create directory for ref %s: %w", name, err)
	}
	if err := afero.WriteFile(b.fs, p, content, 0o644); err != nil {
		return xerrors.Errorf("could not write ref %s: %w", name, err)
	}
	return nil
}

// DeleteReference removes the ref at name (or its terminal symbolic
// target, when deref is true), if it exists.
func (b *Backend) DeleteReference(name string, deref bool) error {
	target, err := b.finalRefFile(name, deref)
	if err != nil {
		return err
	}
	err = b.fs.Remove(b.refFilePath(target))
	if err != nil && !os.IsNotExist(err) {
		return xerrors.Errorf("could not delete ref %s: %w", target, err)
	}
	return nil
}

// WalkReferences yields HEAD, MERGE_HEAD (when present), and every ref
// under refs/, resolved per deref.
func (b *Backend) WalkReferences(deref bool, fn backend.RefWalkFunc) error {
	names := []string{backend.HeadRef}

	mergeHead, err := b.readRefFile(backend.MergeHeadRef)
	if err != nil {
		return err
	}
	if !mergeHead.IsAbsent() {
		names = append(names, backend.MergeHeadRef)
	}

	refsUnder, err := b.listRefsUnder(egitpath.RefsPath)
	if err != nil {
		return err
	}
	names = append(names, refsUnder...)

	for _, name := range names {
		val, err := b.ResolveReference(name, deref)
		if err != nil {
			return err
		}
		if err := fn(name, val); err != nil {
			if err == backend.ErrWalkStop {
				return nil
			}
			return err
		}
	}
	return nil
}

// listRefsUnder walks refsRoot (relative to .egit) and returns every
// regular file's name, relative to .egit and using forward slashes.
func (b *Backend) listRefsUnder(refsRoot string) ([]string, error) {
	root := b.path(refsRoot)
	names := []string{}
	err := afero.Walk(b.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(b.dotEgitPath, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not walk %s: %w", refsRoot, err)
	}
	sort.Strings(names)
	return names, nil
}
