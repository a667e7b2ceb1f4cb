package worktree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/augustgit/egit/objects"
)

// ReadTree materializes the tree named by treeID into the working
// directory. It first empties the current directory of every non-ignored
// path, then writes every (path, blob) pair from GetTree to disk,
// creating parent directories as needed.
//
// I/O errors during materialization are fatal to the call: this is a
// known hazard and the working directory may be left partially written.
// Transactional materialization is a non-goal.
func (m *Manager) ReadTree(treeID objects.Oid) error {
	if err := m.EmptyCurrentDirectory(); err != nil {
		return err
	}

	files, err := m.GetTree(treeID, "")
	if err != nil {
		return err
	}

	for path, blobID := range files {
		blob, err := m.store.Object(blobID)
		if err != nil {
			return err
		}
		if err := m.WriteFile(path, blob.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes content to path (relative to the working tree root),
// creating parent directories as needed. Used directly by merge
// materialization, which writes bytes the diff engine produced rather
// than an existing blob's content.
func (m *Manager) WriteFile(path string, content []byte) error {
	abs := filepath.Join(m.root, filepath.FromSlash(path))
	if err := m.fs.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return xerrors.Errorf("could not create parent directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(m.fs, abs, content, 0o644); err != nil {
		return xerrors.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// EmptyCurrentDirectory walks the working directory bottom-up, removing
// every non-ignored file and attempting to remove every non-ignored
// directory. Failures to remove a directory (typically because ignored
// siblings remain inside it) are swallowed; this may hide partial-failure
// states on checkout.
func (m *Manager) EmptyCurrentDirectory() error {
	var dirs []string

	err := afero.Walk(m.fs, m.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if p == m.root {
			return nil
		}
		rel, err := filepath.Rel(m.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if m.ignore.IsIgnored(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			dirs = append(dirs, p)
			return nil
		}
		if err := m.fs.Remove(p); err != nil {
			return xerrors.Errorf("could not remove %s: %w", rel, err)
		}
		return nil
	})
	if err != nil {
		return xerrors.Errorf("could not walk working directory: %w", err)
	}

	// Remove directories bottom-up (deepest first) so a parent only
	// disappears once its children are already gone.
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))
	for _, d := range dirs {
		_ = m.fs.Remove(d) // swallowed: non-empty directories (ignored leftovers) are expected to fail here.
	}
	return nil
}

// GetWorkingDirectory walks the working directory, skipping ignored
// paths, hashing each file as a blob (persisting it to the object store
// so later diffs can read it back by OID), and returns the resulting
// path→OID mapping.
func (m *Manager) GetWorkingDirectory() (map[string]objects.Oid, error) {
	result := map[string]objects.Oid{}

	err := afero.Walk(m.fs, m.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if p == m.root {
			return nil
		}
		rel, err := filepath.Rel(m.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if m.ignore.IsIgnored(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		content, err := afero.ReadFile(m.fs, p)
		if err != nil {
			return xerrors.Errorf("could not read %s: %w", rel, err)
		}
		blob := objects.NewBlob(content)
		if err := m.store.WriteObject(blob); err != nil {
			return err
		}
		result[rel] = blob.ID()
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not walk working directory: %w", err)
	}
	return result, nil
}
