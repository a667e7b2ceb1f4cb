// Package worktree implements the Tree Codec (C3) and Working Directory
// Manager (C4): snapshotting a directory into tree objects and
// materializing tree objects back onto disk.
package worktree

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/ignore"
	"github.com/augustgit/egit/objects"
)

// Manager ties together the working tree filesystem, the object store,
// and the ignore policy, to walk, snapshot, and materialize directory
// trees.
type Manager struct {
	fs     afero.Fs
	root   string
	store  backend.Backend
	ignore *ignore.List
}

// New returns a Manager rooted at root (the working tree's absolute
// path), storing objects in store and honoring ignore.
func New(fs afero.Fs, root string, store backend.Backend, ignore *ignore.List) *Manager {
	return &Manager{fs: fs, root: root, store: store, ignore: ignore}
}

// WriteTree scans dir (relative to the working tree root, "" meaning the
// root itself), recursively hashing non-ignored files as blobs and
// subdirectories as trees, and returns the OID of the resulting tree
// object. Entries are written in filename-sorted order: this is strictly
// stronger than the filesystem's native scan order and yields digests
// that are stable across filesystems.
func (m *Manager) WriteTree(dir string) (objects.Oid, error) {
	absDir := filepath.Join(m.root, dir)
	infos, err := afero.ReadDir(m.fs, absDir)
	if err != nil {
		return objects.Oid{}, xerrors.Errorf("could not scan directory %s: %w", absDir, err)
	}

	var payload strings.Builder
	for _, info := range infos {
		relPath := filepath.Join(dir, info.Name())
		if m.ignore.IsIgnored(relPath) {
			continue
		}

		var entry objects.TreeEntry
		if info.IsDir() {
			id, err := m.WriteTree(relPath)
			if err != nil {
				return objects.Oid{}, err
			}
			entry = objects.TreeEntry{Mode: objects.ModeTree, Type: objects.TypeTree, ID: id, Filename: info.Name()}
		} else {
			content, err := afero.ReadFile(m.fs, filepath.Join(m.root, relPath))
			if err != nil {
				return objects.Oid{}, xerrors.Errorf("could not read file %s: %w", relPath, err)
			}
			blob := objects.NewBlob(content)
			if err := m.store.WriteObject(blob); err != nil {
				return objects.Oid{}, err
			}
			entry = objects.TreeEntry{Mode: objects.ModeBlob, Type: objects.TypeBlob, ID: blob.ID(), Filename: info.Name()}
		}

		line, err := objects.EncodeTreeEntry(entry)
		if err != nil {
			return objects.Oid{}, err
		}
		payload.Write(line)
	}

	tree := objects.NewTree([]byte(payload.String()))
	if err := m.store.WriteObject(tree); err != nil {
		return objects.Oid{}, err
	}
	return tree.ID(), nil
}

// IterateTree returns the shallow, non-recursive list of entries in the
// tree named by treeID.
func (m *Manager) IterateTree(treeID objects.Oid) ([]objects.TreeEntry, error) {
	o, err := m.store.Object(treeID)
	if err != nil {
		return nil, err
	}
	if o.Type() != objects.TypeTree {
		return nil, xerrors.Errorf("%s: %w: expected a tree, got %s", treeID, objects.ErrMalformedObject, o.Type())
	}
	return objects.DecodeTreeEntries(o.Bytes())
}

// GetTree recursively flattens the tree named by treeID into a mapping
// from "/"-joined relative path to blob OID. basePath is prefixed to every
// path in the result (typically "").
func (m *Manager) GetTree(treeID objects.Oid, basePath string) (map[string]objects.Oid, error) {
	result := map[string]objects.Oid{}
	if err := m.collectTree(treeID, basePath, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (m *Manager) collectTree(treeID objects.Oid, basePath string, out map[string]objects.Oid) error {
	entries, err := m.IterateTree(treeID)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := objects.ValidateFilename(e.Filename); err != nil {
			return err
		}
		path := e.Filename
		if basePath != "" {
			path = basePath + "/" + e.Filename
		}
		switch e.Type {
		case objects.TypeTree:
			if err := m.collectTree(e.ID, path, out); err != nil {
				return err
			}
		case objects.TypeBlob:
			out[path] = e.ID
		default:
			return xerrors.Errorf("%s: %w: unexpected tree entry type %s", treeID, objects.ErrMalformedObject, e.Type)
		}
	}
	return nil
}
