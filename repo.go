// Package egit implements the core of a minimal content-addressed version
// control system: an object store, a reference namespace, tree
// snapshotting and materialization, commits, history traversal, name
// resolution, and a three-way merge engine. Repository is the explicit
// handle threading all of it together; there is no hidden singleton.
package egit

import (
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/backend/fsbackend"
	"github.com/augustgit/egit/config"
	"github.com/augustgit/egit/diffmerge"
	"github.com/augustgit/egit/ignore"
	"github.com/augustgit/egit/worktree"
)

// Repository is the handle through which all of egit's operations are
// performed: it owns the object/ref store, the ignore policy, and the
// tree and diff/merge engines, all scoped to one working tree.
type Repository struct {
	fs   afero.Fs
	root string
	cfg  *config.Config

	store backend.Backend
	tree  *worktree.Manager
	diff  *diffmerge.Engine
}

// Open builds a Repository handle for an existing repository whose
// working tree root is root. The ignore list is loaded once, at open
// time, as the design notes recommend: it is lifecycle-bound to the
// handle rather than a hidden process-wide singleton.
func Open(fs afero.Fs, root string) (*Repository, error) {
	cfg, err := config.Load(fs, root)
	if err != nil {
		return nil, err
	}
	store, err := fsbackend.New(fs, cfg.DotEgitPath)
	if err != nil {
		return nil, err
	}
	il, err := ignore.Load(fs, filepath.Join(root, cfg.IgnoreFile))
	if err != nil {
		return nil, err
	}

	r := &Repository{
		fs:    fs,
		root:  root,
		cfg:   cfg,
		store: store,
		tree:  worktree.New(fs, root, store, il),
	}
	r.diff = diffmerge.New(store, diffmerge.ExecUnifiedDiff, diffmerge.ExecThreeWayMerge)
	return r, nil
}

// Init creates a fresh repository at root (objects/refs directories and a
// symbolic HEAD) and returns a handle to it.
func Init(fs afero.Fs, root string) (*Repository, error) {
	cfg, err := config.Load(fs, root)
	if err != nil {
		return nil, err
	}
	store, err := fsbackend.New(fs, cfg.DotEgitPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(cfg.DefaultBranch); err != nil {
		return nil, xerrors.Errorf("could not initialize repository at %s: %w", root, err)
	}
	return Open(fs, root)
}

// Close releases the repository's resources.
func (r *Repository) Close() error {
	return r.store.Close()
}

// Root returns the working tree root this Repository was opened against.
func (r *Repository) Root() string {
	return r.root
}

// DotEgitPath returns the absolute path to the repository's .egit
// directory.
func (r *Repository) DotEgitPath() string {
	return r.cfg.DotEgitPath
}
