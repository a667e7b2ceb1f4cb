// Package fsbackend is the filesystem implementation of backend.Backend:
// loose objects under .egit/objects/<xx>/<rest> and ref files under
// .egit/{HEAD,MERGE_HEAD,refs/...}.
package fsbackend

import (
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/augustgit/egit/backend"
	"github.com/augustgit/egit/internal/cache"
	"github.com/augustgit/egit/internal/egitpath"
	"github.com/augustgit/egit/internal/syncutil"
)

// objectCacheSize bounds the read-through object cache; history walks over
// long-lived repos re-read the same commits and trees repeatedly.
const objectCacheSize = 1024

// namedMutexSize is the number of stripes backing the per-OID write lock.
const namedMutexSize = 64

// Backend is the filesystem-backed implementation of backend.Backend.
// DotEgitPath is the absolute path to the repository's .egit directory;
// the filesystem rooted there is abstracted behind fs so tests can run
// against an in-memory afero.Fs.
type Backend struct {
	fs          afero.Fs
	dotEgitPath string

	objectLocks *syncutil.NamedMutex
	objectCache *cache.LRU
}

// New returns a Backend rooted at dotEgitPath (the absolute path to the
// repository's .egit directory), operating through fs.
func New(fs afero.Fs, dotEgitPath string) (*Backend, error) {
	c, err := cache.NewLRU(objectCacheSize)
	if err != nil {
		return nil, xerrors.Errorf("could not create object cache: %w", err)
	}
	return &Backend{
		fs:          fs,
		dotEgitPath: dotEgitPath,
		objectLocks: syncutil.NewNamedMutex(namedMutexSize),
		objectCache: c,
	}, nil
}

// Init creates a fresh .egit layout: the objects and refs directories, and
// a symbolic HEAD pointing at refs/heads/<defaultBranch>. The
// target branch is allowed not to exist yet.
func (b *Backend) Init(defaultBranch string) error {
	dirs := []string{
		b.path(egitpath.ObjectsPath),
		b.path(egitpath.RefsHeadsPath),
		b.path(egitpath.RefsTagsPath),
	}
	for _, d := range dirs {
		if err := b.fs.MkdirAll(d, 0o755); err != nil {
			return xerrors.Errorf("could not create %s: %w", d, err)
		}
	}

	head, err := b.Reference(backend.HeadRef)
	if err != nil {
		return err
	}
	if head.IsAbsent() {
		target := egitpath.RefsHeadsPath + "/" + defaultBranch
		if err := b.writeRefFile(backend.HeadRef, refValueBytes(true, target)); err != nil {
			return xerrors.Errorf("could not write HEAD: %w", err)
		}
	}
	return nil
}

// Close releases the backend's resources. The filesystem backend holds no
// open file handles between calls beyond clearing its read cache.
func (b *Backend) Close() error {
	b.objectCache.Clear()
	return nil
}

// path joins a path relative to .egit into an absolute path.
func (b *Backend) path(rel string) string {
	return filepath.Join(b.dotEgitPath, rel)
}

// Ensure Backend satisfies backend.Backend.
var _ backend.Backend = (*Backend)(nil)
