// Package pathutil discovers the root of an egit working tree from an
// arbitrary starting directory.
package pathutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/augustgit/egit/internal/egitpath"
)

// ErrNoRepo is returned when no repository is found in the provided
// directory or any of its parents.
var ErrNoRepo = errors.New("not an egit repository (or any of the parent directories)")

// RepoRoot returns the absolute path to the working tree root of the
// repository containing the current directory.
func RepoRoot(fs afero.Fs) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", xerrors.Errorf("could not get current working directory: %w", err)
	}
	return RepoRootFromPath(fs, wd)
}

// RepoRootFromPath returns the absolute path to the working tree root of
// the repository containing p, by walking up the directory tree looking
// for a .egit directory.
func RepoRootFromPath(fs afero.Fs, p string) (string, error) {
	prev := ""
	for p != prev {
		info, err := fs.Stat(filepath.Join(p, egitpath.DotEgitPath))
		if err == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
