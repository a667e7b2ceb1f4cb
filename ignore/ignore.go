// Package ignore implements egit's ignore policy: a flat set of path
// component names loaded once from a repository's ignore file.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// List is the set of names loaded from an ignore file. A path is ignored
// iff any of its "/"-separated components is a member.
type List struct {
	names map[string]struct{}
}

// Load reads path (one name per line); a missing file yields an empty
// List. Blank lines are skipped. No globs, no negation, no nested ignore
// files: this is loaded once, flat.
func Load(fs afero.Fs, path string) (*List, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &List{names: map[string]struct{}{}}, nil
		}
		return nil, xerrors.Errorf("could not read ignore file %s: %w", path, err)
	}

	names := map[string]struct{}{}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names[line] = struct{}{}
	}
	return &List{names: names}, nil
}

// IsIgnored reports whether any "/"-separated component of p is a member
// of the list, or is the repository's own .egit directory (always
// implicitly ignored by the hosting environment).
func (l *List) IsIgnored(p string) bool {
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part == ".egit" {
			return true
		}
		if _, ok := l.names[part]; ok {
			return true
		}
	}
	return false
}
