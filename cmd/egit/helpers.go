package main

import (
	egit "github.com/augustgit/egit"
	"github.com/augustgit/egit/internal/pathutil"
)

// loadRepository discovers the repository root starting at cfg.c and
// opens it.
func loadRepository(cfg *globalFlags) (*egit.Repository, error) {
	root, err := pathutil.RepoRootFromPath(cfg.fs, cfg.c.String())
	if err != nil {
		return nil, err
	}
	return egit.Open(cfg.fs, root)
}
