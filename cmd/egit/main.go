// Command egit is a minimal, from-scratch reimplementation of a content
// addressed version control system: an object store, a reference
// namespace, tree snapshotting, commits, history traversal, and a
// three-way merge engine.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
