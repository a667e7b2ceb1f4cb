package egit

import (
	"github.com/augustgit/egit/historygraph"
	"github.com/augustgit/egit/objects"
)

// LogEntry pairs a commit with the ref names (if any) pointing directly
// at it, so a log printer can annotate commits the way `git log
// --decorate` does.
type LogEntry struct {
	Oid    objects.Oid
	Commit objects.Commit
	Refs   []string
}

// Log walks the history reachable from start (mainline-first, each
// commit visited once) and returns it as a decorated list.
func (r *Repository) Log(start objects.Oid) ([]LogEntry, error) {
	refsByOid, err := r.refsByOid()
	if err != nil {
		return nil, err
	}

	ids, err := historygraph.Collect(r.store, []objects.Oid{start})
	if err != nil {
		return nil, err
	}

	entries := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		c, err := r.GetCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{Oid: id, Commit: c, Refs: refsByOid[id]})
	}
	return entries, nil
}

// refsByOid inverts ShowRefs into oid -> ref names, for decorating log
// output.
func (r *Repository) refsByOid() (map[objects.Oid][]string, error) {
	refs, err := r.ShowRefs()
	if err != nil {
		return nil, err
	}
	out := map[objects.Oid][]string{}
	for name, id := range refs {
		out[id] = append(out[id], name)
	}
	return out, nil
}
