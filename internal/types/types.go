// Package types defines the core data model shared across the doppel pipeline.
package types

import "time"

// FileRecord holds the metadata captured for one regular file during the
// catalog walk. Records are immutable once created.
type FileRecord struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// DuplicateGroup is a set of files sharing the same filename key.
// Members are kept in discovery order and a group always has at least
// two members; singletons are never reported.
type DuplicateGroup struct {
	Name    string
	Members []FileRecord
}

// TotalSize returns the combined size of all members in bytes.
func (g DuplicateGroup) TotalSize() int64 {
	var total int64
	for _, m := range g.Members {
		total += m.Size
	}
	return total
}

// NewestIndex returns the index of the member with the greatest
// modification time. Ties resolve to the earliest-seen member.
func (g DuplicateGroup) NewestIndex() int {
	newest := 0
	for i := 1; i < len(g.Members); i++ {
		if g.Members[i].ModTime.After(g.Members[newest].ModTime) {
			newest = i
		}
	}
	return newest
}

// ContentClass is a subset of a duplicate group whose members are
// byte-identical according to the content digest. Indices refer to
// positions in the owning group's Members slice.
type ContentClass struct {
	Digest  string
	Indices []int
}

// DeletionPlan lists the files selected for removal from one group.
type DeletionPlan struct {
	Targets []FileRecord
}

// BytesToFree returns the total size of all planned targets.
func (p DeletionPlan) BytesToFree() int64 {
	var total int64
	for _, t := range p.Targets {
		total += t.Size
	}
	return total
}

// RunReport accumulates the outcome of a whole run.
type RunReport struct {
	RunID           string
	GroupsFound     int
	GroupsProcessed int
	FilesRemoved    int
	FilesFailed     int
	BytesFreed      int64
	Aborted         bool
	DryRun          bool
}
