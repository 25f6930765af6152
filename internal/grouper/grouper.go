// Package grouper partitions the file catalog into duplicate groups by
// filename, and optionally into content-equivalence classes by digest.
package grouper

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/doppel/internal/digest"
	"github.com/dbsmedya/doppel/internal/logger"
	"github.com/dbsmedya/doppel/internal/types"
)

// Grouper accumulates file records as the walk produces them, keyed by
// filename in first-seen order.
type Grouper struct {
	byName        *orderedmap.OrderedMap[string, []types.FileRecord]
	caseSensitive bool
	total         int
}

// New creates an empty Grouper. With caseSensitive false, "Report.PDF"
// and "report.pdf" land in the same group.
func New(caseSensitive bool) *Grouper {
	return &Grouper{
		byName:        orderedmap.NewOrderedMap[string, []types.FileRecord](),
		caseSensitive: caseSensitive,
	}
}

// Add records one file under its filename key.
func (g *Grouper) Add(rec types.FileRecord) {
	g.total++
	key := baseName(rec.Path)
	if !g.caseSensitive {
		key = strings.ToLower(key)
	}
	members, _ := g.byName.Get(key)
	g.byName.Set(key, append(members, rec))
}

// Total returns the number of records added.
func (g *Grouper) Total() int { return g.total }

// Groups returns every duplicate group in first-seen order. Filenames
// with a single record are dropped; every returned group has at least
// two members.
func (g *Grouper) Groups() []types.DuplicateGroup {
	var groups []types.DuplicateGroup
	for el := g.byName.Front(); el != nil; el = el.Next() {
		if len(el.Value) < 2 {
			continue
		}
		groups = append(groups, types.DuplicateGroup{
			Name:    el.Key,
			Members: el.Value,
		})
	}
	return groups
}

// baseName returns the last path component without pulling in
// filepath's OS-specific cleaning.
func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	if i := strings.LastIndexByte(path, '\\'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Classifier subdivides a duplicate group into content-equivalence
// classes using streamed digests. Hashing is only ever applied to files
// that already collide by name.
type Classifier struct {
	dig *digest.Digester
	log *logger.Logger
}

// NewClassifier creates a Classifier around the given digester.
func NewClassifier(dig *digest.Digester, log *logger.Logger) *Classifier {
	return &Classifier{dig: dig, log: log}
}

// Classify partitions the group's members into content classes ordered
// by first-seen member. A member that cannot be read is excluded from
// every class and noted; the run continues.
func (c *Classifier) Classify(group types.DuplicateGroup) []types.ContentClass {
	byDigest := orderedmap.NewOrderedMap[string, []int]()

	for i, member := range group.Members {
		sum, err := c.dig.Sum(member.Path)
		if err != nil {
			c.log.Warnw("excluding unreadable member from content classes",
				"file", member.Path, "error", err)
			continue
		}
		indices, _ := byDigest.Get(sum)
		byDigest.Set(sum, append(indices, i))
	}

	var classes []types.ContentClass
	for el := byDigest.Front(); el != nil; el = el.Next() {
		classes = append(classes, types.ContentClass{
			Digest:  el.Key,
			Indices: el.Value,
		})
	}
	return classes
}
