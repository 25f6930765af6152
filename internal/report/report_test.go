package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/doppel/internal/types"
)

func TestAggregatorAccumulates(t *testing.T) {
	a := New("run-1", false)
	a.GroupsFound(3)

	a.GroupProcessed()
	a.FileRemoved(types.FileRecord{Path: "/a", Size: 100, ModTime: time.Unix(0, 0)})
	a.FileRemoved(types.FileRecord{Path: "/b", Size: 250, ModTime: time.Unix(0, 0)})

	a.GroupProcessed()
	a.FileFailed()

	r := a.Report()
	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, 3, r.GroupsFound)
	assert.Equal(t, 2, r.GroupsProcessed)
	assert.Equal(t, 2, r.FilesRemoved)
	assert.Equal(t, 1, r.FilesFailed)
	assert.Equal(t, int64(350), r.BytesFreed)
	assert.False(t, r.Aborted)
	assert.False(t, r.DryRun)
}

func TestAggregatorMonotonic(t *testing.T) {
	a := New("run-2", false)
	for i := 0; i < 5; i++ {
		before := a.Report()
		a.FileRemoved(types.FileRecord{Size: 10})
		after := a.Report()
		assert.Greater(t, after.FilesRemoved, before.FilesRemoved)
		assert.Greater(t, after.BytesFreed, before.BytesFreed)
	}
}

func TestAggregatorAborted(t *testing.T) {
	a := New("run-3", false)
	a.Aborted()
	assert.True(t, a.Report().Aborted)
}

func TestAggregatorDryRun(t *testing.T) {
	a := New("run-4", true)
	r := a.Report()
	assert.True(t, r.DryRun)
	assert.Zero(t, r.FilesRemoved)
	assert.Zero(t, r.BytesFreed)
}
