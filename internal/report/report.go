// Package report accumulates per-group outcomes into a run summary.
package report

import "github.com/dbsmedya/doppel/internal/types"

// Aggregator holds the running totals for one run. It is a pure
// accumulator with no side effects; totals only grow.
type Aggregator struct {
	report types.RunReport
}

// New creates an Aggregator tagged with a run ID.
func New(runID string, dryRun bool) *Aggregator {
	return &Aggregator{report: types.RunReport{RunID: runID, DryRun: dryRun}}
}

// GroupsFound records how many duplicate groups the grouper produced.
func (a *Aggregator) GroupsFound(n int) {
	a.report.GroupsFound = n
}

// GroupProcessed marks one group as having reached a terminal state.
func (a *Aggregator) GroupProcessed() {
	a.report.GroupsProcessed++
}

// FileRemoved records one confirmed, successful deletion.
func (a *Aggregator) FileRemoved(rec types.FileRecord) {
	a.report.FilesRemoved++
	a.report.BytesFreed += rec.Size
}

// FileFailed records one deletion that could not be completed.
func (a *Aggregator) FileFailed() {
	a.report.FilesFailed++
}

// Aborted marks the run as cut short by the operator.
func (a *Aggregator) Aborted() {
	a.report.Aborted = true
}

// Report returns the accumulated totals.
func (a *Aggregator) Report() types.RunReport {
	return a.report
}
