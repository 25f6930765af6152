// Package resolver drives the per-group confirmation workflow: present a
// duplicate group, await an operator decision, validate it, confirm, and
// execute deletions with per-file failure isolation.
package resolver

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/dbsmedya/doppel/internal/grouper"
	"github.com/dbsmedya/doppel/internal/logger"
	"github.com/dbsmedya/doppel/internal/report"
	"github.com/dbsmedya/doppel/internal/types"
)

// DecisionProvider supplies raw operator tokens. The production provider
// reads from the terminal; tests replay a scripted queue. A returned
// error means input is gone (EOF, interrupt) and aborts the run.
type DecisionProvider interface {
	GroupDecision(group types.DuplicateGroup) (string, error)
	ConfirmDeletion(plan types.DeletionPlan) (string, error)
}

// Renderer receives structured presentation events. The core never
// formats terminal output itself.
type Renderer interface {
	Group(seq, total int, group types.DuplicateGroup, classes []types.ContentClass)
	Plan(plan types.DeletionPlan)
	Kept(rec types.FileRecord)
	Deleted(rec types.FileRecord)
	DeleteFailed(rec types.FileRecord, err error)
	Notice(message string)
	DryRunEstimate(groups, potentialRemovals int)
	Summary(rep types.RunReport)
}

// Options configure one engine run.
type Options struct {
	DryRun  bool
	Auto    bool
	Content bool
}

// Engine resolves duplicate groups one at a time, strictly sequentially.
// Interactive confirmation blocks the whole pipeline; no deletion ever
// races with another.
type Engine struct {
	fs         afero.Fs
	classifier *grouper.Classifier
	provider   DecisionProvider
	renderer   Renderer
	agg        *report.Aggregator
	log        *logger.Logger
	opts       Options
}

// NewEngine creates an Engine. The classifier may be nil when content
// mode is off.
func NewEngine(fs afero.Fs, classifier *grouper.Classifier, provider DecisionProvider,
	renderer Renderer, agg *report.Aggregator, log *logger.Logger, opts Options) *Engine {
	return &Engine{
		fs:         fs,
		classifier: classifier,
		provider:   provider,
		renderer:   renderer,
		agg:        agg,
		log:        log,
		opts:       opts,
	}
}

// Run processes every duplicate group and returns the final report.
// Once the operator quits, no further group is presented; whatever was
// accumulated so far is finalized.
func (e *Engine) Run(groups []types.DuplicateGroup) types.RunReport {
	e.agg.GroupsFound(len(groups))

	switch {
	case len(groups) == 0:
		e.renderer.Notice("no duplicate filenames found")
	case e.opts.DryRun:
		e.dryRun(groups)
	default:
		for i, group := range groups {
			if aborted := e.resolveGroup(i+1, len(groups), group); aborted {
				e.agg.Aborted()
				e.log.Infow("run aborted by operator", "groups_processed", i)
				break
			}
		}
	}

	rep := e.agg.Report()
	e.renderer.Summary(rep)
	return rep
}

// dryRun renders every group without touching the filesystem.
func (e *Engine) dryRun(groups []types.DuplicateGroup) {
	totalFiles := 0
	for i, group := range groups {
		e.renderer.Group(i+1, len(groups), group, e.classify(group))
		e.agg.GroupProcessed()
		totalFiles += len(group.Members)
	}
	// One survivor per group is the floor for any resolution.
	e.renderer.DryRunEstimate(len(groups), totalFiles-len(groups))
}

// resolveGroup runs the state machine for one group. It returns true if
// the operator aborted the run.
func (e *Engine) resolveGroup(seq, total int, group types.DuplicateGroup) bool {
	classes := e.classify(group)
	e.renderer.Group(seq, total, group, classes)
	log := e.log.WithGroup(group.Name)

	if e.opts.Auto {
		e.applyAuto(group, log)
		return false
	}

	for {
		raw, err := e.provider.GroupDecision(group)
		if err != nil {
			log.Debugw("decision input closed", "error", err)
			return true
		}

		decision, err := ParseDecision(raw, len(group.Members))
		if err != nil {
			e.renderer.Notice(err.Error())
			continue
		}

		switch decision.Action {
		case ActionQuit:
			return true

		case ActionKeepAll:
			e.renderer.Notice("keeping all files")
			e.agg.GroupProcessed()
			return false

		case ActionAuto:
			e.applyAuto(group, log)
			return false

		case ActionDelete:
			plan := PlanFromIndices(group, decision.Indices)
			e.renderer.Plan(plan)

			response, err := e.provider.ConfirmDeletion(plan)
			if err != nil {
				log.Debugw("confirmation input closed", "error", err)
				return true
			}
			if !Affirmative(response) {
				e.renderer.Notice("deletion cancelled")
				e.agg.GroupProcessed()
				return false
			}

			e.execute(plan, log)
			e.agg.GroupProcessed()
			return false
		}
	}
}

func (e *Engine) applyAuto(group types.DuplicateGroup, log *logger.Logger) {
	keep, plan := AutoPlan(group)
	e.renderer.Kept(keep)
	e.execute(plan, log)
	e.agg.GroupProcessed()
}

// execute deletes each planned target independently. A failure on one
// target never aborts the rest of the plan.
func (e *Engine) execute(plan types.DeletionPlan, log *logger.Logger) {
	for _, target := range plan.Targets {
		err := e.fs.Remove(target.Path)
		switch {
		case err == nil:
			e.renderer.Deleted(target)
			e.agg.FileRemoved(target)
			log.Infow("deleted file", "file", target.Path, "size", target.Size)

		case os.IsNotExist(err):
			// Another actor got there first; the end state is what the
			// operator asked for.
			e.renderer.Notice(fmt.Sprintf("already removed: %s", target.Path))
			log.Infow("file already gone", "file", target.Path)

		default:
			delErr := &types.DeleteError{Path: target.Path, Err: err}
			e.renderer.DeleteFailed(target, delErr)
			e.agg.FileFailed()
			log.Warnw("deletion failed", "file", target.Path, "error", err)
		}
	}
}

func (e *Engine) classify(group types.DuplicateGroup) []types.ContentClass {
	if !e.opts.Content || e.classifier == nil {
		return nil
	}
	return e.classifier.Classify(group)
}
