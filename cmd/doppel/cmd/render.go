package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/doppel/internal/types"
)

// consoleRenderer turns the engine's structured events into terminal
// output. All formatting and color lives here; the core never sees it.
type consoleRenderer struct {
	out     io.Writer
	content bool
}

func newConsoleRenderer(out io.Writer, content bool) *consoleRenderer {
	return &consoleRenderer{out: out, content: content}
}

func (r *consoleRenderer) Group(seq, total int, group types.DuplicateGroup, classes []types.ContentClass) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, color.Bold.Sprintf("Duplicates for: %s (%d/%d)", group.Name, seq, total))
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintf(r.out, "Found %d copies:\n", len(group.Members))

	digests := digestByMember(classes)
	pathWidth := 0
	for _, m := range group.Members {
		if w := runewidth.StringWidth(m.Path); w > pathWidth {
			pathWidth = w
		}
	}

	for i, m := range group.Members {
		pad := strings.Repeat(" ", pathWidth-runewidth.StringWidth(m.Path))
		line := fmt.Sprintf("  %d. %s%s  %s  %s",
			i+1, m.Path, pad,
			types.FormatSize(m.Size),
			m.ModTime.Format("2006-01-02 15:04:05"),
		)
		if digest, ok := digests[i]; ok {
			line += "  " + color.Gray.Sprintf("[%s]", types.ShortDigest(digest))
		}
		fmt.Fprintln(r.out, line)
	}

	if r.content && len(classes) > 0 {
		r.renderClasses(classes)
	}

	fmt.Fprintln(r.out, "\nOptions:")
	fmt.Fprintln(r.out, "  Enter numbers (e.g. '2,3') to delete those files")
	fmt.Fprintln(r.out, "  'k' to keep all (skip)")
	fmt.Fprintln(r.out, "  'a' to auto-keep newest (delete others)")
	fmt.Fprintln(r.out, "  'q' to quit")
}

func (r *consoleRenderer) renderClasses(classes []types.ContentClass) {
	if len(classes) == 1 {
		fmt.Fprintln(r.out, color.Green.Sprint("All copies have identical content"))
		return
	}

	fmt.Fprintln(r.out, color.Yellow.Sprintf(
		"Warning: files have different content! (%d unique versions)", len(classes)))
	for i, class := range classes {
		var members []string
		for _, idx := range class.Indices {
			members = append(members, fmt.Sprintf("%d", idx+1))
		}
		fmt.Fprintf(r.out, "  version %d (hash %s): files %s\n",
			i+1, types.ShortDigest(class.Digest), strings.Join(members, ", "))
	}
}

func (r *consoleRenderer) Plan(plan types.DeletionPlan) {
	fmt.Fprintf(r.out, "\nWill delete %d file(s):\n", len(plan.Targets))
	for _, target := range plan.Targets {
		fmt.Fprintf(r.out, "  %s (%s)\n", target.Path, types.FormatSize(target.Size))
	}
	fmt.Fprintf(r.out, "Total space to free: %s\n", types.FormatSize(plan.BytesToFree()))
}

func (r *consoleRenderer) Kept(rec types.FileRecord) {
	fmt.Fprintln(r.out, color.Green.Sprintf("Keeping newest: %s", rec.Path))
}

func (r *consoleRenderer) Deleted(rec types.FileRecord) {
	fmt.Fprintf(r.out, "Deleted: %s\n", rec.Path)
}

func (r *consoleRenderer) DeleteFailed(rec types.FileRecord, err error) {
	fmt.Fprintln(r.out, color.Red.Sprintf("Failed to delete %s: %v", rec.Path, err))
}

func (r *consoleRenderer) Notice(message string) {
	fmt.Fprintln(r.out, message)
}

func (r *consoleRenderer) DryRunEstimate(groups, potentialRemovals int) {
	fmt.Fprintf(r.out, "\nDry run complete. Found %d sets of duplicates.\n", groups)
	fmt.Fprintf(r.out, "Potential files to remove: %d\n", potentialRemovals)
}

func (r *consoleRenderer) Summary(rep types.RunReport) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	title := "Run Summary"
	if rep.DryRun {
		title = "Run Summary (dry run)"
	}
	fmt.Fprintln(r.out, color.Bold.Sprint(title))
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintf(r.out, "Duplicate groups found:     %d\n", rep.GroupsFound)
	fmt.Fprintf(r.out, "Groups processed:           %d\n", rep.GroupsProcessed)
	fmt.Fprintf(r.out, "Files removed:              %d\n", rep.FilesRemoved)
	if rep.FilesFailed > 0 {
		fmt.Fprintln(r.out, color.Red.Sprintf("Failed deletions:           %d", rep.FilesFailed))
	}
	fmt.Fprintf(r.out, "Space freed:                %s\n", types.FormatSize(rep.BytesFreed))
	if rep.Aborted {
		fmt.Fprintln(r.out, color.Yellow.Sprint("Run aborted before all groups were processed."))
	}
}

// digestByMember flattens content classes into a member-index lookup.
func digestByMember(classes []types.ContentClass) map[int]string {
	digests := map[int]string{}
	for _, class := range classes {
		for _, idx := range class.Indices {
			digests[idx] = class.Digest
		}
	}
	return digests
}
