// Package catalog walks a directory tree and produces file records for
// every regular file it can reach.
package catalog

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dbsmedya/doppel/internal/config"
	"github.com/dbsmedya/doppel/internal/logger"
	"github.com/dbsmedya/doppel/internal/types"
)

// ErrNotDirectory reports a scan root that exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Walker traverses a directory tree depth-first in lexical order, so a
// fixed tree always yields records in the same order. Symbolic links are
// never followed and entries that cannot be stat'd are skipped, not fatal.
type Walker struct {
	fs  afero.Fs
	cfg *config.Config
	log *logger.Logger

	scanned int
	skipped int
}

// NewWalker creates a Walker over the given filesystem.
func NewWalker(fs afero.Fs, cfg *config.Config, log *logger.Logger) *Walker {
	return &Walker{fs: fs, cfg: cfg, log: log}
}

// Scanned returns the number of files emitted so far.
func (w *Walker) Scanned() int { return w.scanned }

// Skipped returns the number of entries skipped due to read errors.
func (w *Walker) Skipped() int { return w.skipped }

// Walk emits a FileRecord for every regular file under root, calling fn
// as records are discovered rather than materializing the whole catalog.
// It returns a *types.PathError if root does not exist or is not a
// directory; an error returned by fn stops the walk and is passed through.
func (w *Walker) Walk(root string, fn func(types.FileRecord) error) error {
	root = filepath.Clean(root)

	info, err := w.fs.Stat(root)
	if err != nil {
		return &types.PathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &types.PathError{Path: root, Err: ErrNotDirectory}
	}

	w.scanned = 0
	w.skipped = 0
	visited := map[string]struct{}{root: {}}

	if err := w.walkDir(root, visited, fn); err != nil {
		return err
	}

	w.log.Infow("scan complete", "files", w.scanned, "skipped", w.skipped)
	return nil
}

func (w *Walker) walkDir(dir string, visited map[string]struct{}, fn func(types.FileRecord) error) error {
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		// Unreadable directory: note it and move on.
		w.skipped++
		w.log.Warnw("skipping unreadable directory", "dir", dir, "error", err)
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if w.cfg.Excluded(name) {
			w.log.Debugw("excluded by config", "name", name, "dir", dir)
			continue
		}

		path := filepath.Join(dir, name)

		if entry.Mode()&os.ModeSymlink != 0 {
			// Never follow links; a linked directory could cycle back
			// into an ancestor.
			w.log.Debugw("skipping symlink", "path", path)
			continue
		}

		if entry.IsDir() {
			if _, seen := visited[path]; seen {
				continue
			}
			visited[path] = struct{}{}
			if err := w.walkDir(path, visited, fn); err != nil {
				return err
			}
			continue
		}

		if !entry.Mode().IsRegular() {
			continue
		}

		record := types.FileRecord{
			Path:    path,
			Size:    entry.Size(),
			ModTime: entry.ModTime(),
		}

		w.scanned++
		if interval := w.cfg.Scan.ProgressInterval; interval > 0 && w.scanned%interval == 0 {
			w.log.Infow("scan progress", "files", w.scanned)
		}

		if err := fn(record); err != nil {
			return err
		}
	}

	return nil
}
