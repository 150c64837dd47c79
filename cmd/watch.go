package cmd

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const watchDebounce = 100 * time.Millisecond

// watchSet is the set of local inputs which trigger a regeneration.
type watchSet struct {
	files    map[string]bool
	patterns []string
	dirs     []string
}

// watchTargets resolves file inputs through the import paths, the way
// they are read when generating.
func watchTargets(fs afero.Fs, importPaths, inputs []string) ([]string, error) {
	targets := make([]string, len(inputs))
	for i, in := range inputs {
		if isURL(in) || isGlob(in) {
			targets[i] = in
			continue
		}

		p, err := resolvePath(fs, importPaths, in)
		if err != nil {
			return nil, err
		}
		targets[i] = p
	}
	return targets, nil
}

func newWatchSet(inputs []string) (*watchSet, error) {
	ws := &watchSet{files: make(map[string]bool)}
	dirs := make(map[string]bool)

	for _, in := range inputs {
		if isURL(in) {
			continue
		}

		abs, err := filepath.Abs(in)
		if err != nil {
			return nil, err
		}

		if !isGlob(in) {
			ws.files[abs] = true
			dirs[filepath.Dir(abs)] = true
			continue
		}

		ws.patterns = append(ws.patterns, filepath.ToSlash(abs))
		base, _ := doublestar.SplitPattern(filepath.ToSlash(abs))

		// fsnotify is not recursive, so every directory below base is watched
		err = filepath.WalkDir(filepath.FromSlash(base), func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				dirs[p] = true
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for dir := range dirs {
		ws.dirs = append(ws.dirs, dir)
	}
	return ws, nil
}

func (ws *watchSet) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if ws.files[abs] {
		return true
	}

	for _, p := range ws.patterns {
		if ok, _ := doublestar.Match(p, filepath.ToSlash(abs)); ok {
			return true
		}
	}
	return false
}

// watchInputs calls regen whenever a watched input changes, until ctx is done.
func watchInputs(ctx context.Context, ws *watchSet, regen func(context.Context)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, dir := range ws.dirs {
		if err = w.Add(dir); err != nil {
			return err
		}
	}
	zap.L().Info("watching for changes", zap.Strings("dirs", ws.dirs))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !ws.matches(ev.Name) {
				continue
			}

			zap.L().Debug("input changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			fire = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			zap.L().Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			regen(ctx)
		}
	}
}
