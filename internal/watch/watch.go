// Package watch recompiles palladium sources when they change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Settle is how long a file must stay quiet before a change is reported.
// Editors often emit several writes per save.
const Settle = 100 * time.Millisecond

// Watcher reports changes to files with a given extension.
type Watcher struct {
	w       *fsnotify.Watcher
	ext     string
	targets map[string]bool // explicit files
	dirs    map[string]bool // explicit directories, every file with ext
}

// New watches each path: a file is watched through its directory so that
// rename-on-save editors are seen, a directory is watched for every file
// with ext.
func New(ext string, paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{w: w, ext: ext, targets: make(map[string]bool), dirs: make(map[string]bool)}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		st, err := os.Stat(abs)
		if err != nil {
			w.Close()
			return nil, err
		}
		if st.IsDir() {
			fw.dirs[abs] = true
			dirs[abs] = true
			continue
		}
		fw.targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, err
		}
	}
	return fw, nil
}

func (fw *Watcher) Close() error { return fw.w.Close() }

// Run calls onChange with the absolute path of every file that was
// written or created, once it has settled. It returns when ctx is done or
// the underlying watcher fails. onChange runs on the Run goroutine, one
// call at a time.
func (fw *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	pending := make(map[string]time.Time)
	tick := time.NewTicker(Settle / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !fw.relevant(ev.Name) {
				continue
			}
			pending[ev.Name] = time.Now()
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			return err
		case now := <-tick.C:
			for path, at := range pending {
				if now.Sub(at) >= Settle {
					delete(pending, path)
					onChange(path)
				}
			}
		}
	}
}

func (fw *Watcher) relevant(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if fw.targets[abs] {
		return true
	}
	return fw.dirs[filepath.Dir(abs)] && filepath.Ext(abs) == fw.ext
}
