package engineconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last change before the file is reloaded.
// Editors often write a file several times per save.
const debounce = 100 * time.Millisecond

// Watcher reloads a preferences file when it changes on disk. Reloaded preferences arrive
// on Updates; read errors arrive on Errors. Both channels close when the context ends.
type Watcher struct {
	Updates chan EnginePrefs
	Errors  chan error
	path    string
	fs      *fsnotify.Watcher
}

// Watch starts watching path. The parent directory is watched so that atomic
// rename-on-save is seen; it must exist.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("engineconfig: watch: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("engineconfig: watch: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("engineconfig: watch: %w", err)
	}
	w := &Watcher{
		Updates: make(chan EnginePrefs, 4),
		Errors:  make(chan error, 4),
		path:    filepath.Clean(path),
		fs:      fw,
	}
	go w.run(ctx)
	return w, nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.Errors)
	defer close(w.Updates)
	defer w.fs.Close()
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Every change restarts the wait so the last write is the one loaded.
			timer.Reset(debounce)
		case <-timer.C:
			p, err := LoadFrom(w.path)
			if err != nil {
				w.send(ctx, nil, err)
				continue
			}
			w.send(ctx, &p, nil)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(ctx, nil, err)
		}
	}
}

func (w *Watcher) send(ctx context.Context, p *EnginePrefs, err error) {
	if p != nil {
		select {
		case w.Updates <- *p:
		case <-ctx.Done():
		}
		return
	}
	select {
	case w.Errors <- err:
	default:
		// Drop when the loop is behind; the next change retries.
	}
}
