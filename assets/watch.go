package assets

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the files of an asset directory, so that cached
// clips can be thrown away and the next load picks up the new version.
type Watcher struct {
	w    *fsnotify.Watcher
	dir  string
	done chan struct{}
}

// Watch starts watching dir. changed is called from the watcher goroutine with
// the name of the file relative to dir, every time it is written, created,
// removed or renamed.
func Watch(dir string, changed func(name string)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}
	ret := &Watcher{w: w, dir: dir, done: make(chan struct{})}
	go ret.run(changed)
	return ret, nil
}

func (w *Watcher) run(changed func(name string)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Rel(w.dir, ev.Name)
			if err != nil {
				continue
			}
			changed(filepath.ToSlash(name))
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Printf("asset watcher: %v", err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
