// Package watch turns file-system notifications for a single file into a
// stream of change ticks, built on fsnotify.
package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher emits a tick on Changes every time the watched file is written,
// created or renamed into place.
type Watcher struct {
	w      *fsnotify.Watcher
	target string
	chC    chan struct{}
	erC    chan error
}

// New watches path. The parent directory is watched so that editors that
// replace the file through a rename are still observed.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err = w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{
		w:      w,
		target: abs,
		chC:    make(chan struct{}, 1),
		erC:    make(chan error, 1),
	}, nil
}

// Run forwards events until ctx is done or the underlying watcher closes.
// Bursts of events coalesce into a single pending tick.
func (fw *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case fw.chC <- struct{}{}:
			default:
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			select {
			case fw.erC <- err:
			default:
			}
		}
	}
}

// Changes delivers one tick per (coalesced) modification of the file.
func (fw *Watcher) Changes() <-chan struct{} { return fw.chC }

// Errors delivers watcher errors; at most one is buffered.
func (fw *Watcher) Errors() <-chan error { return fw.erC }

// Close stops the underlying watcher.
func (fw *Watcher) Close() error { return fw.w.Close() }
