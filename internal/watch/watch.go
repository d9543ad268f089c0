// Package watch re-runs a callback whenever a single input file changes.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temp file and renaming it over the original keep
// triggering events. Bursts of events are debounced into one callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/patrol/internal/logging"
)

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// ChangeEvent is the last event of a debounced burst.
type ChangeEvent struct {
	Type  EventType
	Path  string
	Count int // raw events folded into this one
}

// ChangeHandler handles a debounced change. A returned error is logged and
// watching continues.
type ChangeHandler func(ctx context.Context, ev ChangeEvent) error

// Watcher watches one file.
type Watcher struct {
	path  string
	delay time.Duration
	fs    *fsnotify.Watcher
	log   logging.Logger
}

// New starts watching path's directory. delay is the quiet period required
// before a burst of events is delivered.
func New(path string, delay time.Duration, log logging.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %q: %w", path, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: new watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch: add %q: %w", filepath.Dir(abs), err)
	}
	if log == nil {
		log = logging.NewNop()
	}

	return &Watcher{
		path:  abs,
		delay: delay,
		fs:    fs,
		log:   log.WithComponent("watch"),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers debounced changes to handle until ctx is done or the
// underlying watcher is closed. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context, handle ChangeHandler) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var pending *ChangeEvent
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			t, relevant := w.classify(ev)
			if !relevant {
				continue
			}
			if pending == nil {
				pending = &ChangeEvent{Path: w.path}
			}
			pending.Type = t
			pending.Count++
			timer.Reset(w.delay)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.log.Warn(ctx, err, "event queue overflowed")
				continue
			}
			w.log.Error(ctx, err, "watcher error")

		case <-timer.C:
			if pending == nil {
				continue
			}
			ev := *pending
			pending = nil
			w.log.Debug(ctx, "change", "type", ev.Type.String(), "events", ev.Count)
			if err := handle(ctx, ev); err != nil {
				w.log.Warn(ctx, err, "change handler failed", "path", ev.Path)
			}
		}
	}
}

// Close stops the underlying watcher; a running Run returns.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// classify maps an fsnotify event on the watched file to an EventType.
// Events on other files and pure permission changes are irrelevant.
func (w *Watcher) classify(ev fsnotify.Event) (EventType, bool) {
	if filepath.Clean(ev.Name) != w.path {
		return 0, false
	}
	switch {
	case ev.Has(fsnotify.Create):
		return EventTypeCreated, true
	case ev.Has(fsnotify.Write):
		return EventTypeModified, true
	case ev.Has(fsnotify.Remove):
		return EventTypeDeleted, true
	case ev.Has(fsnotify.Rename):
		return EventTypeRenamed, true
	default:
		return 0, false
	}
}
