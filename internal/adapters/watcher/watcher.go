// Package watcher implements file system watching for registry rescans.
package watcher

import (
	"context"
	"iter"

	"github.com/fsnotify/fsnotify"
	"go.autols.dev/autols/pkg/ports"
)

const eventChannelBuffer = 100

// Op represents the type of file system operation.
type Op uint8

const (
	// OpCreate indicates a file was created.
	OpCreate Op = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// Event represents a change to a file in the watched directory.
type Event struct {
	// Path is the path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation Op
}

// Watcher watches a registry directory for definition changes. The registry
// is a flat directory, so watching is non-recursive.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan Event
}

// NewWatcher creates a new file system watcher.
func NewWatcher(log ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    log,
		events:    make(chan Event, eventChannelBuffer),
	}, nil
}

// Start begins watching the given directory.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events. It ends when the
// watcher stops or the context passed to Start is canceled.
func (w *Watcher) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents converts raw fsnotify events and forwards them to the
// events channel.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			converted := convertEvent(event)
			if converted == nil {
				continue
			}

			select {
			case w.events <- *converted:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err.Error())
		}
	}
}

// convertEvent converts an fsnotify event to an Event. Chmod-only events
// yield nil.
func convertEvent(event fsnotify.Event) *Event {
	path := event.Name

	if event.Op&fsnotify.Write == fsnotify.Write {
		return &Event{Path: path, Operation: OpWrite}
	}

	if event.Op&fsnotify.Create == fsnotify.Create {
		return &Event{Path: path, Operation: OpCreate}
	}

	if event.Op&fsnotify.Remove == fsnotify.Remove {
		return &Event{Path: path, Operation: OpRemove}
	}

	if event.Op&fsnotify.Rename == fsnotify.Rename {
		return &Event{Path: path, Operation: OpRename}
	}

	return nil
}
