// Package watch re-parses script files as they change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/jsparse/engine"
	"github.com/t14raptor/jsparse/internal/source"
)

// Submitter runs a request, typically an *engine.Pool.
type Submitter interface {
	Submit(ctx context.Context, req engine.Request) (engine.Response, error)
}

// Result is delivered once per settled change of a file. Err is set when the
// file could not be read or the request failed to run.
type Result struct {
	Path     string
	Response engine.Response
	Err      error
}

type Options struct {
	Debounce   time.Duration
	Extensions []string
	Logger     *slog.Logger
}

// Watcher debounces file events and submits an outline request for the
// latest content of each changed file. A response that arrives after a newer
// change to the same file has been submitted is dropped.
type Watcher struct {
	pool     Submitter
	onResult func(Result)
	opts     Options
	logger   *slog.Logger
	fsw      *fsnotify.Watcher

	mu     sync.Mutex
	timers map[string]*time.Timer
	seq    map[string]uint64
	wg     sync.WaitGroup
}

// New creates a watcher. Paths are added with Add; nothing happens until Run.
func New(pool Submitter, onResult func(Result), opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 400 * time.Millisecond
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".js"}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		pool:     pool,
		onResult: onResult,
		opts:     opts,
		logger:   logger,
		fsw:      fsw,
		timers:   make(map[string]*time.Timer),
		seq:      make(map[string]uint64),
	}, nil
}

// Add watches a file or a directory. Directories are watched for the files
// directly inside them.
func (w *Watcher) Add(path string) error {
	if err := w.fsw.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	w.logger.Info("Watching", "path", path)
	return nil
}

// Run handles events until ctx is cancelled. It closes the underlying
// watcher and waits for pending parses before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		w.stopTimers()
		w.wg.Wait()
		w.fsw.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping file watcher")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.matches(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.Schedule(ctx, event.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(w.opts.Extensions, ext)
}

// Schedule parses path once no further Schedule call for it has happened
// for the debounce interval.
func (w *Watcher) Schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok && t.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.timers[path] = time.AfterFunc(w.opts.Debounce, func() {
		defer w.wg.Done()
		w.parse(ctx, path)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.timers, path)
	}
}

func (w *Watcher) next(path string) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq[path]++
	return w.seq[path]
}

func (w *Watcher) latest(path string, seq uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seq[path] == seq
}

func (w *Watcher) parse(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}
	seq := w.next(path)

	src, err := source.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			w.logger.Debug("File vanished before parsing", "path", path)
			return
		}
		w.deliver(path, seq, Result{Path: path, Err: err})
		return
	}

	resp, err := w.pool.Submit(ctx, engine.Request{Source: src, Task: engine.TaskOutline})
	if err != nil && ctx.Err() != nil {
		return
	}
	w.deliver(path, seq, Result{Path: path, Response: resp, Err: err})
}

func (w *Watcher) deliver(path string, seq uint64, res Result) {
	if !w.latest(path, seq) {
		w.logger.Debug("Dropping stale result", "path", path, "seq", seq)
		return
	}
	w.logger.Debug("Parsed", "path", path, "seq", seq, "error", res.Err != nil || res.Response.IsError)
	w.onResult(res)
}
