// Package replay tails a local colonist.io chat-log text file and feeds
// appended lines into a catanlog.Parser, for development and testing
// without a live browser session.
package replay

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chariotsofiron/colonizer/internal/catanlog"
)

// Watcher tails one chat-log file, reporting newly appended Events as they
// arrive.
type Watcher struct {
	Path string

	offset   int64
	watcher  *fsnotify.Watcher
	done     chan struct{}
	mu       sync.Mutex
	readMu   sync.Mutex
	stopOnce sync.Once

	cleanPath string
	parser    *catanlog.Parser
	onEvents  func(events []catanlog.Event)
	onError   func(err error)
}

// Config configures a Watcher.
type Config struct {
	// Parser receives each appended line. If nil, a fresh catanlog.NewParser
	// is used.
	Parser *catanlog.Parser
	// OnEvents is called with every Event produced from newly appended
	// lines, in order, each time the file grows.
	OnEvents func(events []catanlog.Event)
	// OnError is called with any read or watch error encountered.
	OnError func(err error)
}

// New returns a Watcher for the chat log at path.
func New(path string, cfg Config) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	parser := cfg.Parser
	if parser == nil {
		parser = catanlog.NewParser()
	}

	return &Watcher{
		Path:      path,
		watcher:   w,
		done:      make(chan struct{}),
		cleanPath: filepath.Clean(path),
		parser:    parser,
		onEvents:  cfg.OnEvents,
		onError:   cfg.OnError,
	}, nil
}

// Start begins watching for appended content. Existing content is read
// immediately unless SetOffset was called first.
func (w *Watcher) Start() error {
	slog.Info("replay watcher starting", "path", w.Path)
	dir := filepath.Dir(w.Path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	if w.offset == 0 {
		if err := w.readNewContent(); err != nil {
			_ = err // non-fatal; the file may not exist yet
		}
	}

	go w.watchLoop()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		slog.Info("replay watcher stopped", "path", w.Path)
		close(w.done)
		_ = w.watcher.Close()
	})
}

// SetOffset sets the initial read offset, for resuming a previous session.
func (w *Watcher) SetOffset(offset int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.offset = offset
}

func (w *Watcher) watchLoop() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) && filepath.Clean(event.Name) == w.cleanPath {
				if err := w.readNewContent(); err != nil && w.onError != nil {
					w.onError(err)
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		case <-ticker.C:
			if err := w.readNewContent(); err != nil && w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) readNewContent() error {
	w.readMu.Lock()
	defer w.readMu.Unlock()

	f, err := os.Open(w.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if info.Size() < w.offset {
		w.offset = 0
	}
	if info.Size() <= w.offset {
		return nil
	}
	startOffset := w.offset

	if _, err := f.Seek(startOffset, 0); err != nil {
		return err
	}

	endOffset := info.Size()
	w.offset = endOffset

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	var events []catanlog.Event
	for _, line := range lines {
		if ev, ok := w.parser.ParseLine(line); ok {
			events = append(events, ev)
		}
	}

	if len(events) > 0 && w.onEvents != nil {
		slog.Debug("replay watcher produced events", "path", w.Path, "count", len(events))
		w.onEvents(events)
	}

	return nil
}
