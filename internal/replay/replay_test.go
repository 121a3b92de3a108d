package replay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chariotsofiron/colonizer/internal/catanlog"
)

func TestWatcherStopIsIdempotent(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "chat.log")
	if err := os.WriteFile(logPath, []byte(""), 0o600); err != nil {
		t.Fatalf("write log: %v", err)
	}

	w, err := New(logPath, Config{})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Stop()
	w.Stop()
}

func TestWatcherEmitsEventsOnAppend(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "chat.log")
	if err := os.WriteFile(logPath, []byte(""), 0o600); err != nil {
		t.Fatalf("write log: %v", err)
	}

	eventsCh := make(chan []catanlog.Event, 1)
	w, err := New(logPath, Config{
		Parser: catanlog.NewParserWithUsername("Lookaside"),
		OnEvents: func(events []catanlog.Event) {
			eventsCh <- events
		},
	})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()

	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	if _, err := f.WriteString("GuestLookaside got: brick\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	select {
	case events := <-eventsCh:
		if len(events) != 1 || events[0].Kind != catanlog.Acquire {
			t.Fatalf("got %+v, want one Acquire event", events)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
}

func TestWatcherSetOffsetSkipsExistingContent(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "chat.log")
	existing := "GuestLookaside got: brick\n"
	if err := os.WriteFile(logPath, []byte(existing), 0o600); err != nil {
		t.Fatalf("write log: %v", err)
	}

	eventsCh := make(chan []catanlog.Event, 1)
	w, err := New(logPath, Config{
		Parser:   catanlog.NewParserWithUsername("Lookaside"),
		OnEvents: func(events []catanlog.Event) { eventsCh <- events },
	})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()
	w.SetOffset(int64(len(existing)))

	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case events := <-eventsCh:
		t.Fatalf("unexpected events from pre-offset content: %+v", events)
	case <-time.After(500 * time.Millisecond):
	}
}
