package reload

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, "client registration", func() bool { return hub.Count() == 1 })

	if n := hub.Broadcast(MessageReload); n != 1 {
		t.Fatalf("Broadcast reached %d clients, want 1", n)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != MessageReload {
		t.Errorf("message = %q, want %q", msg, MessageReload)
	}

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	waitFor(t, "client removal", func() bool { return hub.Count() == 0 })

	if n := hub.Broadcast(MessageReload); n != 0 {
		t.Errorf("Broadcast with no clients = %d", n)
	}
}

func TestHubClose(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer conn.Close()
	}
	waitFor(t, "two clients", func() bool { return hub.Count() == 2 })

	hub.Close()
	if hub.Count() != 0 {
		t.Errorf("Count after Close = %d", hub.Count())
	}
}

func startWatcher(t *testing.T, cfg WatcherConfig) <-chan []string {
	t.Helper()
	changes := make(chan []string, 8)
	w, err := NewWatcher(cfg, func(_ context.Context, changed []string) {
		changes <- changed
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(w.Stop)
	return changes
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherDebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, WatcherConfig{Paths: []string{dir}, Debounce: 100 * time.Millisecond})

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		writeFile(t, filepath.Join(dir, name), "x")
	}

	select {
	case changed := <-changes:
		if len(changed) != 3 {
			t.Errorf("changed = %v, want 3 paths in one batch", changed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case extra := <-changes:
		t.Errorf("unexpected second batch: %v", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherNewSubdirectory(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, WatcherConfig{Paths: []string{dir}, Debounce: 50 * time.Millisecond})

	sub := filepath.Join(dir, "work")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("directory creation not reported")
	}

	writeFile(t, filepath.Join(sub, "ringallets.md"), "# Ringallets")
	select {
	case changed := <-changes:
		if changed[0] != filepath.Join(sub, "ringallets.md") {
			t.Errorf("changed = %v", changed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("file in new directory not reported")
	}
}

func TestWatcherFiltersFilesAndIgnores(t *testing.T) {
	dir := t.TempDir()
	contentFile := filepath.Join(dir, "content.yml")
	writeFile(t, contentFile, "title: a")
	out := filepath.Join(dir, "dist")
	if err := os.Mkdir(out, 0o755); err != nil {
		t.Fatal(err)
	}

	changes := startWatcher(t, WatcherConfig{
		Paths:    []string{contentFile, filepath.Join(dir, "missing")},
		Ignore:   []string{out},
		Debounce: 50 * time.Millisecond,
	})

	writeFile(t, filepath.Join(dir, "other.txt"), "x")
	writeFile(t, filepath.Join(dir, ".content.yml.swp"), "x")
	select {
	case changed := <-changes:
		t.Fatalf("unwatched files reported: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}

	writeFile(t, contentFile, "title: b")
	select {
	case changed := <-changes:
		if len(changed) != 1 || changed[0] != contentFile {
			t.Errorf("changed = %v, want [%s]", changed, contentFile)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("content file change not reported")
	}
}

func TestWatcherStopAfterFailedStart(t *testing.T) {
	w, err := NewWatcher(WatcherConfig{Paths: []string{t.TempDir(), "bad\x00path"}}, nil, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(context.Background()); err == nil {
		t.Fatal("Start with an invalid path should fail")
	}

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}

	// The fsnotify watcher was released with the failed Start.
	if err := w.watcher.Add(t.TempDir()); err == nil {
		t.Error("fsnotify watcher still open")
	}
}
