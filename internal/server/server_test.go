package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/nkuebler/portfolio/internal/content"
	"github.com/nkuebler/portfolio/internal/logging"
	"github.com/nkuebler/portfolio/internal/reload"
	"github.com/nkuebler/portfolio/internal/site"
)

func siteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":           "<h1>home</h1>",
		"about.html":           "<h1>about</h1>",
		"404.html":             "<h1>lost</h1>",
		"style.css":            "body{}",
		"work/ringallets.html": "<h1>ringallets</h1>",
	}
	for rel, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestServer(t *testing.T, cfg Config, hub *reload.Hub) *Server {
	t.Helper()
	if cfg.SiteDir == "" {
		cfg.SiteDir = siteDir(t)
	}
	return New(cfg, content.Default(), hub, nil)
}

func get(srv *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0}, nil)

	w := get(srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestStageEndpoint(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)

	w := get(srv, "/api/stage?vw=1200&vh=800&grid=1000")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp stageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	r := resp.Rect
	if resp.Device != "desktop" || r.Top != 64 || r.Left != 152 || r.Width != 896 || r.Height != 672 || r.Radius != 20 {
		t.Errorf("stage = %+v", resp)
	}

	mobile := get(srv, "/api/stage?vw=375&vh=667")
	if !strings.Contains(mobile.Body.String(), `"device":"mobile"`) {
		t.Errorf("mobile stage = %s", mobile.Body.String())
	}
}

func TestStageEndpointRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)

	tests := []string{
		"/api/stage",
		"/api/stage?vw=abc&vh=800",
		"/api/stage?vw=1200",
		"/api/stage?vw=0&vh=800",
		"/api/stage?vw=1200&vh=-5",
		"/api/stage?vw=1200&vh=800&grid=wide",
		"/api/stage?vw=NaN&vh=800",
	}
	for _, target := range tests {
		if w := get(srv, target); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestGalleryEndpoint(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)

	w := get(srv, "/api/gallery")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var m site.Manifest
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m.Concepts) != 12 {
		t.Errorf("concepts = %d, want 12", len(m.Concepts))
	}

	next := content.Default()
	next.Concepts = next.Concepts[:2]
	srv.SetSite(next)
	if err := json.Unmarshal(get(srv, "/api/gallery").Body.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if len(m.Concepts) != 2 {
		t.Errorf("concepts after SetSite = %d, want 2", len(m.Concepts))
	}
}

func TestStaticCleanURLs(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)

	tests := []struct {
		target string
		status int
		body   string
	}{
		{"/", http.StatusOK, "home"},
		{"/index.html", http.StatusOK, "home"},
		{"/about", http.StatusOK, "about"},
		{"/about.html", http.StatusOK, "about"},
		{"/work/ringallets", http.StatusOK, "ringallets"},
		{"/style.css", http.StatusOK, "body{}"},
		{"/missing", http.StatusNotFound, "lost"},
		{"/work", http.StatusNotFound, "lost"},
		{"/../../etc/passwd", http.StatusNotFound, "lost"},
	}
	for _, tt := range tests {
		w := get(srv, tt.target)
		if w.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.target, w.Code, tt.status)
		}
		if !strings.Contains(w.Body.String(), tt.body) {
			t.Errorf("%s: body = %q, want %q", tt.target, w.Body.String(), tt.body)
		}
	}
}

func TestNotFoundWithoutPage(t *testing.T) {
	srv := newTestServer(t, Config{SiteDir: t.TempDir()}, nil)
	if w := get(srv, "/nope"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestReloadSocket(t *testing.T) {
	if w := get(newTestServer(t, Config{}, nil), "/ws/reload"); w.Code != http.StatusNotFound {
		t.Errorf("reload route without hub: status = %d, want 404", w.Code)
	}

	hub := reload.NewHub(nil)
	srv := newTestServer(t, Config{}, hub)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws/reload", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	hub.Broadcast(reload.MessageReload)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil || string(msg) != reload.MessageReload {
		t.Errorf("read = %q, %v", msg, err)
	}
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	srv := New(Config{SiteDir: siteDir(t)}, content.Default(), nil, logging.New(&buf, log.DebugLevel))

	get(srv, "/about")

	out := buf.String()
	if !strings.Contains(out, "request") || !strings.Contains(out, "path=/about") || !strings.Contains(out, "status=200") {
		t.Errorf("log output = %q", out)
	}
}
