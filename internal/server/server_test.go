package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/search"
	"github.com/ziadkadry99/bpguide/internal/site"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	reg, err := guide.Load("", "")
	if err != nil {
		t.Fatalf("guide.Load: %v", err)
	}
	renderer, err := site.NewRenderer(reg, site.Options{Title: "Oracle Unifier BP Guide", Footer: "© Test"})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	index, err := search.Build(context.Background(), renderer)
	if err != nil {
		t.Fatalf("search.Build: %v", err)
	}
	t.Cleanup(func() { index.Close() })
	return New(cfg, reg, renderer, index, zap.NewNop())
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status      string `json:"status"`
		Connections int    `json:"connections"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "ok" || body.Connections != 0 {
		t.Errorf("unexpected health body %+v", body)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`data-mode="live"`,
		`data-section="introduction"`,
		`class="nav-item active" href="/sections/introduction"`,
		"Oracle Unifier BP Master Guide",
		`href="/sections/introduction?sidebar=open"`,
		"© Test",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	if strings.Contains(body, `class="sidebar open"`) {
		t.Error("sidebar should start closed")
	}
}

func TestSectionPage(t *testing.T) {
	srv := newTestServer(t, Config{})

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/sections/faq", http.StatusOK, "Frequently Asked Questions"},
		{"/sections/simple-bp", http.StatusOK, "is-placeholder"},
		{"/sections/faq?sidebar=open", http.StatusOK, `class="sidebar open"`},
		{"/sections/nonexistent", http.StatusNotFound, "section not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, srv, tt.path)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestAssets(t *testing.T) {
	srv := newTestServer(t, Config{})

	css := get(t, srv, "/assets/style.css")
	if css.Code != http.StatusOK || !strings.HasPrefix(css.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style.css: %d %s", css.Code, css.Header().Get("Content-Type"))
	}
	js := get(t, srv, "/assets/script.js")
	if js.Code != http.StatusOK || !strings.Contains(js.Body.String(), "WebSocket") {
		t.Errorf("script.js: %d", js.Code)
	}
}

func TestAPISections(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/api/sections")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var groups []guide.Group
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}
	if groups[0].Category.Key != guide.CategoryOverview || groups[3].Category.Key != guide.CategoryResources {
		t.Errorf("groups out of order: %s .. %s", groups[0].Category.Key, groups[3].Category.Key)
	}
	total := 0
	for _, g := range groups {
		total += len(g.Sections)
	}
	if total != 20 {
		t.Errorf("expected 20 sections, got %d", total)
	}
}

func TestAPISection(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/api/sections/faq")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var c guide.Content
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.SectionID != "faq" || c.Placeholder || c.Accordions() != 5 {
		t.Errorf("unexpected faq content: id=%s placeholder=%v accordions=%d", c.SectionID, c.Placeholder, c.Accordions())
	}

	w = get(t, srv, "/api/sections/simple-bp")
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !c.Placeholder {
		t.Error("simple-bp should be a placeholder")
	}

	if w := get(t, srv, "/api/sections/nonexistent"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAPISearch(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/api/search?q=budget&limit=3")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Results []search.Hit `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Results) == 0 || len(body.Results) > 3 {
		t.Fatalf("expected 1-3 results, got %d", len(body.Results))
	}

	w = get(t, srv, "/api/search?q=")
	if !strings.Contains(w.Body.String(), `"results":[]`) {
		t.Errorf("empty query should return an empty list, got %s", w.Body.String())
	}

	if w := get(t, srv, "/api/search?q=cost&limit=many"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRunWithCancelledContext(t *testing.T) {
	base := newTestServer(t, Config{})
	for i := 0; i < 20; i++ {
		srv := New(Config{Port: 0}, base.reg, base.renderer, base.index, zap.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx, time.Second) }()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("run %d: Run returned %v", i, err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("run %d: Run did not stop with a cancelled context", i)
		}
	}
}
