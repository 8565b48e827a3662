package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fitcalc/internal/tracker"
)

// setupTest creates a router backed by a fresh SQLite weight store with the
// clock pinned to 2026-10-18.
func setupTest(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := tracker.NewSQLiteStore(filepath.Join(t.TempDir(), "weights.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	h := newHandler(store)
	h.now = func() time.Time { return time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC) }
	return newRouter(h), h
}

// doRequest sends a request with an optional JSON body.
func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the response body into a generic map.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return m
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{tracker.ErrNotFound, http.StatusNotFound},
		{tracker.ErrEntryExists, http.StatusConflict},
		{tracker.ErrInvalidEntry, http.StatusBadRequest},
		{http.ErrHandlerTimeout, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := errorStatus(tc.err); got != tc.want {
			t.Errorf("errorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestRequestID(t *testing.T) {
	router, _ := setupTest(t)

	w := doRequest(router, "GET", "/api/nutrition/plans", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID")
	}

	req := httptest.NewRequest("GET", "/api/nutrition/plans", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want client value", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	_, h := setupTest(t)
	srv := newServerHandler(h, []string{"https://app.example.com"})

	req := httptest.NewRequest("OPTIONS", "/api/nutrition/plan", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest("OPTIONS", "/api/nutrition/plan", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Allow-Origin %q", got)
	}
}

func TestSplitOrigins(t *testing.T) {
	if got := splitOrigins(""); len(got) != 1 || got[0] != "*" {
		t.Errorf("splitOrigins(\"\") = %v, want [*]", got)
	}
	got := splitOrigins(" https://a.test, ,https://b.test ")
	if len(got) != 2 || got[0] != "https://a.test" || got[1] != "https://b.test" {
		t.Errorf("splitOrigins = %v", got)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("DB_URL", "")
	t.Setenv("FITCALC_DB", "/tmp/w.db")
	cfg := loadConfig()
	if cfg.addr() != ":3000" {
		t.Errorf("addr = %q, want :3000", cfg.addr())
	}
	if cfg.SQLitePath != "/tmp/w.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
}
