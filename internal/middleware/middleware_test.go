package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"web3-todo-list/internal/middleware"
	"web3-todo-list/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newEngine(cfg middleware.Config) (*gin.Engine, middleware.Middleware) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, cfg)
	r := gin.New()
	r.Use(mw.RequestID(), mw.CORS())
	return r, mw
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request
	r, mw := newEngine(middleware.Config{RequestsPerMin: 10})
	r.GET("/tasks", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(remote string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.RemoteAddr = remote
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do("10.0.0.1:1001"); code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", code)
	}
	if code := do("10.0.0.2:1000"); code != http.StatusOK {
		t.Errorf("other client: expected 200, got %d", code)
	}
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	r, mw := newEngine(middleware.Config{RequestsPerMin: 10})
	r.GET("/tasks", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			req.RemoteAddr = "10.0.0.9:1000"
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("expected one request within the burst, got %d", got)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r, mw := newEngine(middleware.Config{})
	r.GET("/tasks", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	r, _ := newEngine(middleware.Config{AllowedOrigins: []string{"http://localhost:3000"}})
	r.POST("/tasks", func(c *gin.Context) { c.Status(http.StatusCreated) })

	t.Run("preflight from allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("unexpected allow origin %q", got)
		}
	})

	t.Run("actual request from other origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
		req.Header.Set("Origin", "http://evil.example")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("expected handler to run, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no allow origin, got %q", got)
		}
	})
}

func TestRequestID(t *testing.T) {
	r, _ := newEngine(middleware.Config{})
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)
	if seen != "abc-123" || w.Header().Get(middleware.HeaderRequestID) != "abc-123" {
		t.Errorf("expected propagated id, got ctx=%q header=%q", seen, w.Header().Get(middleware.HeaderRequestID))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if len(seen) != 36 || w.Header().Get(middleware.HeaderRequestID) != seen {
		t.Errorf("expected generated uuid, got %q", seen)
	}
}
