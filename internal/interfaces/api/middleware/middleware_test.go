package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"interview-scheduler/internal/pkg/auth"
	"interview-scheduler/internal/pkg/logger"
)

const secret = "test-secret"

func serve(e *echo.Echo, req *http.Request) int {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRoleGuards(t *testing.T) {
	e := echo.New()
	e.Use(Authenticate(auth.NewResolver(secret, []string{"boss@x.com"}), logger.Nop()))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/any", ok, RequireAuth)
	e.GET("/recruiter", ok, RequireRecruiter)

	boss, _ := auth.MakeToken("boss@x.com", secret, time.Minute)
	cand, _ := auth.MakeToken("cand@x.com", secret, time.Minute)

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"anonymous any", "/any", "", http.StatusUnauthorized},
		{"bad token any", "/any", "garbage", http.StatusUnauthorized},
		{"candidate any", "/any", cand, http.StatusOK},
		{"anonymous recruiter", "/recruiter", "", http.StatusUnauthorized},
		{"candidate recruiter", "/recruiter", cand, http.StatusForbidden},
		{"recruiter recruiter", "/recruiter", boss, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			if got := serve(e, req); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireCronKey(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	tests := []struct {
		name   string
		secret string
		key    string
		want   int
	}{
		{"no secret configured", "", "", http.StatusUnauthorized},
		{"no secret configured with key", "", "anything", http.StatusUnauthorized},
		{"missing header", "s3", "", http.StatusUnauthorized},
		{"wrong key", "s3", "s4", http.StatusUnauthorized},
		{"prefix only", "s3cret", "s3", http.StatusUnauthorized},
		{"exact", "s3cret", "s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/cron", ok, RequireCronKey(tt.secret))
			req := httptest.NewRequest(http.MethodGet, "/cron", nil)
			if tt.key != "" {
				req.Header.Set(HeaderCronKey, tt.key)
			}
			if got := serve(e, req); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 0.001, 2)
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, rl.Middleware())

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(e, req)
	}

	for i := 0; i < 2; i++ {
		if got := call("10.0.0.1"); got != http.StatusOK {
			t.Fatalf("call %d = %d", i, got)
		}
	}
	if got := call("10.0.0.1"); got != http.StatusTooManyRequests {
		t.Errorf("over burst = %d, want 429", got)
	}
	if got := call("10.0.0.2"); got != http.StatusOK {
		t.Errorf("other client = %d, want 200", got)
	}

	rl.evict(0)
	if got := call("10.0.0.1"); got != http.StatusOK {
		t.Errorf("after eviction = %d, want 200", got)
	}
}
