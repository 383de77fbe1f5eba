package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// testLimiter returns a limiter backed by an in-process miniredis.
func testLimiter(t *testing.T, limit int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRateLimiter(client, limit, window), mr
}

func doRequest(h http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/admin/posts", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl, _ := testLimiter(t, 3, time.Minute)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, code)
		}
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl, _ := testLimiter(t, 2, time.Minute)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest(h, "10.0.0.1:1234")
	doRequest(h, "10.0.0.1:1234")
	if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("third request: got %d, want 429", code)
	}

	// A different client is unaffected.
	if code := doRequest(h, "10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other client: got %d, want 200", code)
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl, mr := testLimiter(t, 1, time.Minute)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest(h, "10.0.0.1:1234")
	if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", code)
	}

	mr.FastForward(2 * time.Minute)

	if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("after window: got %d, want 200", code)
	}
}

func TestRateLimiterFailsOpenWhenValkeyDown(t *testing.T) {
	rl, mr := testLimiter(t, 1, time.Minute)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	mr.Close()

	if code := doRequest(h, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("valkey down: got %d, want 200 (fail open)", code)
	}
}
