package copilotclient

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// freePort grabs an unused port and releases it, leaving a candidate that
// refuses connections
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to grab a port: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return port
}

// localHealthServer runs a health endpoint on a real loopback port and
// counts the probes it answers
func localHealthServer(t *testing.T, hits *atomic.Int32) (*httptest.Server, int) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthPath {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	port := ts.Listener.Addr().(*net.TCPAddr).Port
	return ts, port
}

func TestResolveBaseURL(t *testing.T) {
	ctx := context.Background()

	t.Run("without probing always uses production", func(t *testing.T) {
		c := newTestClient(t, Config{BaseURL: "https://copilot.example.com"})
		if got := c.resolveBaseURL(ctx); got != "https://copilot.example.com" {
			t.Errorf("got %q, want the production base URL", got)
		}
	})

	t.Run("first healthy candidate wins and is cached", func(t *testing.T) {
		var hits atomic.Int32
		ts, livePort := localHealthServer(t, &hits)
		defer ts.Close()
		deadPort := freePort(t)

		c := newTestClient(t, Config{BaseURL: "https://copilot.example.com", LocalProbing: true},
			WithLocalPorts(deadPort, livePort),
			WithProbeTimeout(500*time.Millisecond))

		if got := c.resolveBaseURL(ctx); got != localBaseURL(livePort) {
			t.Fatalf("got %q, want %q", got, localBaseURL(livePort))
		}
		if c.lastPort() != livePort {
			t.Errorf("last working port = %d, want %d cached", c.lastPort(), livePort)
		}

		// Second resolution goes straight to the cached port, skipping the
		// dead candidate
		before := hits.Load()
		if got := c.resolveBaseURL(ctx); got != localBaseURL(livePort) {
			t.Fatalf("got %q on re-resolve", got)
		}
		if hits.Load() != before+1 {
			t.Errorf("cached resolve hit health %d times, want exactly 1", hits.Load()-before)
		}
	})

	t.Run("falls back to production when no candidate answers", func(t *testing.T) {
		c := newTestClient(t, Config{BaseURL: "https://copilot.example.com", LocalProbing: true},
			WithLocalPorts(freePort(t), freePort(t)),
			WithProbeTimeout(500*time.Millisecond))

		if got := c.resolveBaseURL(ctx); got != "https://copilot.example.com" {
			t.Errorf("got %q, want the production fallback", got)
		}
	})

	t.Run("probe hook observes outcomes", func(t *testing.T) {
		var hits atomic.Int32
		ts, livePort := localHealthServer(t, &hits)
		defer ts.Close()

		c := newTestClient(t, Config{BaseURL: "https://copilot.example.com", LocalProbing: true},
			WithLocalPorts(livePort),
			WithProbeTimeout(500*time.Millisecond))

		var probedPort int
		var probedHealthy bool
		c.OnProbe(func(ctx context.Context, port int, healthy bool) {
			probedPort, probedHealthy = port, healthy
		})

		c.resolveBaseURL(ctx)
		if probedPort != livePort || !probedHealthy {
			t.Errorf("hook got (%d, %v), want (%d, true)", probedPort, probedHealthy, livePort)
		}
	})
}
