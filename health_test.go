package copilotclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plccopilot/copilotclient/internal/testutil"
)

func TestHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("returns true for a healthy backend", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != healthPath {
				t.Errorf("probed %s, want %s", r.URL.Path, healthPath)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		c := newTestClient(t, Config{BaseURL: ts.URL})
		if !c.Health(ctx) {
			t.Error("got false, want true")
		}
	})

	t.Run("returns false for a non-2xx status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		c := newTestClient(t, Config{BaseURL: ts.URL})
		if c.Health(ctx) {
			t.Error("got true, want false")
		}
	})

	t.Run("never propagates transport errors", func(t *testing.T) {
		transport := testutil.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("dial tcp: connection refused")
		})
		c := newTestClient(t, Config{HTTPClient: &http.Client{Transport: transport}})

		// Must not panic or raise, only report false
		if c.Health(ctx) {
			t.Error("got true, want false for an unreachable backend")
		}
	})
}
