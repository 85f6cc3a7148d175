package beacon

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPSender(t *testing.T) {
	t.Run("posts body and content type", func(t *testing.T) {
		var gotMethod, gotContentType string
		var gotBody []byte
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
		}))
		defer ts.Close()

		s := NewHTTPSender(nil, 0)
		s.Send(ts.URL, []byte("payload"), "application/test")

		if gotMethod != http.MethodPost {
			t.Errorf("method = %q, want POST", gotMethod)
		}
		if gotContentType != "application/test" {
			t.Errorf("content type = %q, want application/test", gotContentType)
		}
		if string(gotBody) != "payload" {
			t.Errorf("body = %q, want the sent payload", gotBody)
		}
	})

	t.Run("swallows delivery failures", func(t *testing.T) {
		s := NewHTTPSender(nil, 100*time.Millisecond)
		// Nothing listens here; Send must return without panicking
		s.Send("http://127.0.0.1:1/cleanup", []byte("x"), "text/plain")
	})

	t.Run("returns within the timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer ts.Close()

		s := NewHTTPSender(nil, 50*time.Millisecond)
		start := time.Now()
		s.Send(ts.URL, nil, "text/plain")
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("Send blocked for %v, want it bounded by the timeout", elapsed)
		}
	})
}

func TestNoop(t *testing.T) {
	// Noop must accept anything and do nothing
	NewNoop().Send("http://example.com", []byte("x"), "text/plain")
}
