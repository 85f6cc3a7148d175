package beacon

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// DefaultSendTimeout bounds how long an exit-time send may stall shutdown
const DefaultSendTimeout = 3 * time.Second

// HTTPSender delivers beacons as plain POSTs. Unlike a browser's
// guaranteed-attempt primitive, a goroutine would be killed when the process
// exits, so Send blocks for at most the configured timeout — that bounded
// synchronous attempt is the delivery guarantee. The response is discarded
// and errors are swallowed.
type HTTPSender struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPSender creates an HTTP beacon sender. A nil client uses a dedicated
// default client; a zero timeout uses DefaultSendTimeout.
func NewHTTPSender(client *http.Client, timeout time.Duration) *HTTPSender {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &HTTPSender{client: client, timeout: timeout}
}

// Send attempts a single POST and reports nothing back
func (s *HTTPSender) Send(url string, body []byte, contentType string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
