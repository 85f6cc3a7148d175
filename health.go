package copilotclient

import (
	"context"
	"io"
	"net/http"
)

// Health reports whether the backend answers its health endpoint. It is a
// best-effort probe for status indicators: every failure, including
// transport errors, comes back as false and nothing is ever raised.
func (c *Client) Health(ctx context.Context) bool {
	base := c.resolveBaseURL(ctx)

	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, base+healthPath, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
