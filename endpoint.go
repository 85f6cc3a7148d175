package copilotclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Backend endpoint paths
const (
	healthPath  = "/health"
	updatePath  = "/api/v1/context/update"
	cleanupPath = "/api/v1/context/cleanup"
)

// localBaseURL builds the base URL for a local candidate port
func localBaseURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// resolveBaseURL decides which backend base URL to use for a call. Without
// local probing it is always the production URL. With probing, the last
// working port is tried first, then the candidate list in order; the first
// port whose health endpoint answers wins and is cached. Resolution runs
// before every outbound call because local dev servers restart; only the
// last-working-port cache carries over.
func (c *Client) resolveBaseURL(ctx context.Context) string {
	if !c.localProbing {
		return c.baseURL
	}

	if port := c.lastPort(); port != 0 && c.probePort(ctx, port) {
		return localBaseURL(port)
	}

	for _, port := range c.localPorts {
		if c.probePort(ctx, port) {
			c.setLastPort(port)
			return localBaseURL(port)
		}
	}

	return c.baseURL
}

// probePort issues a short-timeout health probe against a local candidate.
// Failures mean "try the next candidate" and never propagate.
func (c *Client) probePort(ctx context.Context, port int) bool {
	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, localBaseURL(port)+healthPath, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.hooks.RunProbe(ctx, port, false)
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	healthy := resp.StatusCode >= 200 && resp.StatusCode < 300
	c.hooks.RunProbe(ctx, port, healthy)
	return healthy
}

// lastPort returns the cached last working local port, 0 when none
func (c *Client) lastPort() int {
	c.portMu.Lock()
	defer c.portMu.Unlock()
	return c.lastWorkingPort
}

// setLastPort caches the last working local port
func (c *Client) setLastPort(port int) {
	c.portMu.Lock()
	defer c.portMu.Unlock()
	c.lastWorkingPort = port
}
