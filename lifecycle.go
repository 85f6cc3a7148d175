package copilotclient

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ExitCleanup dispatches a best-effort cleanup for the current session
// through the beacon sender. It never returns an error and its outcome is
// unobservable: the backend's idle-session auto-expiry covers lost
// deliveries. Call it from the host's shutdown path, or let
// RegisterExitCleanup wire it to process signals.
//
// The local storage tiers are left untouched — on the exit path the process
// is going away with them, and a restart that finds the old id simply gets
// an empty backend session.
func (c *Client) ExitCleanup() {
	sessionID := c.peekSessionID()
	if sessionID == "" {
		return
	}

	body, contentType, err := buildCleanupBody(sessionID)
	if err != nil {
		c.reportError(err)
		return
	}

	base := c.resolveBaseURL(context.Background())
	c.beacon.Send(base+cleanupPath, body, contentType)
}

// RegisterExitCleanup installs a signal handler that runs ExitCleanup when
// the process receives SIGINT or SIGTERM — the closest Go analogue of a
// page's unload notifications. The returned stop function uninstalls the
// handler; calling it more than once is safe.
//
// The handler only attempts cleanup; it does not exit the process. Hosts
// that terminate on signal themselves should call ExitCleanup from their
// own shutdown sequence instead.
func (c *Client) RegisterExitCleanup() (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			c.ExitCleanup()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
