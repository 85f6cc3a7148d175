package copilotclient

import (
	"context"

	"github.com/google/uuid"
)

// CurrentSessionID returns the current session id, minting and persisting a
// fresh one if none exists. It never fails: storage-tier write errors go to
// the OnError callback and the in-memory id remains authoritative.
func (c *Client) CurrentSessionID(ctx context.Context) string {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	if c.sessionID == "" {
		c.sessionID = c.mintSessionLocked(ctx)
	}
	return c.sessionID
}

// NewSessionID unconditionally mints a fresh session id, persists it to all
// storage tiers and makes it current. Use it to explicitly start over.
func (c *Client) NewSessionID(ctx context.Context) string {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	c.sessionID = c.mintSessionLocked(ctx)
	return c.sessionID
}

// mintSessionLocked generates a new id and writes it to every tier.
// uuid.New draws from crypto/rand, giving the 128 bits of entropy the
// session correlation scheme requires. Caller holds sessionMu.
func (c *Client) mintSessionLocked(ctx context.Context) string {
	id := uuid.New().String()
	c.reportError(c.store.Set(ctx, c.sessionKey, id))
	return id
}

// restoreSession loads the session id from the first tier that has one,
// minting a fresh one otherwise, then re-writes the winner to every tier so
// they are consistent again.
func (c *Client) restoreSession(ctx context.Context) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	id, ok, err := c.store.Get(ctx, c.sessionKey)
	c.reportError(err)
	if !ok {
		c.sessionID = c.mintSessionLocked(ctx)
		return
	}
	c.sessionID = id
	c.reportError(c.store.Set(ctx, c.sessionKey, id))
}

// peekSessionID returns the current id without minting one
func (c *Client) peekSessionID() string {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.sessionID
}

// clearSession drops the in-memory id and removes it from every tier, so
// the next CurrentSessionID call mints a new one
func (c *Client) clearSession(ctx context.Context) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	c.sessionID = ""
	c.reportError(c.store.Delete(ctx, c.sessionKey))
}
