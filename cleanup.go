package copilotclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"slices"
)

// Cleanup releases backend resources (uploaded files, in-memory context)
// for the given session ids, defaulting to the current session. The backend
// accepts one id per call, so the client fans out one request per id and
// aggregates the results; a failing id does not stop the others.
//
// When the current session is among the cleaned ones, the local identity is
// cleared from every storage tier and the next CurrentSessionID call mints
// a fresh id.
//
// Failures come back wrapped in ErrCleanupFailed alongside the partial
// result; callers conventionally treat them as best-effort and continue.
func (c *Client) Cleanup(ctx context.Context, sessionIDs ...string) (*CleanupResult, error) {
	if len(sessionIDs) == 0 {
		sessionIDs = []string{c.CurrentSessionID(ctx)}
	}

	result := &CleanupResult{}
	var errs []error

	for _, id := range sessionIDs {
		resp, err := c.cleanupOne(ctx, id)
		if err != nil {
			c.hooks.RunCleanup(ctx, id, 0, err)
			errs = append(errs, fmt.Errorf("session %s: %w", id, err))
			continue
		}
		c.hooks.RunCleanup(ctx, id, resp.FilesRemoved, nil)

		result.Messages = append(result.Messages, resp.Message)
		result.CleanedSessions = append(result.CleanedSessions, resp.CleanedSessions...)
		result.FilesRemoved += resp.FilesRemoved
	}

	if current := c.peekSessionID(); current != "" && slices.Contains(result.CleanedSessions, current) {
		c.clearSession(ctx)
	}

	if len(errs) > 0 {
		return result, fmt.Errorf("%w: %w", ErrCleanupFailed, errors.Join(errs...))
	}
	return result, nil
}

// cleanupOne issues the single-session cleanup call
func (c *Client) cleanupOne(ctx context.Context, sessionID string) (*cleanupResponse, error) {
	body, contentType, err := buildCleanupBody(sessionID)
	if err != nil {
		return nil, err
	}

	base := c.resolveBaseURL(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+cleanupPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrBackendUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, translateHTTPError("Cleanup", resp)
	}

	var out cleanupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// buildCleanupBody assembles the single-session cleanup form, shared by the
// explicit and exit-time paths
func buildCleanupBody(sessionID string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField(fieldSessionID, sessionID); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
