package copilotclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Multipart field names, fixed by the backend contract
const (
	fieldSessionID              = "session_id"
	fieldCurrentContext         = "current_context"
	fieldCurrentStage           = "current_stage"
	fieldMessage                = "message"
	fieldMCQResponses           = "mcq_responses"
	fieldPreviousCopilotMessage = "previous_copilot_message"
	fieldFiles                  = "files"
)

// UpdateContext sends the project context (plus any message, selected
// answers and attachments) to the backend and returns its reply.
//
// The call is at-most-once: there is no client-side retry. When the backend
// echoes a session id different from the one sent, the session mismatch
// hooks fire and the response is still returned — the backend is the source
// of truth, but the disagreement is worth surfacing.
func (c *Client) UpdateContext(ctx context.Context, params UpdateParams) (*UpdateResponse, error) {
	if params.Stage == "" {
		return nil, fmt.Errorf("%w: Stage is required", ErrInvalidConfig)
	}

	sessionID := params.SessionID
	if sessionID == "" {
		sessionID = c.CurrentSessionID(ctx)
	}

	body, contentType, err := buildUpdateBody(sessionID, params)
	if err != nil {
		return nil, NewAPIError("UpdateContext", err)
	}

	base := c.resolveBaseURL(ctx)

	if c.updateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.updateTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+updatePath, bytes.NewReader(body))
	if err != nil {
		return nil, NewAPIError("UpdateContext", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrBackendUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, translateHTTPError("UpdateContext", resp)
	}

	var out UpdateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, NewAPIError("UpdateContext", err)
	}

	if out.SessionID != "" && out.SessionID != sessionID {
		c.hooks.RunSessionMismatch(ctx, sessionID, out.SessionID)
	}

	return &out, nil
}

// buildUpdateBody assembles the multipart form for an update call. Optional
// parts are omitted entirely when unset.
func buildUpdateBody(sessionID string, params UpdateParams) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	contextJSON, err := json.Marshal(params.Context)
	if err != nil {
		return nil, "", err
	}

	if err := w.WriteField(fieldSessionID, sessionID); err != nil {
		return nil, "", err
	}
	if err := w.WriteField(fieldCurrentContext, string(contextJSON)); err != nil {
		return nil, "", err
	}
	if err := w.WriteField(fieldCurrentStage, params.Stage); err != nil {
		return nil, "", err
	}

	if params.Message != "" {
		if err := w.WriteField(fieldMessage, params.Message); err != nil {
			return nil, "", err
		}
	}
	if len(params.MCQResponses) > 0 {
		responsesJSON, err := json.Marshal(params.MCQResponses)
		if err != nil {
			return nil, "", err
		}
		if err := w.WriteField(fieldMCQResponses, string(responsesJSON)); err != nil {
			return nil, "", err
		}
	}
	if params.PreviousCopilotMessage != "" {
		if err := w.WriteField(fieldPreviousCopilotMessage, params.PreviousCopilotMessage); err != nil {
			return nil, "", err
		}
	}
	for _, file := range params.Files {
		part, err := w.CreateFormFile(fieldFiles, file.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// translateHTTPError maps a non-2xx response to a user-facing error:
// canned messages for well-known statuses, the backend's own detail when
// the body parses, and a generic status line otherwise.
func translateHTTPError(op string, resp *http.Response) error {
	detail := parseErrorDetail(resp.Body)

	switch {
	case resp.StatusCode == http.StatusRequestEntityTooLarge:
		return &APIError{Op: op, StatusCode: resp.StatusCode, Detail: ErrPayloadTooLarge.Error(), Err: ErrPayloadTooLarge}
	case resp.StatusCode == http.StatusUnsupportedMediaType:
		return &APIError{Op: op, StatusCode: resp.StatusCode, Detail: ErrUnsupportedMedia.Error(), Err: ErrUnsupportedMedia}
	case resp.StatusCode >= 500 && detail != "":
		return &APIError{Op: op, StatusCode: resp.StatusCode, Detail: detail, Err: ErrServerError}
	case detail != "":
		return &APIError{Op: op, StatusCode: resp.StatusCode, Detail: detail}
	default:
		return &APIError{Op: op, StatusCode: resp.StatusCode, Detail: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)}
	}
}

// parseErrorDetail extracts a human-readable message from an error body,
// returning "" when none can be found
func parseErrorDetail(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Detail != "" {
		return body.Detail
	}
	return body.Message
}
