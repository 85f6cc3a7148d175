package copilotclient

import "io"

// ProjectContext is the caller-owned project payload round-tripped with
// every update call. The client serializes it as-is and never interprets
// its contents.
type ProjectContext struct {
	// DeviceConstants holds arbitrary key/value device constants
	DeviceConstants map[string]any `json:"device_constants"`

	// Information is the free-text project description accumulated so far
	Information string `json:"information"`
}

// FileAttachment is a file uploaded alongside an update call
type FileAttachment struct {
	// Name is the filename reported to the backend
	Name string

	// Reader supplies the file contents. It is consumed once, when the
	// request body is built.
	Reader io.Reader
}

// UpdateParams holds the inputs for an UpdateContext call
type UpdateParams struct {
	// Context is the current project context (required)
	Context ProjectContext

	// Stage is the workflow stage label (required, opaque to the client)
	Stage string

	// Message is the user's chat message (optional)
	Message string

	// MCQResponses are the selected answers for a multiple-choice turn (optional)
	MCQResponses []string

	// Files are attachments to upload with this turn (optional)
	Files []FileAttachment

	// PreviousCopilotMessage disambiguates which assistant turn the reply
	// continues (optional)
	PreviousCopilotMessage string

	// SessionID overrides the current session id for this call (optional).
	// Leave empty to use the client's current session.
	SessionID string
}

// UpdateResponse is the backend's reply to an update call
type UpdateResponse struct {
	UpdatedContext ProjectContext `json:"updated_context"`
	ChatMessage    string         `json:"chat_message"`
	SessionID      string         `json:"session_id"`
	CurrentStage   string         `json:"current_stage"`
	IsMCQ          bool           `json:"is_mcq"`
	IsMultiselect  bool           `json:"is_multiselect"`
	MCQQuestion    string         `json:"mcq_question,omitempty"`
	MCQOptions     []string       `json:"mcq_options,omitempty"`

	// GatheringRequirementsEstimatedProgress is the backend's progress
	// estimate for the requirements-gathering stage, 0.0-1.0. Nil when the
	// backend sent none.
	GatheringRequirementsEstimatedProgress *float64 `json:"gathering_requirements_estimated_progress,omitempty"`

	// GeneratedCode is the generated PLC code payload, when present
	GeneratedCode string `json:"generated_code,omitempty"`
}

// CleanupResult aggregates the outcome of cleaning up one or more sessions
type CleanupResult struct {
	// Messages collects the per-session backend messages
	Messages []string

	// CleanedSessions lists every session id the backend reported cleaned
	CleanedSessions []string

	// FilesRemoved is the total number of uploaded files removed
	FilesRemoved int
}

// cleanupResponse is the backend's reply to a single cleanup call
type cleanupResponse struct {
	Message         string   `json:"message"`
	CleanedSessions []string `json:"cleaned_sessions"`
	FilesRemoved    int      `json:"files_removed"`
}

// errorBody is the backend's best-effort error shape
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}
