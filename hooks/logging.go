package hooks

import (
	"context"
	"log"
)

// LoggingHooks provides built-in logging hooks for observability
type LoggingHooks struct {
	logger *log.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger
func NewLoggingHooks(logger *log.Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// DefaultLoggingHooks creates logging hooks with the default logger
func DefaultLoggingHooks() *LoggingHooks {
	return &LoggingHooks{logger: log.Default()}
}

// Attach registers all logging hooks with the registry
func (h *LoggingHooks) Attach(r *Registry) {
	r.OnSessionMismatch(h.SessionMismatch)
	r.OnCleanup(h.Cleanup)
	r.OnProbe(h.Probe)
}

// SessionMismatch logs a session id disagreement between client and backend
func (h *LoggingHooks) SessionMismatch(ctx context.Context, sent, received string) {
	h.logger.Printf("[CopilotClient] Session ID mismatch: sent %s, received %s", sent, received)
}

// Cleanup logs the outcome of a cleanup attempt
func (h *LoggingHooks) Cleanup(ctx context.Context, sessionID string, filesRemoved int, err error) {
	if err != nil {
		h.logger.Printf("[CopilotClient] Cleanup of session %s failed: %v", sessionID, err)
		return
	}
	h.logger.Printf("[CopilotClient] Cleaned up session %s (%d files removed)", sessionID, filesRemoved)
}

// Probe logs the outcome of a local endpoint probe
func (h *LoggingHooks) Probe(ctx context.Context, port int, healthy bool) {
	if healthy {
		h.logger.Printf("[CopilotClient] Local endpoint on port %d is healthy", port)
	}
}
