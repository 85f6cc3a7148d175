// Package hooks provides observability callbacks for the copilot client.
// Hooks never influence control flow: the client calls them after the fact
// and ignores anything they do.
package hooks

import (
	"context"
	"sync"
)

// SessionMismatchHook is called when the backend echoes a different session
// id than the one the client sent
type SessionMismatchHook func(ctx context.Context, sent, received string)

// CleanupHook is called after an explicit cleanup attempt for a session.
// err is nil on success.
type CleanupHook func(ctx context.Context, sessionID string, filesRemoved int, err error)

// ProbeHook is called after each local endpoint probe
type ProbeHook func(ctx context.Context, port int, healthy bool)

// Registry holds all registered hooks
type Registry struct {
	mu              sync.RWMutex
	sessionMismatch []SessionMismatchHook
	cleanup         []CleanupHook
	probe           []ProbeHook
}

// NewRegistry creates a new hook registry
func NewRegistry() *Registry {
	return &Registry{}
}

// OnSessionMismatch registers a hook for session id disagreements
func (r *Registry) OnSessionMismatch(hook SessionMismatchHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessionMismatch = append(r.sessionMismatch, hook)
}

// OnCleanup registers a hook for cleanup attempts
func (r *Registry) OnCleanup(hook CleanupHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleanup = append(r.cleanup, hook)
}

// OnProbe registers a hook for endpoint probes
func (r *Registry) OnProbe(hook ProbeHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probe = append(r.probe, hook)
}

// RunSessionMismatch invokes all session mismatch hooks
func (r *Registry) RunSessionMismatch(ctx context.Context, sent, received string) {
	r.mu.RLock()
	hooks := r.sessionMismatch
	r.mu.RUnlock()
	for _, hook := range hooks {
		hook(ctx, sent, received)
	}
}

// RunCleanup invokes all cleanup hooks
func (r *Registry) RunCleanup(ctx context.Context, sessionID string, filesRemoved int, err error) {
	r.mu.RLock()
	hooks := r.cleanup
	r.mu.RUnlock()
	for _, hook := range hooks {
		hook(ctx, sessionID, filesRemoved, err)
	}
}

// RunProbe invokes all probe hooks
func (r *Registry) RunProbe(ctx context.Context, port int, healthy bool) {
	r.mu.RLock()
	hooks := r.probe
	r.mu.RUnlock()
	for _, hook := range hooks {
		hook(ctx, port, healthy)
	}
}
