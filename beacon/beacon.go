// Package beacon provides the best-effort delivery primitive used for
// exit-time cleanup. A Sender attempts delivery and reports nothing back:
// no return value, no error surface. This mirrors what the client needs at
// process teardown, where ordinary request/response flows are not guaranteed
// to complete and failures are unobservable by design.
package beacon

// Sender dispatches a fire-and-forget request. Implementations must never
// block the caller for longer than their configured send window and must
// never panic.
type Sender interface {
	Send(url string, body []byte, contentType string)
}

// Noop is a Sender that discards every send. It suits non-interactive hosts
// (tests, batch jobs) where exit-time cleanup is pointless and the backend's
// auto-expiry is an acceptable fallback.
type Noop struct{}

// NewNoop creates a no-op sender
func NewNoop() *Noop {
	return &Noop{}
}

// Send discards the request
func (*Noop) Send(url string, body []byte, contentType string) {}
