package copilotclient

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a Client
type Option func(*internalConfig) error

// WithProbeTimeout sets the per-probe timeout for local endpoint discovery
// and the health check
func WithProbeTimeout(timeout time.Duration) Option {
	return func(c *internalConfig) error {
		if timeout <= 0 {
			return fmt.Errorf("%w: probe timeout must be positive", ErrInvalidConfig)
		}
		c.probeTimeout = timeout
		return nil
	}
}

// WithUpdateTimeout sets the client-enforced timeout for the primary update
// call. A negative value disables the timeout entirely and relies on the
// transport's defaults.
func WithUpdateTimeout(timeout time.Duration) Option {
	return func(c *internalConfig) error {
		if timeout == 0 {
			return fmt.Errorf("%w: update timeout must be non-zero (use a negative value to disable)", ErrInvalidConfig)
		}
		c.updateTimeout = timeout
		return nil
	}
}

// WithSessionKey overrides the storage key holding the session id
func WithSessionKey(key string) Option {
	return func(c *internalConfig) error {
		if key == "" {
			return fmt.Errorf("%w: session key must not be empty", ErrInvalidConfig)
		}
		c.sessionKey = key
		return nil
	}
}

// WithLocalPorts overrides the candidate ports for local endpoint probing
func WithLocalPorts(ports ...int) Option {
	return func(c *internalConfig) error {
		if len(ports) == 0 {
			return fmt.Errorf("%w: at least one local port is required", ErrInvalidConfig)
		}
		for _, port := range ports {
			if port <= 0 || port > 65535 {
				return fmt.Errorf("%w: invalid local port %d", ErrInvalidConfig, port)
			}
		}
		c.localPorts = ports
		return nil
	}
}
