package copilotclient

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/plccopilot/copilotclient/beacon"
	"github.com/plccopilot/copilotclient/storage"
)

// Default configuration values
const (
	// DefaultProbeTimeout bounds each local endpoint probe and the health check
	DefaultProbeTimeout = 2 * time.Second

	// DefaultUpdateTimeout bounds the primary update call. Generous because
	// the backend may run long model turns; override per host with
	// WithUpdateTimeout, or disable with a negative value.
	DefaultUpdateTimeout = 60 * time.Second

	// DefaultSessionKey is the storage key holding the current session id
	DefaultSessionKey = "plc-session-id"
)

// DefaultLocalPorts are the candidate ports probed when local endpoint
// probing is enabled, in order.
var DefaultLocalPorts = []int{8000, 8080, 5001}

// Config holds the required configuration for a Client.
//
// Example:
//
//	client, _ := copilotclient.New(copilotclient.Config{
//	    BaseURL: "https://copilot.example.com",
//	}, copilotclient.WithUpdateTimeout(2*time.Minute))
type Config struct {
	// BaseURL is the production backend base URL (required)
	BaseURL string

	// LocalProbing enables local endpoint discovery before falling back to
	// BaseURL. Hosts resolve this from their own environment or build
	// configuration; the client never reads the environment itself.
	LocalProbing bool

	// Tiers are the storage tiers persisting the session id, highest
	// priority first (optional). Defaults to DefaultTiers().
	Tiers []storage.Store

	// HTTPClient is the transport for all backend calls (optional)
	HTTPClient *http.Client

	// Beacon is the best-effort sender used for exit-time cleanup
	// (optional). Defaults to an HTTP sender sharing HTTPClient.
	Beacon beacon.Sender

	// OnError is called with background failures the public API cannot
	// surface: storage-tier write errors and exit-time cleanup build
	// failures (optional).
	OnError func(err error)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	return nil
}

// DefaultTiers returns the default storage tiers: an in-process memory tier
// backed by a JSON file under the user config directory. When no config
// directory is available the memory tier stands alone.
func DefaultTiers() []storage.Store {
	mem := storage.NewMemory()
	dir, err := os.UserConfigDir()
	if err != nil {
		return []storage.Store{mem}
	}
	file := storage.NewFile(filepath.Join(dir, "plc-copilot", "client-state.json"))
	return []storage.Store{mem, file}
}

// internalConfig holds the full client configuration including optional
// parameters set through Options
type internalConfig struct {
	probeTimeout  time.Duration
	updateTimeout time.Duration
	sessionKey    string
	localPorts    []int
}

// newInternalConfig creates an internal config with defaults applied
func newInternalConfig() *internalConfig {
	return &internalConfig{
		probeTimeout:  DefaultProbeTimeout,
		updateTimeout: DefaultUpdateTimeout,
		sessionKey:    DefaultSessionKey,
		localPorts:    DefaultLocalPorts,
	}
}
