package copilotclient

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/plccopilot/copilotclient/beacon"
	"github.com/plccopilot/copilotclient/hooks"
	"github.com/plccopilot/copilotclient/storage"
)

// Version is the current client version
const Version = "1.0.0"

// Client is a sessioned API client for the PLC copilot backend. It owns the
// current session id, persists it across the configured storage tiers,
// resolves which endpoint to talk to, and cleans up backend resources when
// sessions end.
//
// A Client is safe for concurrent use. Concurrent update calls are not
// serialized: each carries whatever the current session id is at the moment
// it reads it, and responses race with no ordering guarantee.
type Client struct {
	baseURL       string
	localProbing  bool
	localPorts    []int
	probeTimeout  time.Duration
	updateTimeout time.Duration
	sessionKey    string

	store  *storage.Tiered
	http   *http.Client
	beacon beacon.Sender
	hooks  *hooks.Registry

	onError func(err error)

	// Current session id, empty until minted or restored
	sessionMu sync.Mutex
	sessionID string

	// Last local port that answered a health probe, 0 when none
	portMu          sync.Mutex
	lastWorkingPort int
}

// New creates a Client, restores (or mints) the session id from the storage
// tiers and re-writes it so every tier agrees.
//
// Example:
//
//	client, err := copilotclient.New(copilotclient.Config{
//	    BaseURL:      "https://copilot.example.com",
//	    LocalProbing: os.Getenv("COPILOT_DEV") == "1",
//	})
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ic := newInternalConfig()
	for _, opt := range opts {
		if err := opt(ic); err != nil {
			return nil, err
		}
	}

	tiers := cfg.Tiers
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	sender := cfg.Beacon
	if sender == nil {
		sender = beacon.NewHTTPSender(httpClient, 0)
	}

	c := &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		localProbing:  cfg.LocalProbing,
		localPorts:    ic.localPorts,
		probeTimeout:  ic.probeTimeout,
		updateTimeout: ic.updateTimeout,
		sessionKey:    ic.sessionKey,
		store:         storage.NewTiered(tiers...),
		http:          httpClient,
		beacon:        sender,
		hooks:         hooks.NewRegistry(),
		onError:       cfg.OnError,
	}

	c.restoreSession(context.Background())

	return c, nil
}

// Hooks returns the observability hook registry
func (c *Client) Hooks() *hooks.Registry {
	return c.hooks
}

// OnSessionMismatch registers a hook called when the backend echoes a
// different session id than the one sent
func (c *Client) OnSessionMismatch(hook hooks.SessionMismatchHook) {
	c.hooks.OnSessionMismatch(hook)
}

// OnCleanup registers a hook called after each explicit cleanup attempt
func (c *Client) OnCleanup(hook hooks.CleanupHook) {
	c.hooks.OnCleanup(hook)
}

// OnProbe registers a hook called after each local endpoint probe
func (c *Client) OnProbe(hook hooks.ProbeHook) {
	c.hooks.OnProbe(hook)
}

// reportError surfaces background failures through the OnError callback
func (c *Client) reportError(err error) {
	if err != nil && c.onError != nil {
		c.onError(err)
	}
}
