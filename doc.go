// Package copilotclient provides a sessioned Go client for the PLC copilot
// backend (the HTTP+multipart context service consumed by copilot front ends).
//
// The client owns the full session lifecycle: it mints a durable per-client
// session identifier, persists it redundantly across an ordered list of
// storage tiers, attaches it to every backend call, surfaces server/client
// disagreement about session identity as a diagnostic, and releases
// backend-side resources (uploaded files, in-memory context) when the host
// shuts down, even though process teardown gives no guaranteed "done" signal.
//
// # Quick Start
//
// Create a client with a production base URL and the default storage tiers
// (in-process memory backed by a file under the user config directory):
//
//	client, err := copilotclient.New(copilotclient.Config{
//	    BaseURL: "https://copilot.example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.ExitCleanup()
//
//	resp, err := client.UpdateContext(ctx, copilotclient.UpdateParams{
//	    Context: copilotclient.ProjectContext{Information: "conveyor belt line 3"},
//	    Stage:   "gathering_requirements",
//	    Message: "hello",
//	})
//
// # Session Identity
//
// Exactly one session id is current per Client at any time. On construction
// the client restores the id from the first tier that has one, re-writes it
// to every tier so they agree, and otherwise mints a fresh one.
// CurrentSessionID never fails; NewSessionID starts a new session on demand.
//
// # Storage Tiers
//
// Session identity is persisted through the storage package's Store
// abstraction: reads take the first tier that answers, writes go to all
// tiers. Memory, file, Postgres (pgx), database/sql and Redis tiers ship
// with the module; hosts inject whichever combination fits their deployment.
//
// # Cleanup
//
// Cleanup releases backend resources for one or more sessions and clears the
// local identity when the current session is among them. For best-effort
// release at process exit, RegisterExitCleanup installs a signal handler
// that dispatches a cleanup request through the beacon package's
// fire-and-forget sender; the backend's idle-session auto-expiry remains the
// safety net when that delivery is lost.
package copilotclient
