package storage

import "context"

// Store is a small key-value store used to persist client state, most
// importantly the session id. Implementations must treat Set and Delete as
// atomic per key.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key is absent; an error means the tier itself could not answer.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, overwriting any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
