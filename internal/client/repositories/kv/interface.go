// Package kv stores string values by key. It backs the durable and session
// scopes of the client store.
package kv

import "context"

// UpdateFunc receives the current value (ok=false when the key is absent)
// and returns the value to store. Returning an error aborts the update.
type UpdateFunc func(current string, ok bool) (string, error)

type Repository interface {
	// Get returns ok=false and a nil error when key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
	// Update performs an atomic read-modify-write of one key.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
