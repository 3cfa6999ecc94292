// Package session persists the single authenticated-session record. A Store
// pairs a durable backend (survives restarts) with a volatile one
// (process-scoped), mirroring the remember-me split of the web client.
package session

import "context"

// Backend is one storage area for the raw session record. Read returns
// (nil, nil) when no record is present.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}
