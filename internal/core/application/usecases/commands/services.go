// Package commands contains business operations that modify remote state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, one
// remote call, then a registry resync so the local cache reflects the
// server's truth.
package commands

import (
	"context"
)

// RegistrySyncer refreshes the local order registry from the server. Every
// mutating command ends with a sync: the server response to the mutation
// itself is never used to patch the cache.
type RegistrySyncer interface {
	Sync(ctx context.Context) error
}
