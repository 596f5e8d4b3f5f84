package ports

import (
	"context"
	"io"

	"pedidos/internal/core/domain/model/order"
)

// ArtifactGenerator produces and serves the export artifact for an order.
// The artifact format is opaque to the rest of the system; only its filename
// is recorded on the order.
type ArtifactGenerator interface {
	// Generate writes the artifact for the order and returns the filename
	// to record. Re-generating overwrites any previous artifact.
	Generate(ctx context.Context, o order.Order) (filename string, err error)

	// Open returns a reader over a previously generated artifact.
	Open(filename string) (io.ReadCloser, error)
}
