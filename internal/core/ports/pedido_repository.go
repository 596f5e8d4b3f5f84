package ports

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/order"
)

// PedidoRepository defines the persistence contract for order records on the
// server side.
type PedidoRepository interface {
	// Add persists a new order and returns it with the assigned id.
	Add(ctx context.Context, o order.Order) (order.Order, error)

	// Update persists changes to an existing order.
	Update(ctx context.Context, o order.Order) error

	// Get retrieves an order with its full item set.
	Get(ctx context.Context, id int) (order.Order, error)

	// GetAll retrieves orders newest first, optionally narrowed by supplier
	// and status. Empty arguments mean no restriction.
	GetAll(ctx context.Context, fornecedor string, status order.Status) ([]order.Order, error)

	// DeleteOlderThan removes orders created before the cutoff and returns
	// how many were purged.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
