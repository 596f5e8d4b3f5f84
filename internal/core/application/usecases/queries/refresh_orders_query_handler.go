package queries

import (
	"context"

	"pedidos/internal/core/domain/model/registry"
	"pedidos/internal/core/ports"
)

// RefreshOrdersQueryHandler replaces the registry cache with a fresh server
// listing. It is the single write path into the registry: mutating commands
// call it (through their RegistrySyncer) after every server change, the UI
// calls it when the filter changes and the background job calls it on a
// timer.
//
// A failed refresh leaves the previous cache untouched, so the UI keeps
// showing the last good listing.
type RefreshOrdersQueryHandler struct {
	service  ports.OrderService
	registry *registry.Registry
}

// NewRefreshOrdersQueryHandler creates a handler bound to the shared
// registry.
func NewRefreshOrdersQueryHandler(service ports.OrderService, reg *registry.Registry) RefreshOrdersQueryHandler {
	return RefreshOrdersQueryHandler{service: service, registry: reg}
}

// Handle fetches orders under the registry's current filter and swaps the
// cache wholesale on success.
func (h RefreshOrdersQueryHandler) Handle(ctx context.Context, query RefreshOrdersQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}

	orders, err := h.service.ListOrders(ctx, h.registry.Filter())
	if err != nil {
		return err
	}

	h.registry.Replace(orders)
	return nil
}

// Sync refreshes the registry. It adapts Handle to the mutating commands'
// RegistrySyncer contract.
func (h RefreshOrdersQueryHandler) Sync(ctx context.Context) error {
	return h.Handle(ctx, NewRefreshOrdersQuery())
}
