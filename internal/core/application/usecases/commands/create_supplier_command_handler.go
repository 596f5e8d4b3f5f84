package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// CreateSupplierCommandHandler registers supplier names on the server.
type CreateSupplierCommandHandler struct {
	service ports.OrderService
}

// NewCreateSupplierCommandHandler creates a handler for supplier creation.
func NewCreateSupplierCommandHandler(service ports.OrderService) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{service: service}
}

// Handle registers the supplier. Suppliers do not live in the order
// registry, so no resync follows; callers reload the context to pick up the
// new list.
func (h CreateSupplierCommandHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.service.CreateSupplier(ctx, cmd.Name())
}
