package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// GenerateOrderCommandHandler triggers artifact generation on the server.
type GenerateOrderCommandHandler struct {
	service ports.OrderService
	syncer  RegistrySyncer
}

// NewGenerateOrderCommandHandler creates a handler for artifact generation.
func NewGenerateOrderCommandHandler(service ports.OrderService, syncer RegistrySyncer) GenerateOrderCommandHandler {
	return GenerateOrderCommandHandler{service: service, syncer: syncer}
}

// Handle asks the server to produce the artifact and returns the updated
// order snapshot.
func (h GenerateOrderCommandHandler) Handle(ctx context.Context, cmd GenerateOrderCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	generated, err := h.service.GenerateOrder(ctx, cmd.OrderID())
	if err != nil {
		return order.Order{}, err
	}

	if err = h.syncer.Sync(ctx); err != nil {
		return generated, err
	}

	return generated, nil
}
