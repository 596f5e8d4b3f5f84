package queries

import (
	"context"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// GetOrderQueryHandler fetches one order straight from the server, bypassing
// the registry cache. Used wherever the full item set matters: the detail
// view and the start of an edit session.
type GetOrderQueryHandler struct {
	service ports.OrderService
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(service ports.OrderService) GetOrderQueryHandler {
	return GetOrderQueryHandler{service: service}
}

// Handle fetches the order with its full item set.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Order, error) {
	if err := query.Validate(); err != nil {
		return order.Order{}, err
	}

	return h.service.GetOrder(ctx, query.OrderID())
}
