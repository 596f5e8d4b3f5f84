package queries

import (
	"context"

	"pedidos/internal/core/ports"
)

// LoadContextQueryHandler fetches the bootstrap payload for the current
// session.
type LoadContextQueryHandler struct {
	service ports.OrderService
}

// NewLoadContextQueryHandler creates a handler for context queries.
func NewLoadContextQueryHandler(service ports.OrderService) LoadContextQueryHandler {
	return LoadContextQueryHandler{service: service}
}

// Handle fetches the context payload.
func (h LoadContextQueryHandler) Handle(ctx context.Context, query LoadContextQuery) (ports.ContextInfo, error) {
	if err := query.Validate(); err != nil {
		return ports.ContextInfo{}, err
	}

	return h.service.LoadContext(ctx)
}
