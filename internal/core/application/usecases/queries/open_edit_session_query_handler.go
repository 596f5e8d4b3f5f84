package queries

import (
	"context"

	"pedidos/internal/core/domain/model/editsession"
	"pedidos/internal/core/ports"
)

// OpenEditSessionQueryHandler starts an edit session over an order. It
// always refetches the order first: the session must copy the server's
// current rows, never a possibly stale registry entry. The status check
// happens on that fresh snapshot, so an order approved by someone else since
// the last refresh is refused here rather than at save time.
type OpenEditSessionQueryHandler struct {
	service ports.OrderService
}

// NewOpenEditSessionQueryHandler creates a handler for opening edit
// sessions.
func NewOpenEditSessionQueryHandler(service ports.OrderService) OpenEditSessionQueryHandler {
	return OpenEditSessionQueryHandler{service: service}
}

// Handle fetches the fresh order and opens a session over it. Fails with an
// InvalidStateError when the order's items can no longer be edited.
func (h OpenEditSessionQueryHandler) Handle(
	ctx context.Context,
	query OpenEditSessionQuery,
) (*editsession.Session, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fresh, err := h.service.GetOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return editsession.Open(fresh)
}
