package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// SaveEditSessionCommandHandler commits an edit session: it validates the
// working rows, replaces the order's items on the server in one request and
// resyncs the registry.
//
// The session may be discarded while the request is on the wire. In that
// case the server's answer is dropped: Handle reports saved=false and the
// caller must not apply the returned snapshot anywhere. The registry is
// still resynced, since the server may well have accepted the write.
type SaveEditSessionCommandHandler struct {
	service ports.OrderService
	syncer  RegistrySyncer
}

// NewSaveEditSessionCommandHandler creates a handler for edit session saves.
func NewSaveEditSessionCommandHandler(service ports.OrderService, syncer RegistrySyncer) SaveEditSessionCommandHandler {
	return SaveEditSessionCommandHandler{service: service, syncer: syncer}
}

// Handle validates and commits the session. saved is false when the session
// was discarded before the server answered; updated is only meaningful when
// saved is true.
func (h SaveEditSessionCommandHandler) Handle(
	ctx context.Context,
	cmd SaveEditSessionCommand,
) (updated order.Order, saved bool, err error) {
	if err = cmd.Validate(); err != nil {
		return order.Order{}, false, err
	}

	session := cmd.Session()

	items, err := session.BeginCommit()
	if err != nil {
		return order.Order{}, false, err
	}
	defer session.EndCommit()

	updated, err = h.service.UpdateOrderItems(ctx, session.OrderID(), items)
	if err != nil {
		return order.Order{}, false, err
	}

	if session.Discarded() {
		if syncErr := h.syncer.Sync(ctx); syncErr != nil {
			return order.Order{}, false, syncErr
		}
		return order.Order{}, false, nil
	}

	if err = h.syncer.Sync(ctx); err != nil {
		return updated, true, err
	}

	return updated, true, nil
}
