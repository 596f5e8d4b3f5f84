package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// SubmitDraftCommandHandler creates new orders from completed drafts.
// The server assigns the id, timestamps and initial Pendente status; the
// handler finishes with a registry sync so the new order shows up through
// the same path as everything else.
type SubmitDraftCommandHandler struct {
	service ports.OrderService
	syncer  RegistrySyncer
}

// NewSubmitDraftCommandHandler creates a handler for draft submission.
func NewSubmitDraftCommandHandler(service ports.OrderService, syncer RegistrySyncer) SubmitDraftCommandHandler {
	return SubmitDraftCommandHandler{service: service, syncer: syncer}
}

// Handle submits the draft and returns the server's snapshot of the created
// order. The draft list is cleared only after the server accepts it; a
// rejected submit leaves the draft untouched. The registry resync failing
// does not undo the creation; the error is reported so the caller knows the
// cache may be stale.
func (h SubmitDraftCommandHandler) Handle(ctx context.Context, cmd SubmitDraftCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	created, err := h.service.CreateOrder(ctx, cmd.Fornecedor(), cmd.Items())
	if err != nil {
		return order.Order{}, err
	}
	cmd.clearDraft()

	if err = h.syncer.Sync(ctx); err != nil {
		return created, err
	}

	return created, nil
}
