package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// ApproveOrderCommandHandler approves pending orders. Approval is decided
// by the server: the handler never checks the role or status locally, it
// forwards and reports the server's verdict.
//
// The server generates the export artifact right after approving. When that
// second step fails, the approval itself stands and the failure comes back
// as a non-empty warning rather than an error.
type ApproveOrderCommandHandler struct {
	service ports.OrderService
	syncer  RegistrySyncer
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(service ports.OrderService, syncer RegistrySyncer) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{service: service, syncer: syncer}
}

// Handle approves the order. A non-empty warning means the order was
// approved but the automatic artifact generation failed; callers should
// surface it as a notice, not a failure.
func (h ApproveOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveOrderCommand,
) (approved order.Order, warning string, err error) {
	if err = cmd.Validate(); err != nil {
		return order.Order{}, "", err
	}

	approved, warning, err = h.service.ApproveOrder(ctx, cmd.OrderID())
	if err != nil {
		return order.Order{}, "", err
	}

	if err = h.syncer.Sync(ctx); err != nil {
		return approved, warning, err
	}

	return approved, warning, nil
}
