package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// DeleteUserCommandHandler removes accounts. Admin only; self-deletion is
// refused by the server.
type DeleteUserCommandHandler struct {
	service ports.OrderService
}

// NewDeleteUserCommandHandler creates a handler for account removal.
func NewDeleteUserCommandHandler(service ports.OrderService) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{service: service}
}

// Handle removes the account on the server.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.service.DeleteUser(ctx, cmd.Username())
}
