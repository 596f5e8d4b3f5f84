package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// CreateUserCommandHandler registers accounts. Admin only; the server
// enforces the role check.
type CreateUserCommandHandler struct {
	service ports.OrderService
}

// NewCreateUserCommandHandler creates a handler for account creation.
func NewCreateUserCommandHandler(service ports.OrderService) CreateUserCommandHandler {
	return CreateUserCommandHandler{service: service}
}

// Handle registers the account on the server.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.service.CreateUser(ctx, cmd.Username(), cmd.Password(), cmd.Role())
}
