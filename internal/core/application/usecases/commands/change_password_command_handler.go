package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// ChangePasswordCommandHandler replaces the session account's password.
type ChangePasswordCommandHandler struct {
	service ports.OrderService
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(service ports.OrderService) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{service: service}
}

// Handle sends the password change to the server. The server verifies the
// current password before accepting the new one.
func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.service.ChangePassword(ctx, cmd.CurrentPassword(), cmd.NewPassword())
}
