package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// LogoutCommandHandler ends the client session.
type LogoutCommandHandler struct {
	service ports.OrderService
}

// NewLogoutCommandHandler creates a handler for logout operations.
func NewLogoutCommandHandler(service ports.OrderService) LogoutCommandHandler {
	return LogoutCommandHandler{service: service}
}

// Handle drops the session on the server.
func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.service.Logout(ctx)
}
