package commands

import (
	"context"

	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/ports"
)

// LoginCommandHandler authenticates the client session.
//
// Example:
//
//	handler := NewLoginCommandHandler(service)
//	cmd, _ := NewLoginCommand("miguel", "secret")
//
//	account, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("login failed: %w", err)
//	}
//	fmt.Printf("logged in as %s (%s)", account.Username(), account.Role())
type LoginCommandHandler struct {
	service ports.OrderService
}

// NewLoginCommandHandler creates a handler for login operations.
func NewLoginCommandHandler(service ports.OrderService) LoginCommandHandler {
	return LoginCommandHandler{service: service}
}

// Handle authenticates and returns the account the server resolved.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (user.User, error) {
	if err := cmd.Validate(); err != nil {
		return user.User{}, err
	}

	return h.service.Login(ctx, cmd.Username(), cmd.Password())
}
