package commands

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand represents a request to drop the current session.
type LogoutCommand struct {
	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a parameterless logout command.
func NewLogoutCommand() LogoutCommand {
	return LogoutCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}
