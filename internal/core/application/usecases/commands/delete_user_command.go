package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents an admin request to remove an account.
// The server refuses removing the caller's own account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	username string

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates an account removal command.
func NewDeleteUserCommand(username string) (DeleteUserCommand, error) {
	deleteCommand := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setUsername(username); err != nil {
		return DeleteUserCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// Username returns the normalized login name to remove.
func (c DeleteUserCommand) Username() string {
	return c.username
}

func (c *DeleteUserCommand) setUsername(username string) error {
	normalized := user.NormalizeUsername(username)
	if normalized == "" {
		return ErrUsernameIsRequired
	}

	c.username = normalized
	return nil
}
