package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents an admin request to register an account.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates an account registration command. The
// username is normalized, the password must be non-empty and the role must
// be one of the known roles.
func NewCreateUserCommand(username, password string, role user.Role) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUsername(username),
		userCommand.setPassword(password),
		userCommand.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Username returns the normalized login name.
func (c CreateUserCommand) Username() string {
	return c.username
}

// Password returns the initial password.
func (c CreateUserCommand) Password() string {
	return c.password
}

// Role returns the role to assign.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

func (c *CreateUserCommand) setUsername(username string) error {
	normalized := user.NormalizeUsername(username)
	if normalized == "" {
		return ErrUsernameIsRequired
	}

	c.username = normalized
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if !role.Known() {
		return fmt.Errorf("unknown role %q", role)
	}

	c.role = role
	return nil
}
