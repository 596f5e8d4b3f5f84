package commands

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// LoginCommand represents a request to authenticate against the order
// server and establish the session all later calls ride on.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command. Both credentials must be
// non-empty; the server normalizes the username.
func NewLoginCommand(username, password string) (LoginCommand, error) {
	loginCommand := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loginCommand.setUsername(username),
		loginCommand.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return loginCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name as typed.
func (c LoginCommand) Username() string {
	return c.username
}

// Password returns the password as typed.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
