package commands

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var (
	ErrChangePasswordCommandIsNotConstructed = errors.New(
		"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
	)
	ErrNewPasswordIsRequired = errors.New("new password is required")
)

// ChangePasswordCommand represents a request to replace the current
// session's password.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a password change command. Both the
// current and the new password must be non-empty.
func NewChangePasswordCommand(currentPassword, newPassword string) (ChangePasswordCommand, error) {
	passwordCommand := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		passwordCommand.setCurrentPassword(currentPassword),
		passwordCommand.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return passwordCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// CurrentPassword returns the password being replaced.
func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

// NewPassword returns the password to switch to.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setCurrentPassword(currentPassword string) error {
	if currentPassword == "" {
		return ErrPasswordIsRequired
	}

	c.currentPassword = currentPassword
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return ErrNewPasswordIsRequired
	}

	c.newPassword = newPassword
	return nil
}
