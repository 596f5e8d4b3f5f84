package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/editsession"
	"pedidos/internal/pkg/guard"
)

var (
	ErrSaveEditSessionCommandIsNotConstructed = errors.New(
		"SaveEditSessionCommand must be created via NewSaveEditSessionCommand constructor",
	)
	ErrSessionIsRequired = errors.New("edit session is required")
)

// SaveEditSessionCommand represents a request to commit an open edit
// session's rows back to the server in a single round-trip.
type SaveEditSessionCommand struct { //nolint:recvcheck //using for validation
	session *editsession.Session

	guard guard.ConstructorGuard
}

// NewSaveEditSessionCommand creates a save command for the given session.
func NewSaveEditSessionCommand(session *editsession.Session) (SaveEditSessionCommand, error) {
	saveCommand := SaveEditSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := saveCommand.setSession(session); err != nil {
		return SaveEditSessionCommand{}, err
	}

	return saveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveEditSessionCommand) Validate() error {
	return c.guard.Validate(ErrSaveEditSessionCommandIsNotConstructed)
}

// Session returns the edit session to commit.
func (c SaveEditSessionCommand) Session() *editsession.Session {
	return c.session
}

func (c *SaveEditSessionCommand) setSession(session *editsession.Session) error {
	if session == nil {
		return ErrSessionIsRequired
	}

	c.session = session
	return nil
}
