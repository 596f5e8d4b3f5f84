package commands

import (
	"errors"
	"strings"

	"pedidos/internal/pkg/guard"
)

var ErrCreateSupplierCommandIsNotConstructed = errors.New(
	"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
)

// CreateSupplierCommand represents a request to register a supplier name.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateSupplierCommand creates a supplier registration command. The
// name is trimmed and must be non-empty.
func NewCreateSupplierCommand(name string) (CreateSupplierCommand, error) {
	supplierCommand := CreateSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := supplierCommand.setName(name); err != nil {
		return CreateSupplierCommand{}, err
	}

	return supplierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

// Name returns the trimmed supplier name.
func (c CreateSupplierCommand) Name() string {
	return c.name
}

func (c *CreateSupplierCommand) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrFornecedorIsRequired
	}

	c.name = trimmed
	return nil
}
