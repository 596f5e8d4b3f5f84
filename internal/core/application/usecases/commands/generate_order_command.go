package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/pkg/guard"
)

var ErrGenerateOrderCommandIsNotConstructed = errors.New(
	"GenerateOrderCommand must be created via NewGenerateOrderCommand constructor",
)

// GenerateOrderCommand represents a request to produce the export artifact
// for an approved order. Re-issuing it for an already generated order is a
// legal re-export.
type GenerateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewGenerateOrderCommand creates a generation command for the given order id.
func NewGenerateOrderCommand(orderID int) (GenerateOrderCommand, error) {
	generateCommand := GenerateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := generateCommand.setOrderID(orderID); err != nil {
		return GenerateOrderCommand{}, err
	}

	return generateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateOrderCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to generate the artifact for.
func (c GenerateOrderCommand) OrderID() int {
	return c.orderID
}

func (c *GenerateOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return fmt.Errorf("order id must be positive, got %d", orderID)
	}

	c.orderID = orderID
	return nil
}
