package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents a request to approve a pending order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates an approval command for the given order id.
func NewApproveOrderCommand(orderID int) (ApproveOrderCommand, error) {
	approveCommand := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := approveCommand.setOrderID(orderID); err != nil {
		return ApproveOrderCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to approve.
func (c ApproveOrderCommand) OrderID() int {
	return c.orderID
}

func (c *ApproveOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return fmt.Errorf("order id must be positive, got %d", orderID)
	}

	c.orderID = orderID
	return nil
}
