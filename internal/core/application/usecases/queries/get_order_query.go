package queries

import (
	"errors"
	"fmt"

	"pedidos/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full item set.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a detail query for the given order id.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the order to fetch.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID int) error {
	if orderID <= 0 {
		return fmt.Errorf("order id must be positive, got %d", orderID)
	}

	q.orderID = orderID
	return nil
}
