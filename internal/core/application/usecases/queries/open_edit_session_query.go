package queries

import (
	"errors"
	"fmt"

	"pedidos/internal/pkg/guard"
)

var ErrOpenEditSessionQueryIsNotConstructed = errors.New(
	"OpenEditSessionQuery must be created via NewOpenEditSessionQuery constructor",
)

// OpenEditSessionQuery asks for an edit session over a pending order.
type OpenEditSessionQuery struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewOpenEditSessionQuery creates a session-opening query for the given
// order id.
func NewOpenEditSessionQuery(orderID int) (OpenEditSessionQuery, error) {
	sessionQuery := OpenEditSessionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionQuery.setOrderID(orderID); err != nil {
		return OpenEditSessionQuery{}, err
	}

	return sessionQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q OpenEditSessionQuery) Validate() error {
	return q.guard.Validate(ErrOpenEditSessionQueryIsNotConstructed)
}

// OrderID returns the id of the order to edit.
func (q OpenEditSessionQuery) OrderID() int {
	return q.orderID
}

func (q *OpenEditSessionQuery) setOrderID(orderID int) error {
	if orderID <= 0 {
		return fmt.Errorf("order id must be positive, got %d", orderID)
	}

	q.orderID = orderID
	return nil
}
