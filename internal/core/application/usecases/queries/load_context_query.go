package queries

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var ErrLoadContextQueryIsNotConstructed = errors.New(
	"LoadContextQuery must be created via NewLoadContextQuery constructor",
)

// LoadContextQuery retrieves the session's bootstrap payload: the account,
// the supplier list, the status set and, for admins, the account list.
type LoadContextQuery struct {
	guard guard.ConstructorGuard
}

// NewLoadContextQuery creates a parameterless context query.
func NewLoadContextQuery() LoadContextQuery {
	return LoadContextQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q LoadContextQuery) Validate() error {
	return q.guard.Validate(ErrLoadContextQueryIsNotConstructed)
}
