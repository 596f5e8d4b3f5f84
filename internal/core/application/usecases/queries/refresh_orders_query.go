// Package queries contains read operations for retrieving remote state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read from the order server and feed the local registry cache.
package queries

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var ErrRefreshOrdersQueryIsNotConstructed = errors.New(
	"RefreshOrdersQuery must be created via NewRefreshOrdersQuery constructor",
)

// RefreshOrdersQuery asks for the registry cache to be replaced with a
// fresh server listing under the registry's current filter.
type RefreshOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewRefreshOrdersQuery creates a parameterless refresh query.
func NewRefreshOrdersQuery() RefreshOrdersQuery {
	return RefreshOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q RefreshOrdersQuery) Validate() error {
	return q.guard.Validate(ErrRefreshOrdersQueryIsNotConstructed)
}
