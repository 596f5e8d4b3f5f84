// Package services provides domain services that orchestrate business rules
// across multiple domain models of the purchase-order system. It implements
// logic that doesn't naturally belong to a single model.
//
// The package includes:
//   - PermissionGate: the single source of truth for which lifecycle actions
//     a role may take on an order in a given status
//
// Domain services coordinate between models, keeping cross-cutting rules out
// of the UI flow and the transport adapters.
package services
