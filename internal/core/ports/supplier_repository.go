package ports

import "context"

// SupplierRepository defines the persistence contract for supplier names.
type SupplierRepository interface {
	// Add registers a supplier name. Names are unique; adding an existing
	// name is an error.
	Add(ctx context.Context, name string) error

	// GetAll retrieves all supplier names in alphabetical order.
	GetAll(ctx context.Context) ([]string, error)

	// Exists reports whether the supplier name is registered.
	Exists(ctx context.Context, name string) (bool, error)
}
