// Package ports defines the contracts between the core and the adapters.
// The outbound interfaces cover the remote order API consumed by the client
// flow and the persistence used by the reference server, enabling dependency
// inversion and testability.
package ports

import (
	"context"

	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/registry"
	"pedidos/internal/core/domain/model/user"
)

// ContextInfo is the bootstrap payload the server hands a logged-in client:
// who the caller is and the reference data the UI needs.
type ContextInfo struct {
	// User is the authenticated account.
	User user.User

	// Suppliers lists the registered supplier names.
	Suppliers []string

	// Statuses lists the statuses the server works with, in lifecycle order.
	Statuses []order.Status

	// Users lists all accounts. Populated only for admin callers.
	Users []user.User

	// PurgedOnStart is how many expired orders the server removed when it
	// last booted.
	PurgedOnStart int64

	// ArtifactAvailable reports whether the server can produce export
	// artifacts.
	ArtifactAvailable bool
}

// OrderService is the remote purchase-order API as seen from the client
// side. The server owns all order state: every mutating call returns the
// server's authoritative result, and callers are expected to refresh their
// registry afterwards rather than patch local copies.
//
// Error contract: validation and business rejections surface as
// RemoteRejectionError carrying the server's message verbatim; transport
// failures surface as NetworkError. Neither is ever silently swallowed.
type OrderService interface {
	// Login authenticates and establishes the session used by all other
	// calls. The username is matched case-insensitively by the server.
	Login(ctx context.Context, username, password string) (user.User, error)

	// Logout drops the current session.
	Logout(ctx context.Context) error

	// LoadContext fetches the bootstrap payload for the current session.
	LoadContext(ctx context.Context) (ContextInfo, error)

	// ListOrders fetches order summaries matching the filter, newest first.
	ListOrders(ctx context.Context, filter registry.Filter) ([]order.Order, error)

	// GetOrder fetches one order with its full item set.
	GetOrder(ctx context.Context, id int) (order.Order, error)

	// CreateOrder submits a new order for the supplier with the given
	// validated items and returns the server's snapshot of it.
	CreateOrder(ctx context.Context, fornecedor string, items []item.Item) (order.Order, error)

	// UpdateOrderItems replaces a pending order's items in one request.
	UpdateOrderItems(ctx context.Context, id int, items []item.Item) (order.Order, error)

	// ApproveOrder approves a pending order. The returned warning is
	// non-empty when approval succeeded but the automatic artifact
	// generation behind it failed; the order is approved either way.
	ApproveOrder(ctx context.Context, id int) (o order.Order, warning string, err error)

	// GenerateOrder produces (or re-produces) the export artifact.
	GenerateOrder(ctx context.Context, id int) (order.Order, error)

	// DownloadArtifact fetches the export artifact bytes and its filename.
	DownloadArtifact(ctx context.Context, id int) (filename string, content []byte, err error)

	// CreateSupplier registers a new supplier name.
	CreateSupplier(ctx context.Context, name string) error

	// CreateUser registers an account. Admin only.
	CreateUser(ctx context.Context, username, password string, role user.Role) error

	// DeleteUser removes an account. Admin only; the server refuses
	// self-deletion.
	DeleteUser(ctx context.Context, username string) error

	// ChangePassword replaces the current session's password.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}
