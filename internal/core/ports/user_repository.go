package ports

import (
	"context"

	"pedidos/internal/core/domain/model/user"
)

// Account couples a user snapshot with its stored password hash. The hash
// never travels past the persistence and authentication layers.
type Account struct {
	User         user.User
	PasswordHash string
}

// UserRepository defines the persistence contract for accounts. Usernames
// are stored normalized; lookups take already-normalized names.
type UserRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, account Account) error

	// Get retrieves an account by normalized username.
	Get(ctx context.Context, username string) (Account, error)

	// GetAll retrieves all accounts ordered by username.
	GetAll(ctx context.Context) ([]Account, error)

	// Delete removes an account by normalized username.
	Delete(ctx context.Context, username string) error

	// UpdatePassword replaces an account's password hash.
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
