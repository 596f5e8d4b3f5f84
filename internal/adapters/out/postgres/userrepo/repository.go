package userrepo

import (
	"context"
	"errors"

	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM account repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add persists a new account.
func (r *GormUserRepository) Add(ctx context.Context, account ports.Account) error {
	dto := fromDomain(account)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an account by normalized username.
func (r *GormUserRepository) Get(ctx context.Context, username string) (ports.Account, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Account{}, errs.NewObjectNotFoundError("user", username)
		}
		return ports.Account{}, err
	}

	return toDomain(dto), nil
}

// GetAll retrieves all accounts ordered by username.
func (r *GormUserRepository) GetAll(ctx context.Context) ([]ports.Account, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("username").Find(&dtos).Error; err != nil {
		return nil, err
	}

	accounts := make([]ports.Account, 0, len(dtos))
	for _, dto := range dtos {
		accounts = append(accounts, toDomain(dto))
	}

	return accounts, nil
}

// Delete removes an account by normalized username.
func (r *GormUserRepository) Delete(ctx context.Context, username string) error {
	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "username = ?", username)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", username)
	}
	return nil
}

// UpdatePassword replaces an account's password hash.
func (r *GormUserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", username)
	}
	return nil
}
