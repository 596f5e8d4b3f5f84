package fornecedorrepo

import (
	"context"

	"gorm.io/gorm"
)

// GormFornecedorRepository implements SupplierRepository using GORM.
type GormFornecedorRepository struct {
	db *gorm.DB
}

// NewGormFornecedorRepository creates a new GORM supplier repository.
func NewGormFornecedorRepository(db *gorm.DB) *GormFornecedorRepository {
	return &GormFornecedorRepository{db: db}
}

// Add registers a supplier name. The unique index refuses duplicates.
func (r *GormFornecedorRepository) Add(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Create(&FornecedorDTO{Nome: name}).Error
}

// GetAll retrieves all supplier names in alphabetical order.
func (r *GormFornecedorRepository) GetAll(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&FornecedorDTO{}).
		Order("nome").
		Pluck("nome", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Exists reports whether the supplier name is registered.
func (r *GormFornecedorRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FornecedorDTO{}).
		Where("nome = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
