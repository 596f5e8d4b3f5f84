package pedidorepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPedidoRepository implements PedidoRepository using GORM.
type GormPedidoRepository struct {
	db *gorm.DB
}

// NewGormPedidoRepository creates a new GORM order repository.
func NewGormPedidoRepository(db *gorm.DB) *GormPedidoRepository {
	return &GormPedidoRepository{db: db}
}

// Add saves a new order and returns the snapshot with the assigned id.
func (r *GormPedidoRepository) Add(ctx context.Context, o order.Order) (order.Order, error) {
	dto := fromDomain(o)
	dto.ID = 0
	for i := range dto.Itens {
		dto.Itens[i].PedidoID = 0
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return order.Order{}, err
	}

	return toDomain(dto), nil
}

// Update saves an existing order, replacing its item rows wholesale.
func (r *GormPedidoRepository) Update(ctx context.Context, o order.Order) error {
	dto := fromDomain(o)

	result := r.db.WithContext(ctx).Model(&PedidoDTO{}).
		Where("id = ?", dto.ID).
		Select("Fornecedor", "Status", "Arquivo").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("pedido_id = ?", dto.ID).
		Delete(&PedidoItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Itens) == 0 {
		return nil
	}
	for i := range dto.Itens {
		dto.Itens[i].ID = 0
		dto.Itens[i].PedidoID = dto.ID
	}
	return r.db.WithContext(ctx).Create(&dto.Itens).Error
}

// Get retrieves an order with its item rows in submission order.
func (r *GormPedidoRepository) Get(ctx context.Context, id int) (order.Order, error) {
	var dto PedidoDTO
	err := r.db.WithContext(ctx).
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("posicao") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Order{}, errs.NewObjectNotFoundError("pedido", strconv.Itoa(id))
		}
		return order.Order{}, err
	}

	return toDomain(dto), nil
}

// GetAll retrieves orders newest first, optionally narrowed by supplier and
// status.
func (r *GormPedidoRepository) GetAll(ctx context.Context, fornecedor string, status order.Status) ([]order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("posicao") }).
		Order("created_at DESC, id DESC")

	if fornecedor != "" {
		query = query.Where("fornecedor = ?", fornecedor)
	}
	if status != "" {
		query = query.Where("status = ?", status.String())
	}

	var dtos []PedidoDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto))
	}

	return orders, nil
}

// DeleteOlderThan purges orders created before the cutoff, items included.
func (r *GormPedidoRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var ids []int
	if err := r.db.WithContext(ctx).Model(&PedidoDTO{}).
		Where("created_at < ?", cutoff).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).
		Where("pedido_id IN ?", ids).
		Delete(&PedidoItemDTO{}).Error; err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&PedidoDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
