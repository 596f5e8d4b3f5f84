// Package pedidorepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// records the reference server owns, handling the conversion between domain
// snapshots and database rows.
package pedidorepo

import (
	"time"

	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// PedidoDTO represents the database structure for persisting orders.
// Indexed for the list queries: by supplier, status and creation time.
type PedidoDTO struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Fornecedor string `gorm:"index"`
	CreatedBy  string
	CreatedAt  time.Time `gorm:"index"`
	Status     string    `gorm:"index"`
	Arquivo    string
	Itens      []PedidoItemDTO `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order records.
func (PedidoDTO) TableName() string {
	return "pedidos"
}

// PedidoItemDTO represents one order line. Posicao preserves the item order
// the client submitted.
type PedidoItemDTO struct {
	ID         int `gorm:"primaryKey;autoIncrement"`
	PedidoID   int `gorm:"index"`
	Posicao    int
	Quantidade int
	Codigo     string
	Descricao  string
	Prefixo    string
	Valor      decimal.Decimal `gorm:"type:numeric"`
	Estoque    int
}

// TableName specifies the database table name for order lines.
func (PedidoItemDTO) TableName() string {
	return "pedido_itens"
}

// fromDomain converts an order snapshot to its database representation.
func fromDomain(o order.Order) PedidoDTO {
	items := o.Items()
	itemDTOs := make([]PedidoItemDTO, len(items))
	for i, it := range items {
		itemDTOs[i] = PedidoItemDTO{
			PedidoID:   o.ID(),
			Posicao:    i,
			Quantidade: it.Quantidade,
			Codigo:     it.Codigo,
			Descricao:  it.Descricao,
			Prefixo:    it.Prefixo,
			Valor:      it.Valor,
			Estoque:    it.Estoque,
		}
	}

	return PedidoDTO{
		ID:         o.ID(),
		Fornecedor: o.Fornecedor(),
		CreatedBy:  o.CreatedBy(),
		CreatedAt:  o.CreatedAt(),
		Status:     o.Status().String(),
		Arquivo:    o.Artifact(),
		Itens:      itemDTOs,
	}
}

// toDomain converts a database row to an order snapshot. Items arrive
// ordered by posicao.
func toDomain(dto PedidoDTO) order.Order {
	items := make([]item.Data, len(dto.Itens))
	for i, it := range dto.Itens {
		items[i] = item.Data{
			Quantidade: it.Quantidade,
			Codigo:     it.Codigo,
			Descricao:  it.Descricao,
			Prefixo:    it.Prefixo,
			Valor:      it.Valor,
			Estoque:    it.Estoque,
		}
	}

	return order.Restore(
		dto.ID,
		dto.Fornecedor,
		dto.CreatedBy,
		dto.CreatedAt,
		order.Status(dto.Status),
		items,
		dto.Arquivo,
	)
}
