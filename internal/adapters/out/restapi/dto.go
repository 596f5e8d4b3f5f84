// Package restapi implements the OrderService port over the order server's
// JSON API. The client owns a cookie jar so the login session is carried
// across calls, mirrors the server's error envelope into the errs family
// and never interprets order state itself: whatever the server says is
// returned as-is.
package restapi

import (
	"time"

	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// pedidoDTO is the wire shape of one order.
type pedidoDTO struct {
	ID           int       `json:"id"`
	Fornecedor   string    `json:"fornecedor"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	Status       string    `json:"status"`
	ArquivoExcel string    `json:"arquivo_excel"`
	Itens        []itemDTO `json:"itens"`
}

// itemDTO is the wire shape of one order line. Prices travel as JSON
// numbers.
type itemDTO struct {
	Quantidade int     `json:"quantidade"`
	Codigo     string  `json:"codigo"`
	Descricao  string  `json:"descricao"`
	Prefixo    string  `json:"prefixo"`
	Valor      float64 `json:"valor"`
	Estoque    int     `json:"estoque"`
}

// userDTO is the wire shape of an account.
type userDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// errorDTO is the server's error envelope.
type errorDTO struct {
	Error   string `json:"error"`
	Warning string `json:"warning,omitempty"`
}

func toDomainOrder(dto pedidoDTO) order.Order {
	items := make([]item.Data, len(dto.Itens))
	for i, it := range dto.Itens {
		items[i] = item.Data{
			Quantidade: it.Quantidade,
			Codigo:     it.Codigo,
			Descricao:  it.Descricao,
			Prefixo:    it.Prefixo,
			Valor:      decimal.NewFromFloat(it.Valor),
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
		dto.ArquivoExcel,
	)
}

func toDomainUser(dto userDTO) user.User {
	return user.Restore(dto.Username, user.Role(dto.Role))
}

func fromDomainItems(items []item.Item) []itemDTO {
	dtos := make([]itemDTO, len(items))
	for i, it := range items {
		dtos[i] = itemDTO{
			Quantidade: it.Quantidade(),
			Codigo:     it.Codigo(),
			Descricao:  it.Descricao(),
			Prefixo:    it.Prefixo(),
			Valor:      it.Valor().InexactFloat64(),
			Estoque:    it.Estoque(),
		}
	}
	return dtos
}
