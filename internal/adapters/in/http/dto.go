package http

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/pkg/errs"

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

// itemDTO is the wire shape of one order line.
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

// errorDTO is the error envelope every non-2xx response carries.
type errorDTO struct {
	Error string `json:"error"`
}

func fromDomainPedido(o order.Order) pedidoDTO {
	items := make([]itemDTO, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = itemDTO{
			Quantidade: it.Quantidade,
			Codigo:     it.Codigo,
			Descricao:  it.Descricao,
			Prefixo:    it.Prefixo,
			Valor:      it.Valor.InexactFloat64(),
			Estoque:    it.Estoque,
		}
	}

	return pedidoDTO{
		ID:           o.ID(),
		Fornecedor:   o.Fornecedor(),
		CreatedBy:    o.CreatedBy(),
		CreatedAt:    o.CreatedAt(),
		Status:       o.Status().String(),
		ArquivoExcel: o.Artifact(),
		Itens:        items,
	}
}

func fromDomainPedidos(orders []order.Order) []pedidoDTO {
	dtos := make([]pedidoDTO, len(orders))
	for i, o := range orders {
		dtos[i] = fromDomainPedido(o)
	}
	return dtos
}

func fromDomainUser(u user.User) userDTO {
	return userDTO{Username: u.Username(), Role: u.Role().String()}
}

// normalizeItems validates the submitted lines against the same rules the
// item model enforces, reporting the first failing line with its 1-based
// position in a user-facing message.
func normalizeItems(dtos []itemDTO) ([]item.Data, error) {
	if len(dtos) == 0 {
		return nil, errors.New("Adicione pelo menos um item")
	}

	normalized := make([]item.Data, len(dtos))
	for i, dto := range dtos {
		it, err := item.New(item.Data{
			Quantidade: dto.Quantidade,
			Codigo:     dto.Codigo,
			Descricao:  dto.Descricao,
			Prefixo:    dto.Prefixo,
			Valor:      decimal.NewFromFloat(dto.Valor),
			Estoque:    dto.Estoque,
		})
		if err != nil {
			return nil, errors.New(itemRejection(i+1, err))
		}
		normalized[i] = it.Data()
	}
	return normalized, nil
}

func itemRejection(position int, err error) string {
	if errors.Is(err, errs.ErrValueIsRequired) {
		return fmt.Sprintf("Item %d precisa de codigo e descricao", position)
	}

	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) && invalid.ParamName == "quantidade" {
		return fmt.Sprintf("Item %d precisa de quantidade maior que zero", position)
	}
	return fmt.Sprintf("Item %d invalido", position)
}
