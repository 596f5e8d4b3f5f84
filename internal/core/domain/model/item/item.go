package item

import (
	"fmt"
	"strconv"
	"strings"

	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Data is the plain field bundle for an order line as it travels on the wire
// and inside an edit session. It carries no validation; Item is the validated
// form accepted into a draft or submitted order.
type Data struct {
	Quantidade int
	Codigo     string
	Descricao  string
	Prefixo    string
	Valor      decimal.Decimal
	Estoque    int
}

// Raw holds the untyped form-field values for one order line, exactly as the
// user typed them.
type Raw struct {
	Quantidade string
	Codigo     string
	Descricao  string
	Prefixo    string
	Valor      string
	Estoque    string
}

// Item represents a single validated order line. Immutable once built; it has
// no identity beyond its position in the owning list.
//
// Invariants:
//   - quantidade > 0
//   - codigo and descricao are non-empty after trimming
//   - valor >= 0
//   - estoque >= 0
type Item struct {
	quantidade int
	codigo     string
	descricao  string
	prefixo    string
	valor      decimal.Decimal
	estoque    int
}

// New validates the given field bundle and builds an Item from it. Rules are
// checked in a fixed order and the first failure wins; string fields are
// trimmed before validation.
func New(data Data) (Item, error) {
	if data.Quantidade <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantidade",
			fmt.Errorf("%d is not greater than 0", data.Quantidade))
	}

	codigo := strings.TrimSpace(data.Codigo)
	if codigo == "" {
		return Item{}, errs.NewValueIsRequiredError("codigo")
	}

	descricao := strings.TrimSpace(data.Descricao)
	if descricao == "" {
		return Item{}, errs.NewValueIsRequiredError("descricao")
	}

	if data.Valor.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("valor",
			fmt.Errorf("%s is negative", data.Valor))
	}

	if data.Estoque < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("estoque",
			fmt.Errorf("%d is negative", data.Estoque))
	}

	return Item{
		quantidade: data.Quantidade,
		codigo:     codigo,
		descricao:  descricao,
		prefixo:    strings.TrimSpace(data.Prefixo),
		valor:      data.Valor,
		estoque:    data.Estoque,
	}, nil
}

// Parse validates and builds an Item from raw form-field values. Rules are
// checked in order, first failure wins: quantidade must parse to a positive
// integer, codigo and descricao must be non-empty after trimming, valor must
// parse (comma accepted as decimal separator) to a non-negative number and
// estoque to a non-negative integer. Pure function: no side effects on
// failure.
func Parse(raw Raw) (Item, error) {
	quantidade, err := strconv.Atoi(strings.TrimSpace(raw.Quantidade))
	if err != nil {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantidade", err)
	}
	if quantidade <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantidade",
			fmt.Errorf("%d is not greater than 0", quantidade))
	}

	codigo := strings.TrimSpace(raw.Codigo)
	if codigo == "" {
		return Item{}, errs.NewValueIsRequiredError("codigo")
	}

	descricao := strings.TrimSpace(raw.Descricao)
	if descricao == "" {
		return Item{}, errs.NewValueIsRequiredError("descricao")
	}

	valor, err := ParseValor(raw.Valor)
	if err != nil {
		return Item{}, err
	}

	estoque, err := strconv.Atoi(strings.TrimSpace(raw.Estoque))
	if err != nil {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("estoque", err)
	}
	if estoque < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("estoque",
			fmt.Errorf("%d is negative", estoque))
	}

	return Item{
		quantidade: quantidade,
		codigo:     codigo,
		descricao:  descricao,
		prefixo:    strings.TrimSpace(raw.Prefixo),
		valor:      valor,
		estoque:    estoque,
	}, nil
}

// ParseValor parses a unit price, accepting comma as the decimal separator
// ("12,50" parses to 12.5). The result must be non-negative.
func ParseValor(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	valor, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("valor", err)
	}
	if valor.IsNegative() {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("valor",
			fmt.Errorf("%s is negative", valor))
	}
	return valor, nil
}

// Quantidade returns the ordered quantity.
func (i Item) Quantidade() int {
	return i.quantidade
}

// Codigo returns the product code.
func (i Item) Codigo() string {
	return i.codigo
}

// Descricao returns the product description.
func (i Item) Descricao() string {
	return i.descricao
}

// Prefixo returns the optional product prefix (may be empty).
func (i Item) Prefixo() string {
	return i.prefixo
}

// Valor returns the unit price.
func (i Item) Valor() decimal.Decimal {
	return i.valor
}

// Estoque returns the current stock count.
func (i Item) Estoque() int {
	return i.estoque
}

// Total returns quantidade * valor.
func (i Item) Total() decimal.Decimal {
	return i.valor.Mul(decimal.NewFromInt(int64(i.quantidade)))
}

// Data returns the item's fields as a plain bundle for wire transport.
func (i Item) Data() Data {
	return Data{
		Quantidade: i.quantidade,
		Codigo:     i.codigo,
		Descricao:  i.descricao,
		Prefixo:    i.prefixo,
		Valor:      i.valor,
		Estoque:    i.estoque,
	}
}
