package draft_test

import (
	"testing"

	"pedidos/internal/core/domain/model/draft"
	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, codigo string, quantidade int, valor string) item.Item {
	t.Helper()
	it, err := item.New(item.Data{
		Quantidade: quantidade,
		Codigo:     codigo,
		Descricao:  "desc " + codigo,
		Valor:      decimal.RequireFromString(valor),
	})
	require.NoError(t, err)
	return it
}

func TestList_Append(t *testing.T) {
	t.Run("appends_in_order", func(t *testing.T) {
		l := draft.NewList()

		l.Append(mustItem(t, "A", 1, "1"))
		l.Append(mustItem(t, "B", 1, "1"))

		require.Equal(t, 2, l.Len())
		assert.Equal(t, "A", l.Items()[0].Codigo())
		assert.Equal(t, "B", l.Items()[1].Codigo())
	})
}

func TestList_AppendRaw(t *testing.T) {
	t.Run("valid_row_enters_the_list", func(t *testing.T) {
		l := draft.NewList()

		err := l.AppendRaw(item.Raw{
			Quantidade: "2",
			Codigo:     "A1",
			Descricao:  "Porca",
			Valor:      "1,50",
			Estoque:    "0",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("invalid_row_leaves_list_untouched", func(t *testing.T) {
		l := draft.NewList()
		l.Append(mustItem(t, "A", 1, "1"))

		err := l.AppendRaw(item.Raw{
			Quantidade: "0",
			Codigo:     "A1",
			Descricao:  "Porca",
			Valor:      "1",
			Estoque:    "0",
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 1, l.Len())
	})
}

func TestList_RemoveAt(t *testing.T) {
	t.Run("removes_by_position", func(t *testing.T) {
		l := draft.NewList()
		l.Append(mustItem(t, "A", 1, "1"))
		l.Append(mustItem(t, "B", 1, "1"))
		l.Append(mustItem(t, "C", 1, "1"))

		l.RemoveAt(1)

		require.Equal(t, 2, l.Len())
		assert.Equal(t, "A", l.Items()[0].Codigo())
		assert.Equal(t, "C", l.Items()[1].Codigo())
	})

	t.Run("out_of_range_is_a_no_op", func(t *testing.T) {
		l := draft.NewList()
		l.Append(mustItem(t, "A", 1, "1"))

		l.RemoveAt(-1)
		l.RemoveAt(1)
		l.RemoveAt(99)

		assert.Equal(t, 1, l.Len())
	})
}

func TestList_Clear(t *testing.T) {
	t.Run("empties_the_list", func(t *testing.T) {
		l := draft.NewList()
		l.Append(mustItem(t, "A", 1, "1"))

		l.Clear()

		assert.Equal(t, 0, l.Len())
		assert.Empty(t, l.Items())
	})
}

func TestList_Items(t *testing.T) {
	t.Run("returns_a_copy", func(t *testing.T) {
		l := draft.NewList()
		l.Append(mustItem(t, "A", 1, "1"))

		items := l.Items()
		items[0] = mustItem(t, "Z", 1, "1")

		assert.Equal(t, "A", l.Items()[0].Codigo())
	})
}

func TestList_Total(t *testing.T) {
	t.Run("sums_item_totals", func(t *testing.T) {
		l := draft.NewList()
		l.Append(mustItem(t, "A", 2, "1.5"))
		l.Append(mustItem(t, "B", 3, "2"))

		assert.True(t, decimal.RequireFromString("9").Equal(l.Total()))
	})

	t.Run("empty_list_totals_zero", func(t *testing.T) {
		assert.True(t, decimal.Zero.Equal(draft.NewList().Total()))
	})
}
