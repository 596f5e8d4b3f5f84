package artifact_test

import (
	"encoding/csv"
	"io"
	"testing"
	"time"

	"pedidos/internal/adapters/out/artifact"
	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVGenerator_Generate(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	newGenerator := func(t *testing.T) *artifact.CSVGenerator {
		t.Helper()
		g, err := artifact.NewCSVGenerator(t.TempDir())
		require.NoError(t, err)
		return g
	}

	t.Run("writes_items_and_names_file_after_supplier_and_date", func(t *testing.T) {
		g := newGenerator(t)
		o := order.Restore(1, "ACME", "MIGUEL", createdAt, order.Aprovado, []item.Data{
			{Quantidade: 2, Codigo: "A1", Descricao: "Porca", Prefixo: "PX",
				Valor: decimal.RequireFromString("1.5"), Estoque: 10},
		}, "")

		filename, err := g.Generate(t.Context(), o)

		require.NoError(t, err)
		assert.Equal(t, "ACME_2025-03-14.csv", filename)

		f, err := g.Open(filename)
		require.NoError(t, err)
		defer f.Close()

		r := csv.NewReader(f)
		r.Comma = ';'
		records, err := r.ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"QUANTIDADE", "CODIGO", "DESCRICAO", "PREFIXO", "VALOR", "ESTOQUE"}, records[0])
		assert.Equal(t, []string{"2", "A1", "Porca", "PX", "1,50", "10"}, records[1])
	})

	t.Run("sanitizes_supplier_name", func(t *testing.T) {
		g := newGenerator(t)
		o := order.Restore(1, "Acme / Filial 2", "MIGUEL", createdAt, order.Aprovado, nil, "")

		filename, err := g.Generate(t.Context(), o)

		require.NoError(t, err)
		assert.Equal(t, "ACME___FILIAL_2_2025-03-14.csv", filename)
	})

	t.Run("regeneration_overwrites", func(t *testing.T) {
		g := newGenerator(t)
		o := order.Restore(1, "ACME", "MIGUEL", createdAt, order.Gerado, []item.Data{
			{Quantidade: 1, Codigo: "A1", Descricao: "Porca", Valor: decimal.Zero},
		}, "")

		first, err := g.Generate(t.Context(), o)
		require.NoError(t, err)
		second, err := g.Generate(t.Context(), o)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("open_rejects_path_traversal", func(t *testing.T) {
		g := newGenerator(t)
		o := order.Restore(1, "ACME", "MIGUEL", createdAt, order.Gerado, nil, "")
		filename, err := g.Generate(t.Context(), o)
		require.NoError(t, err)

		f, err := g.Open("../../" + filename)
		require.NoError(t, err, "base name should resolve inside the directory")
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		require.NotEmpty(t, content)
		require.NoError(t, f.Close())
	})
}
