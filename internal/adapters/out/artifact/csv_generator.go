// Package artifact produces the downloadable export file for an order. The
// export is a CSV snapshot of the order's items; clients treat it as opaque
// bytes, only the filename matters to the rest of the system.
package artifact

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pedidos/internal/core/domain/model/order"
)

// CSVGenerator writes order exports into a single directory. The filename
// combines the supplier and the order's creation date; re-generating an
// order overwrites its previous export.
type CSVGenerator struct {
	dir string
}

// NewCSVGenerator creates a generator writing into dir, creating it when
// missing.
func NewCSVGenerator(dir string) (*CSVGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &CSVGenerator{dir: dir}, nil
}

// Generate writes the order's export file and returns its filename.
func (g *CSVGenerator) Generate(ctx context.Context, o order.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.csv",
		sanitizeFilename(o.Fornecedor()),
		o.CreatedAt().Format("2006-01-02"),
	)

	f, err := os.Create(filepath.Join(g.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err = w.Write([]string{"QUANTIDADE", "CODIGO", "DESCRICAO", "PREFIXO", "VALOR", "ESTOQUE"}); err != nil {
		return "", err
	}

	for _, it := range o.Items() {
		record := []string{
			strconv.Itoa(it.Quantidade),
			it.Codigo,
			it.Descricao,
			it.Prefixo,
			// Unit prices are exported with the comma separator the
			// operators' spreadsheets expect.
			strings.ReplaceAll(it.Valor.StringFixed(2), ".", ","),
			strconv.Itoa(it.Estoque),
		}
		if err = w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}

	return filename, nil
}

// Open returns a reader over a previously generated export. The filename is
// reduced to its base name so stored values cannot escape the directory.
func (g *CSVGenerator) Open(filename string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(g.dir, filepath.Base(filename)))
}

// sanitizeFilename keeps letters, digits, dash and underscore, replacing
// everything else (spaces, slashes, accents) with underscores.
func sanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "PEDIDO"
	}
	return b.String()
}
