package order

import (
	"time"

	"pedidos/internal/core/domain/model/item"

	"github.com/shopspring/decimal"
)

// Order is a read-only snapshot of a purchase order as last reported by the
// server. The server owns the order: id, status, timestamps and the artifact
// flag are never derived or flipped client-side, the snapshot is replaced
// wholesale whenever the registry is refreshed.
//
// List responses may carry orders in summary form, without items; GetOrder
// always returns the full item set.
type Order struct {
	id         int
	fornecedor string
	createdBy  string
	createdAt  time.Time
	status     Status
	items      []item.Data
	artifact   string
}

// Restore rebuilds an order snapshot from server-provided fields. The
// artifact argument is the export filename, empty while none was generated.
// The items slice is copied so the snapshot never shares memory with its
// source.
func Restore(
	id int,
	fornecedor string,
	createdBy string,
	createdAt time.Time,
	status Status,
	items []item.Data,
	artifact string,
) Order {
	copied := make([]item.Data, len(items))
	copy(copied, items)

	return Order{
		id:         id,
		fornecedor: fornecedor,
		createdBy:  createdBy,
		createdAt:  createdAt,
		status:     status,
		items:      copied,
		artifact:   artifact,
	}
}

// ID returns the server-assigned order identifier.
func (o Order) ID() int {
	return o.id
}

// Fornecedor returns the supplier name.
func (o Order) Fornecedor() string {
	return o.fornecedor
}

// CreatedBy returns the username that created the order.
func (o Order) CreatedBy() string {
	return o.createdBy
}

// CreatedAt returns the server-side creation timestamp.
func (o Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the last-known lifecycle status.
func (o Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items. May be empty for summary
// snapshots taken from list responses.
func (o Order) Items() []item.Data {
	copied := make([]item.Data, len(o.items))
	copy(copied, o.items)
	return copied
}

// Artifact returns the export artifact filename, empty while none was
// generated.
func (o Order) Artifact() string {
	return o.artifact
}

// HasArtifact reports whether the server has produced the export artifact
// for this order.
func (o Order) HasArtifact() bool {
	return o.artifact != ""
}

// Total returns the sum of quantidade * valor over all items in the
// snapshot.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Valor.Mul(decimal.NewFromInt(int64(it.Quantidade))))
	}
	return total
}
