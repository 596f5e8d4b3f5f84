// Package draft holds the item list being assembled for a new order before
// it is submitted. The list only ever contains validated items: a row that
// fails validation is reported back to the caller and never enters the list.
package draft

import (
	"pedidos/internal/core/domain/model/item"

	"github.com/shopspring/decimal"
)

// List is the client-side staging area for a new order's items. It is not
// safe for concurrent use; each draft belongs to a single editing flow.
type List struct {
	items []item.Item
}

// NewList returns an empty draft list.
func NewList() *List {
	return &List{}
}

// Append adds a validated item to the end of the list.
func (l *List) Append(it item.Item) {
	l.items = append(l.items, it)
}

// AppendRaw parses the raw row and appends it when valid. On failure the
// list is left untouched and the validation error is returned.
func (l *List) AppendRaw(raw item.Raw) error {
	it, err := item.Parse(raw)
	if err != nil {
		return err
	}
	l.items = append(l.items, it)
	return nil
}

// RemoveAt deletes the item at the given position. Out-of-range positions
// are ignored.
func (l *List) RemoveAt(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
}

// Clear empties the list.
func (l *List) Clear() {
	l.items = nil
}

// Items returns a copy of the current list.
func (l *List) Items() []item.Item {
	copied := make([]item.Item, len(l.items))
	copy(copied, l.items)
	return copied
}

// Data returns the list as plain field bundles for wire transport.
func (l *List) Data() []item.Data {
	data := make([]item.Data, len(l.items))
	for i, it := range l.items {
		data[i] = it.Data()
	}
	return data
}

// Len returns the number of items in the list.
func (l *List) Len() int {
	return len(l.items)
}

// Total returns the sum of each item's quantidade * valor.
func (l *List) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(it.Total())
	}
	return total
}
