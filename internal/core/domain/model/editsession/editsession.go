// Package editsession models the client-side editing of an existing pending
// order's items. A session works on a deep copy of the order's rows: nothing
// touches the shared registry until the edit is committed in a single
// round-trip, and discarding a session requires no network call at all.
package editsession

import (
	"fmt"
	"strconv"

	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// Field names an editable column of a session row.
type Field int

const (
	FieldQuantidade Field = iota
	FieldCodigo
	FieldDescricao
	FieldPrefixo
	FieldValor
	FieldEstoque
)

// Session is a mutable working copy of one order's items. Rows are plain
// bundles, not validated items: while editing, a row may be blank or
// half-typed, validation happens once at commit time.
//
// A session is bound to the order it was opened from and is not safe for
// concurrent use.
type Session struct {
	orderID    int
	fornecedor string
	rows       []item.Data
	dirty      bool
	discarded  bool
	committing bool
}

// Open starts an edit session over the given order snapshot. Only orders
// whose status still permits item edits can be opened; anything else fails
// with an InvalidStateError.
//
// The rows are copied, so later registry refreshes never bleed into an open
// session.
func Open(o order.Order) (*Session, error) {
	if !o.Status().CanEditItems() {
		return nil, errs.NewInvalidStateErrorWithCause("pedido", o.Status().String(),
			fmt.Errorf("pedido %d items can no longer be edited", o.ID()))
	}

	return &Session{
		orderID:    o.ID(),
		fornecedor: o.Fornecedor(),
		rows:       o.Items(),
	}, nil
}

// OrderID returns the id of the order being edited.
func (s *Session) OrderID() int {
	return s.orderID
}

// Fornecedor returns the supplier of the order being edited.
func (s *Session) Fornecedor() string {
	return s.fornecedor
}

// Rows returns a copy of the current working rows.
func (s *Session) Rows() []item.Data {
	copied := make([]item.Data, len(s.rows))
	copy(copied, s.rows)
	return copied
}

// Len returns the number of working rows.
func (s *Session) Len() int {
	return len(s.rows)
}

// Dirty reports whether any row was changed since the session opened.
func (s *Session) Dirty() bool {
	return s.dirty
}

// SetField applies one keystroke-level update to a row field. Numeric fields
// tolerate in-progress typing: input that does not parse yet (or parses
// negative) leaves the stored value unchanged rather than erroring, so the
// user can keep typing. Text fields always take the raw value. Out-of-range
// rows are ignored.
func (s *Session) SetField(row int, field Field, raw string) {
	if row < 0 || row >= len(s.rows) {
		return
	}

	switch field {
	case FieldQuantidade:
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			s.rows[row].Quantidade = v
			s.dirty = true
		}
	case FieldEstoque:
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			s.rows[row].Estoque = v
			s.dirty = true
		}
	case FieldValor:
		if v, err := item.ParseValor(raw); err == nil {
			s.rows[row].Valor = v
			s.dirty = true
		}
	case FieldCodigo:
		s.rows[row].Codigo = raw
		s.dirty = true
	case FieldDescricao:
		s.rows[row].Descricao = raw
		s.dirty = true
	case FieldPrefixo:
		s.rows[row].Prefixo = raw
		s.dirty = true
	}
}

// AddRow appends a fresh row with quantidade 1, mirroring how a new line
// starts in the editor.
func (s *Session) AddRow() {
	s.rows = append(s.rows, item.Data{Quantidade: 1})
	s.dirty = true
}

// RemoveRow deletes the row at the given position. Out-of-range positions
// are ignored.
func (s *Session) RemoveRow(index int) {
	if index < 0 || index >= len(s.rows) {
		return
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	s.dirty = true
}

// Discard abandons the session. All local changes are dropped and the
// session refuses any further commit; no server call is involved.
func (s *Session) Discard() {
	s.discarded = true
}

// Discarded reports whether the session was abandoned. A commit result that
// arrives after Discard must be thrown away by the caller.
func (s *Session) Discarded() bool {
	return s.discarded
}

// Committing reports whether a commit round-trip is in flight.
func (s *Session) Committing() bool {
	return s.committing
}

// BeginCommit validates every working row and marks the session busy. It
// fails with an InvalidStateError when the session was discarded or a commit
// is already in flight, and with a validation error naming the first invalid
// row otherwise. On success the caller owns sending the returned items to
// the server in one request, then calling EndCommit.
func (s *Session) BeginCommit() ([]item.Item, error) {
	if s.discarded {
		return nil, errs.NewInvalidStateError("sessao", "descartada")
	}
	if s.committing {
		return nil, errs.NewInvalidStateError("sessao", "salvando")
	}
	if len(s.rows) == 0 {
		return nil, errs.NewValueIsRequiredError("itens")
	}

	items := make([]item.Item, 0, len(s.rows))
	for i, row := range s.rows {
		it, err := item.New(row)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("item %d", i+1), err)
		}
		items = append(items, it)
	}

	s.committing = true
	return items, nil
}

// EndCommit clears the busy flag once the commit round-trip finished,
// whatever its outcome.
func (s *Session) EndCommit() {
	s.committing = false
}
