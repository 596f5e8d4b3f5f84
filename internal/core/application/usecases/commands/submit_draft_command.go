package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/draft"
	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/pkg/guard"
)

var (
	ErrSubmitDraftCommandIsNotConstructed = errors.New(
		"SubmitDraftCommand must be created via NewSubmitDraftCommand constructor",
	)
	ErrFornecedorIsRequired = errors.New("fornecedor is required")
	ErrDraftIsEmpty         = errors.New("draft must contain at least one item")
)

// SubmitDraftCommand represents a request to turn a completed draft into a
// new order on the server. The draft's items are captured at construction
// time; later edits to the draft do not affect an already built command. The
// command keeps a handle on the list itself so the handler can empty it once
// the submit succeeds.
//
// Example:
//
//	list := draft.NewList()
//	_ = list.AppendRaw(item.Raw{Quantidade: "2", Codigo: "A1", Descricao: "Porca", Valor: "1,50", Estoque: "0"})
//
//	cmd, err := NewSubmitDraftCommand("ACME", list)
//	if err != nil {
//	    return fmt.Errorf("invalid draft: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type SubmitDraftCommand struct { //nolint:recvcheck //using for validation
	fornecedor string
	items      []item.Item
	list       *draft.List

	guard guard.ConstructorGuard
}

// NewSubmitDraftCommand creates a command from the supplier choice and the
// draft list. A supplier must be selected and the draft must not be empty.
func NewSubmitDraftCommand(fornecedor string, list *draft.List) (SubmitDraftCommand, error) {
	submitCommand := SubmitDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		submitCommand.setFornecedor(fornecedor),
		submitCommand.setItems(list),
	); err != nil {
		return SubmitDraftCommand{}, err
	}

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDraftCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDraftCommandIsNotConstructed)
}

// Fornecedor returns the selected supplier name.
func (c SubmitDraftCommand) Fornecedor() string {
	return c.fornecedor
}

// Items returns the captured draft items.
func (c SubmitDraftCommand) Items() []item.Item {
	copied := make([]item.Item, len(c.items))
	copy(copied, c.items)
	return copied
}

func (c *SubmitDraftCommand) setFornecedor(fornecedor string) error {
	if fornecedor == "" {
		return ErrFornecedorIsRequired
	}

	c.fornecedor = fornecedor
	return nil
}

// clearDraft empties the source draft list. The handler calls it once the
// server accepted the order; a rejected submit leaves the draft intact so the
// user can correct and resubmit.
func (c SubmitDraftCommand) clearDraft() {
	if c.list != nil {
		c.list.Clear()
	}
}

func (c *SubmitDraftCommand) setItems(list *draft.List) error {
	if list == nil || list.Len() == 0 {
		return ErrDraftIsEmpty
	}

	c.items = list.Items()
	c.list = list
	return nil
}
