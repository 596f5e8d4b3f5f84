package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order. It implements a
// state machine with defined transitions to ensure orders follow the correct
// procurement workflow.
//
// State transitions:
//
//	Pendente ──> Aprovado ──> Gerado ─┐
//	                            ▲     │
//	                            └─────┘
//	          (re-generation is an idempotent re-export)
//
// Status is string-typed because the set of statuses is ultimately defined by
// the server: values the client does not recognize round-trip unchanged and
// simply permit no further actions, they never fail parsing.
type Status string

const (
	// Pendente is the initial status. Items may still be edited.
	Pendente Status = "Pendente"

	// Aprovado indicates the order was approved; items are frozen.
	Aprovado Status = "Aprovado"

	// Gerado indicates the export artifact was produced. Generation may be
	// re-triggered while in this status.
	Gerado Status = "Gerado"
)

// KnownStatuses returns the statuses this client understands, in lifecycle
// order.
func KnownStatuses() []Status {
	return []Status{Pendente, Aprovado, Gerado}
}

// Known reports whether the status belongs to the client's known set. An
// unknown status is not an error: it keeps its wire value and allows no
// actions.
func (s Status) Known() bool {
	switch s {
	case Pendente, Aprovado, Gerado:
		return true
	}
	return false
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// CanEditItems reports whether the order's items may still be replaced.
func (s Status) CanEditItems() bool {
	return s == Pendente
}

// ValidateApprove checks whether the status allows approval without
// performing the transition. Only Pendente orders can be approved.
func (s Status) ValidateApprove() error {
	if s != Pendente {
		return errs.NewInvalidStateErrorWithCause("pedido", s.String(),
			fmt.Errorf("%s is not a valid status to approve", s))
	}
	return nil
}

// Approve transitions the status to Aprovado.
//
// Valid transitions:
//   - Pendente -> Aprovado
//
// Any other source status fails with an InvalidStateError.
func (s Status) Approve() (Status, error) {
	if err := s.ValidateApprove(); err != nil {
		return "", err
	}
	return Aprovado, nil
}

// ValidateGenerate checks whether the status allows producing the export
// artifact. Both Aprovado and Gerado permit it: re-generation from Gerado is
// an idempotent re-export.
func (s Status) ValidateGenerate() error {
	if s != Aprovado && s != Gerado {
		return errs.NewInvalidStateErrorWithCause("pedido", s.String(),
			fmt.Errorf("%s is not a valid status to generate", s))
	}
	return nil
}

// Generate transitions the status to Gerado.
//
// Valid transitions:
//   - Aprovado -> Gerado
//   - Gerado -> Gerado (re-export)
func (s Status) Generate() (Status, error) {
	if err := s.ValidateGenerate(); err != nil {
		return "", err
	}
	return Gerado, nil
}
