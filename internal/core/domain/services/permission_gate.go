package services

import (
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/user"
)

// Action is a lifecycle operation a user may take on an order.
type Action string

const (
	ActionView     Action = "view"
	ActionEdit     Action = "edit"
	ActionApprove  Action = "approve"
	ActionGenerate Action = "generate"
	ActionDownload Action = "download"
)

// ActionSet is the set of actions permitted for one role/status pair.
type ActionSet map[Action]bool

// Contains reports whether the action belongs to the set.
func (s ActionSet) Contains(a Action) bool {
	return s[a]
}

// PermissionGate decides which actions a role may take on an order, based
// solely on the role and the order's status.
//
// The gate is total and fails closed: every role/status combination yields a
// well-defined set, and any combination involving an unknown role or an
// unknown status yields the empty set. The gate never errors; absence of an
// action is the answer.
//
// Decision table:
//
//	             Pendente              Aprovado          Gerado
//	creator      view, edit            view, generate    view, generate, download
//	approver     view, edit, approve   view, generate    view, generate, download
//	admin        view, edit, approve   view, generate    view, generate, download
//	(unknown)    -                     -                 -
//
// The gate mirrors the server's enforcement; it exists so the UI can hide
// what the server would reject, not to replace the server's checks.
type PermissionGate struct{}

// NewPermissionGate creates a new PermissionGate instance.
func NewPermissionGate() PermissionGate {
	return PermissionGate{}
}

// AllowedActions returns the actions the role may take on an order in the
// given status. The result is a fresh set the caller may modify.
func (g PermissionGate) AllowedActions(role user.Role, status order.Status) ActionSet {
	if !role.Known() || !status.Known() {
		return ActionSet{}
	}

	switch status {
	case order.Pendente:
		actions := ActionSet{ActionView: true, ActionEdit: true}
		if role.CanApprove() {
			actions[ActionApprove] = true
		}
		return actions
	case order.Aprovado:
		return ActionSet{ActionView: true, ActionGenerate: true}
	case order.Gerado:
		return ActionSet{ActionView: true, ActionGenerate: true, ActionDownload: true}
	}

	return ActionSet{}
}

// AllowedActionsForOrder refines AllowedActions with per-order facts: the
// download action is withheld until the server reports the export artifact
// exists.
func (g PermissionGate) AllowedActionsForOrder(role user.Role, o order.Order) ActionSet {
	actions := g.AllowedActions(role, o.Status())
	if !o.HasArtifact() {
		delete(actions, ActionDownload)
	}
	return actions
}
