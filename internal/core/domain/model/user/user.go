package user

import (
	"strings"

	"pedidos/internal/pkg/errs"
)

// Role is the permission role attached to a user account. Like statuses,
// roles are string-typed so accounts created with roles this build does not
// recognize still round-trip; an unknown role simply grants no actions.
type Role string

const (
	// Creator may create orders and edit pending ones.
	Creator Role = "creator"

	// Approver may do everything Creator can, plus approve pending orders.
	Approver Role = "approver"

	// Admin has Approver's powers plus account management.
	Admin Role = "admin"
)

// KnownRoles returns the roles this build understands.
func KnownRoles() []Role {
	return []Role{Creator, Approver, Admin}
}

// Known reports whether the role belongs to the known set.
func (r Role) Known() bool {
	switch r {
	case Creator, Approver, Admin:
		return true
	}
	return false
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// CanApprove reports whether the role may approve pending orders.
func (r Role) CanApprove() bool {
	return r == Approver || r == Admin
}

// CanManageUsers reports whether the role may create and delete accounts.
func (r Role) CanManageUsers() bool {
	return r == Admin
}

// NormalizeUsername canonicalizes a login name. Usernames are stored and
// compared upper-cased with surrounding whitespace removed.
func NormalizeUsername(username string) string {
	return strings.ToUpper(strings.TrimSpace(username))
}

// User is an account snapshot: the login name and its role. Password material
// never leaves the persistence layer.
type User struct {
	username string
	role     Role
}

// New builds a user from a raw username and role. The username is normalized
// and must be non-empty; the role must be one of the known roles so new
// accounts cannot be created locked out.
func New(username string, role Role) (User, error) {
	normalized := NormalizeUsername(username)
	if normalized == "" {
		return User{}, errs.NewValueIsRequiredError("username")
	}
	if !role.Known() {
		return User{}, errs.NewValueIsInvalidError("role")
	}

	return User{username: normalized, role: role}, nil
}

// Restore rebuilds an account snapshot from stored fields without the
// known-role check, so accounts with roles from newer builds stay readable.
func Restore(username string, role Role) User {
	return User{username: NormalizeUsername(username), role: role}
}

// Username returns the normalized login name.
func (u User) Username() string {
	return u.username
}

// Role returns the account role.
func (u User) Role() Role {
	return u.role
}
