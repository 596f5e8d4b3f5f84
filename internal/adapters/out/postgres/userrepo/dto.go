// Package userrepo persists accounts for the reference server. Password
// hashes never leave this layer except inside ports.Account, which only the
// authentication path consumes.
package userrepo

import (
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/ports"
)

// UserDTO represents an account row. The normalized username is the key.
type UserDTO struct {
	Username     string `gorm:"primaryKey"`
	PasswordHash string
	Role         string
}

// TableName specifies the database table name for accounts.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts an account to its database representation.
func fromDomain(account ports.Account) UserDTO {
	return UserDTO{
		Username:     account.User.Username(),
		PasswordHash: account.PasswordHash,
		Role:         account.User.Role().String(),
	}
}

// toDomain converts an account row back, keeping roles from newer builds
// readable.
func toDomain(dto UserDTO) ports.Account {
	return ports.Account{
		User:         user.Restore(dto.Username, user.Role(dto.Role)),
		PasswordHash: dto.PasswordHash,
	}
}
