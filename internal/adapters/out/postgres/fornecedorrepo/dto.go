// Package fornecedorrepo persists supplier names for the reference server.
package fornecedorrepo

// FornecedorDTO represents a registered supplier.
type FornecedorDTO struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Nome string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for suppliers.
func (FornecedorDTO) TableName() string {
	return "fornecedores"
}
