package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two supported values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single financial event. Every transaction is
// owned by exactly one user; ownership is enforced by the services, which
// always filter on user_id.
type Transaction struct {
	Base
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	CategoryID      uint            `gorm:"not null" json:"category_id"`
	Title           string          `gorm:"not null" json:"title"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type            TransactionType `gorm:"not null" json:"type"`
	Description     string          `json:"description"`
	TransactionDate Date            `gorm:"type:date;not null" json:"transaction_date"`

	// Relationships. Joins are always explicit (Preload), never lazy.
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
