package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. Categories are shared across
// all users: they carry no owner and are globally readable. Names are
// unique per type so both types may have an "Other".
type Category struct {
	Base
	Name  string       `gorm:"not null;uniqueIndex:idx_categories_name_type" json:"name"`
	Type  CategoryType `gorm:"not null;uniqueIndex:idx_categories_name_type" json:"type"`
	Icon  string       `json:"icon"`
	Color string       `json:"color"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
