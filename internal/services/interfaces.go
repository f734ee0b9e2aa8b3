package services

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, username, password string) (*models.User, error)
	GetUserByIdentifier(identifier string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
// Categories are shared reference data: globally readable, no owner.
type CategoryServicer interface {
	GetCategories() ([]models.Category, error)
	GetCategoriesByType(categoryType models.CategoryType) ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
}

// TransactionUpdateFields holds the partial-update payload for a
// transaction. A nil field means "leave unchanged"; a non-nil field is
// applied even when it carries a falsy value such as an empty description.
type TransactionUpdateFields struct {
	Title           *string
	Amount          *decimal.Decimal
	Type            *models.TransactionType
	Description     *string
	CategoryID      *uint
	TransactionDate *models.Date
}

// TransactionServicer defines the contract for transaction-related business
// logic. Every operation is scoped to the owning user: a transaction owned
// by someone else is indistinguishable from one that does not exist.
type TransactionServicer interface {
	CreateTransaction(userID uint, title string, amount decimal.Decimal, transactionType models.TransactionType, description string, categoryID uint, date models.Date) (*models.Transaction, error)
	GetUserTransactions(userID uint) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// DateRange is an optional inclusive calendar-date window. Either bound may
// be nil, meaning unbounded on that side.
type DateRange struct {
	Start *models.Date
	End   *models.Date
}

// CategorySummary is one (type, category) bucket of a summary report.
type CategorySummary struct {
	Type         models.TransactionType `json:"type"`
	CategoryID   uint                   `json:"category_id"`
	CategoryName string                 `json:"category_name"`
	Icon         string                 `json:"icon"`
	Color        string                 `json:"color"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Count        int                    `json:"count"`
}

// Summary holds income/expense totals and the per-category breakdown.
type Summary struct {
	TotalIncome  decimal.Decimal   `json:"total_income"`
	TotalExpense decimal.Decimal   `json:"total_expense"`
	Balance      decimal.Decimal   `json:"balance"`
	ByCategory   []CategorySummary `json:"by_category"`
}

// ReportServicer defines the contract for balance and summary reporting.
type ReportServicer interface {
	GetBalance(userID uint) (decimal.Decimal, error)
	GetSummary(userID uint, dateRange DateRange) (*Summary, error)
}
