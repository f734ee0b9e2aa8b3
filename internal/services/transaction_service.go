package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateTransaction creates a new transaction owned by the given user.
func (s *transactionService) CreateTransaction(
	userID uint,
	title string,
	amount decimal.Decimal,
	transactionType models.TransactionType,
	description string,
	categoryID uint,
	date models.Date,
) (*models.Transaction, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.ErrNonPositiveAmount
	}
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if categoryID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction_date is required")
	}

	// The category must exist; categories are shared, so there is no owner check.
	if _, err := s.categoryService.GetCategoryByID(categoryID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:          userID,
		CategoryID:      categoryID,
		Title:           title,
		Amount:          amount,
		Type:            transactionType,
		Description:     description,
		TransactionDate: date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Return the stored row joined with its category.
	return s.GetTransactionByID(userID, transaction.ID)
}

// GetUserTransactions retrieves all transactions owned by the user, joined
// with their categories, most recent first. Ties on the date are broken by
// insertion order so the listing is deterministic.
func (s *transactionService) GetUserTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("transaction_date DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
// A transaction owned by another user yields the same not-found error as a
// missing one; that is the authorization boundary.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update. Only non-nil fields are
// touched, so an explicit empty description or a same-value category change
// is applied rather than dropped.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if fields.Title != nil {
		if *fields.Title == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title cannot be empty")
		}
		updates["title"] = *fields.Title
	}
	if fields.Amount != nil {
		if !fields.Amount.IsPositive() {
			return nil, apperrors.ErrNonPositiveAmount
		}
		updates["amount"] = *fields.Amount
	}
	if fields.Type != nil {
		if !fields.Type.Valid() {
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *fields.Type
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.CategoryID != nil {
		if _, err := s.categoryService.GetCategoryByID(*fields.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *fields.CategoryID
	}
	if fields.TransactionDate != nil {
		updates["transaction_date"] = *fields.TransactionDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction permanently removes a transaction under the same
// ownership rule. Deleting an already-deleted ID reports not found.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
