package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// reportService computes balance and summary reports over a user's
// transactions. All arithmetic uses decimal addition so repeated sums of
// currency amounts never drift.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GetBalance computes total income minus total expense over all of the
// user's transactions. An empty set yields zero, never an error.
func (s *reportService) GetBalance(userID uint) (decimal.Decimal, error) {
	var transactions []models.Transaction
	if err := s.db.Select("type", "amount").
		Where("user_id = ?", userID).
		Find(&transactions).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	balance := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance, nil
}

// GetSummary computes income/expense totals and a per-(type, category)
// breakdown over the user's transactions inside the optional inclusive
// date window. Buckets with no transactions are omitted; the breakdown is
// ordered by total amount descending, ties by category id.
func (s *reportService) GetSummary(userID uint, dateRange DateRange) (*Summary, error) {
	query := s.db.Preload("Category").Where("user_id = ?", userID)
	if dateRange.Start != nil {
		query = query.Where("transaction_date >= ?", *dateRange.Start)
	}
	if dateRange.End != nil {
		query = query.Where("transaction_date <= ?", *dateRange.End)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type bucketKey struct {
		Type       models.TransactionType
		CategoryID uint
	}

	summary := &Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		ByCategory:   []CategorySummary{},
	}
	buckets := make(map[bucketKey]*CategorySummary)

	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
		}

		key := bucketKey{Type: tx.Type, CategoryID: tx.CategoryID}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &CategorySummary{
				Type:         tx.Type,
				CategoryID:   tx.CategoryID,
				CategoryName: tx.Category.Name,
				Icon:         tx.Category.Icon,
				Color:        tx.Category.Color,
				TotalAmount:  decimal.Zero,
			}
			buckets[key] = bucket
		}
		bucket.TotalAmount = bucket.TotalAmount.Add(tx.Amount)
		bucket.Count++
	}

	for _, bucket := range buckets {
		summary.ByCategory = append(summary.ByCategory, *bucket)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if cmp := a.TotalAmount.Cmp(b.TotalAmount); cmp != 0 {
			return cmp > 0
		}
		return a.CategoryID < b.CategoryID
	})

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}
