package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryExpense is one entry of the expense breakdown in the summary.
// The field names on the wire follow the lookup syntax the API has always
// used, clients depend on them.
type CategoryExpense struct {
	CategoryName  string          `json:"category__name"`
	CategoryColor string          `json:"category__color"`
	Total         decimal.Decimal `json:"total"`
}

// Summary is the aggregated view over all transactions of one user.
type Summary struct {
	TotalIncome       decimal.Decimal   `json:"total_income"`
	TotalExpenses     decimal.Decimal   `json:"total_expenses"`
	Balance           decimal.Decimal   `json:"balance"`
	TransactionCount  int64             `json:"transaction_count"`
	CategoryBreakdown []CategoryExpense `json:"category_breakdown"`
}

// NewSummary computes the summary for a user. All sums over zero matching
// transactions are 0, never absent.
func NewSummary(db *gorm.DB, userID uuid.UUID) (Summary, error) {
	income, err := transactionsSum(db, userID, Income)
	if err != nil {
		return Summary{}, err
	}

	expenses, err := transactionsSum(db, userID, Expense)
	if err != nil {
		return Summary{}, err
	}

	var count int64
	err = db.
		Model(&Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return Summary{}, err
	}

	breakdown := make([]CategoryExpense, 0)
	err = db.
		Table("transactions").
		Select("COALESCE(categories.name, '') AS category_name, COALESCE(categories.color, '') AS category_color, SUM(transactions.amount) AS total").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Where("transactions.transaction_type = ?", Expense).
		Group("transactions.category_id").
		Order("total DESC").
		Scan(&breakdown).
		Error
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalIncome:       income,
		TotalExpenses:     expenses,
		Balance:           income.Sub(expenses),
		TransactionCount:  count,
		CategoryBreakdown: breakdown,
	}, nil
}

// transactionsSum returns the sum of all transaction amounts of one type
// for a user.
func transactionsSum(db *gorm.DB, userID uuid.UUID, t TransactionType) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("user_id = ?", userID).
		Where("transaction_type = ?", t).
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !sum.Valid {
		return decimal.NewFromFloat(0), nil
	}

	return sum.Decimal, nil
}
