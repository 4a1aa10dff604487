package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending ceiling for one category in one calendar month.
type Budget struct {
	DefaultModel
	UserID       uuid.UUID       `json:"-" gorm:"uniqueIndex:budget_user_category_month"`
	User         User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CategoryID   uuid.UUID       `json:"category" gorm:"uniqueIndex:budget_user_category_month"`
	Category     Category        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" gorm:"type:DECIMAL(10,2)"`
	Month        int             `json:"month" gorm:"uniqueIndex:budget_user_category_month"` // 1-12
	Year         int             `json:"year" gorm:"uniqueIndex:budget_user_category_month"`
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	if b.Month < 1 || b.Month > 12 {
		return ErrBudgetMonthInvalid
	}

	if !b.MonthlyLimit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	// The category has to belong to the same user
	var count int64
	err := tx.
		Model(&Category{}).
		Where("id = ? AND user_id = ?", b.CategoryID, b.UserID).
		Count(&count).
		Error
	if err != nil {
		return err
	}

	if count == 0 {
		return ErrCategoryInvalid
	}

	return nil
}

// Spent returns the sum of all expense transactions for the budget's
// category in the budget's month. It is recomputed on every read and
// never stored.
func (b Budget) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var spent decimal.NullDecimal

	start := time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("user_id = ?", b.UserID).
		Where("category_id = ?", b.CategoryID).
		Where("transaction_type = ?", Expense).
		Where("date(date) >= ? AND date(date) < ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Find(&spent).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !spent.Valid {
		return decimal.NewFromFloat(0), nil
	}

	return spent.Decimal, nil
}

// Remaining returns the monthly limit minus the spent amount. It is
// negative when the budget is exceeded.
func (b Budget) Remaining(db *gorm.DB) (decimal.Decimal, error) {
	spent, err := b.Spent(db)
	if err != nil {
		return decimal.Zero, err
	}

	return b.MonthlyLimit.Sub(spent), nil
}

// OverBudget reports whether strictly more than the monthly limit has
// been spent.
func (b Budget) OverBudget(db *gorm.DB) (bool, error) {
	spent, err := b.Spent(db)
	if err != nil {
		return false, err
	}

	return spent.GreaterThan(b.MonthlyLimit), nil
}
