package models

import (
	"strings"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction represents a single dated money movement of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `json:"-" gorm:"index"`
	User        User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)"`
	Description string          `json:"description"`
	Type        TransactionType `json:"transaction_type" gorm:"column:transaction_type"`
	Date        types.Date      `json:"date"`
	// When the category is deleted, the transaction is kept and the
	// reference is cleared
	CategoryID *uuid.UUID `json:"category"`
	Category   *Category  `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}

// BeforeSave validates the transaction.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = types.NewDate(time.Now())
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Type != Income && t.Type != Expense {
		return ErrTransactionTypeInvalid
	}

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	// The category is optional, but has to belong to the same user
	if t.CategoryID != nil {
		var count int64
		err := tx.
			Model(&Category{}).
			Where("id = ? AND user_id = ?", t.CategoryID, t.UserID).
			Count(&count).
			Error
		if err != nil {
			return err
		}

		if count == 0 {
			return ErrCategoryInvalid
		}
	}

	return nil
}
