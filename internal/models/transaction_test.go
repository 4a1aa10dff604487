package models_test

import (
	"strings"
	"testing"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	description := "  Weekly groceries \t"
	transaction := suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Amount:      decimal.NewFromFloat(14.5),
		Type:        models.Expense,
		Description: description,
	})

	assert.Equal(suite.T(), strings.TrimSpace(description), transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionAmountPositive() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name   string
		amount decimal.Decimal
		err    error
	}{
		{"Positive", decimal.NewFromFloat(0.01), nil},
		{"Zero", decimal.Zero, models.ErrTransactionAmountNotPositive},
		{"Negative", decimal.NewFromFloat(-10), models.ErrTransactionAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := models.Transaction{
				UserID: user.ID,
				Amount: tt.amount,
				Type:   models.Income,
			}
			err := models.DB.Create(&transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
		Type:   "transfer",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionDateDefault() {
	user := suite.createTestUser(models.User{})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
		Type:   models.Income,
	})

	assert.False(suite.T(), transaction.Date.IsZero(), "Date must default to the current day")
}

func (suite *TestSuiteStandard) TestTransactionCategoryOwnership() {
	user := suite.createTestUser(models.User{})
	otherUser := suite.createTestUser(models.User{})
	otherCategory := suite.createTestCategory(models.Category{UserID: otherUser.ID})

	tests := []struct {
		name       string
		categoryID uuid.UUID
		err        error
	}{
		{"Category of another user", otherCategory.ID, models.ErrCategoryInvalid},
		{"Nonexistent category", uuid.New(), models.ErrCategoryInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := models.Transaction{
				UserID:     user.ID,
				Amount:     decimal.NewFromFloat(10),
				Type:       models.Expense,
				CategoryID: &tt.categoryID,
			}
			err := models.DB.Create(&transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionNilCategoryID() {
	user := suite.createTestUser(models.User{})

	// A pointer to the zero UUID is normalized to no category
	transaction := suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Amount:     decimal.NewFromFloat(10),
		Type:       models.Expense,
		CategoryID: &uuid.Nil,
	})

	assert.Nil(suite.T(), transaction.CategoryID)
}
