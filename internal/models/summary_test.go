package models_test

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSummary() {
	user := suite.createTestUser(models.User{})
	otherUser := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries", Color: "#FF5733"})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(1000),
		Type:   models.Income,
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Amount:     decimal.NewFromFloat(200),
		Type:       models.Expense,
		CategoryID: &category.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(50),
		Type:   models.Expense,
	})

	// Another user's transactions do not show up in the summary
	_ = suite.createTestTransaction(models.Transaction{
		UserID: otherUser.ID,
		Amount: decimal.NewFromFloat(9999),
		Type:   models.Expense,
	})

	summary, err := models.NewSummary(models.DB, user.ID)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalIncome.Equal(decimal.NewFromFloat(1000)), "Total income is %s, should be 1000", summary.TotalIncome)
	assert.True(suite.T(), summary.TotalExpenses.Equal(decimal.NewFromFloat(250)), "Total expenses is %s, should be 250", summary.TotalExpenses)
	assert.True(suite.T(), summary.Balance.Equal(decimal.NewFromFloat(750)), "Balance is %s, should be 750", summary.Balance)
	assert.Equal(suite.T(), int64(3), summary.TransactionCount)

	// Breakdown is ordered by the spent amount, descending
	require.Len(suite.T(), summary.CategoryBreakdown, 2)
	assert.Equal(suite.T(), "Groceries", summary.CategoryBreakdown[0].CategoryName)
	assert.Equal(suite.T(), "#FF5733", summary.CategoryBreakdown[0].CategoryColor)
	assert.True(suite.T(), summary.CategoryBreakdown[0].Total.Equal(decimal.NewFromFloat(200)))

	// Transactions without a category are aggregated with an empty name
	assert.Equal(suite.T(), "", summary.CategoryBreakdown[1].CategoryName)
	assert.True(suite.T(), summary.CategoryBreakdown[1].Total.Equal(decimal.NewFromFloat(50)))
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	user := suite.createTestUser(models.User{})

	summary, err := models.NewSummary(models.DB, user.ID)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalIncome.IsZero())
	assert.True(suite.T(), summary.TotalExpenses.IsZero())
	assert.True(suite.T(), summary.Balance.IsZero())
	assert.Equal(suite.T(), int64(0), summary.TransactionCount)
	assert.Empty(suite.T(), summary.CategoryBreakdown)
}
