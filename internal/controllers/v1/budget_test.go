package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{}, headers)

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        3,
		Year:         2024,
	}, headers)

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "", http.StatusNoContent, "GET, POST"},
		{"Current month", "/current_month", http.StatusNoContent, "GET"},
		{"Detail", "/" + budget.Data.ID.String(), http.StatusNoContent, "GET, PUT, PATCH, DELETE"},
		{"Nonexistent ID", "/" + uuid.New().String(), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/budgets"+tt.path, "", headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"}, headers)

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(300),
		Month:        3,
		Year:         2024,
	}, headers)

	require.NotNil(suite.T(), budget.Data)
	assert.Equal(suite.T(), category.Data.ID, budget.Data.CategoryID)
	assert.Equal(suite.T(), "Groceries", budget.Data.CategoryName)
	assert.True(suite.T(), budget.Data.MonthlyLimit.Equal(decimal.NewFromFloat(300)))
	assert.True(suite.T(), budget.Data.Spent.IsZero())
	assert.True(suite.T(), budget.Data.Remaining.Equal(decimal.NewFromFloat(300)))
	assert.False(suite.T(), budget.Data.OverBudget)
	assert.Contains(suite.T(), budget.Data.Links.Category, fmt.Sprintf("/v1/categories/%s", category.Data.ID))

	// The computed values use the names the clients rely on
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	for _, field := range []string{`"category_name"`, `"spent_amount"`, `"is_over_budget"`} {
		assert.Contains(suite.T(), r.Body.String(), field)
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	_, headers := registerTestUser(suite.T())
	_, otherHeaders := registerTestUser(suite.T())

	category := createTestCategory(suite.T(), v1.CategoryEditable{}, headers)
	otherCategory := createTestCategory(suite.T(), v1.CategoryEditable{}, otherHeaders)

	tests := []struct {
		name string
		body any
	}{
		{"Month zero", v1.BudgetEditable{CategoryID: category.Data.ID, MonthlyLimit: decimal.NewFromFloat(100), Month: 0, Year: 2024}},
		{"Month too large", v1.BudgetEditable{CategoryID: category.Data.ID, MonthlyLimit: decimal.NewFromFloat(100), Month: 13, Year: 2024}},
		{"Zero limit", v1.BudgetEditable{CategoryID: category.Data.ID, MonthlyLimit: decimal.Zero, Month: 3, Year: 2024}},
		{"Category of other user", v1.BudgetEditable{CategoryID: otherCategory.Data.ID, MonthlyLimit: decimal.NewFromFloat(100), Month: 3, Year: 2024}},
		{"Nonexistent category", v1.BudgetEditable{CategoryID: uuid.New(), MonthlyLimit: decimal.NewFromFloat(100), Month: 3, Year: 2024}},
		{"Broken body", `{ "month": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDuplicate() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{}, headers)

	editable := v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        3,
		Year:         2024,
	}

	_ = createTestBudget(suite.T(), editable, headers)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", editable, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "already a budget")
}

func (suite *TestSuiteStandard) TestBudgetsSpent() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"}, headers)

	id := category.Data.ID
	for _, amount := range []float64{50, 30} {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			Amount:     decimal.NewFromFloat(amount),
			Type:       models.Expense,
			Date:       types.NewDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
			CategoryID: &id,
		}, headers)
	}

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        3,
		Year:         2024,
	}, headers)

	assert.True(suite.T(), budget.Data.Spent.Equal(decimal.NewFromFloat(80)), "Spent is %s, should be 80", budget.Data.Spent)
	assert.True(suite.T(), budget.Data.Remaining.Equal(decimal.NewFromFloat(20)), "Remaining is %s, should be 20", budget.Data.Remaining)
	assert.False(suite.T(), budget.Data.OverBudget)
}

func (suite *TestSuiteStandard) TestBudgetsOverBudget() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"}, headers)

	id := category.Data.ID
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromFloat(80),
		Type:       models.Expense,
		Date:       types.NewDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		CategoryID: &id,
	}, headers)

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(70),
		Month:        3,
		Year:         2024,
	}, headers)

	assert.True(suite.T(), budget.Data.Remaining.Equal(decimal.NewFromFloat(-10)), "Remaining is %s, should be -10", budget.Data.Remaining)
	assert.True(suite.T(), budget.Data.OverBudget)
}

func (suite *TestSuiteStandard) TestBudgetsCurrentMonth() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"}, headers)
	otherCategory := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rent"}, headers)

	now := time.Now().UTC()

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        int(now.Month()),
		Year:         now.Year(),
	}, headers)

	// A budget in another year is not part of the current month
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   otherCategory.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        int(now.Month()),
		Year:         now.Year() - 1,
	}, headers)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/current_month", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), category.Data.ID, response.Data[0].CategoryID)
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"}, headers)
	otherCategory := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rent"}, headers)

	_ = createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, MonthlyLimit: decimal.NewFromFloat(100), Month: 3, Year: 2024}, headers)
	_ = createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, MonthlyLimit: decimal.NewFromFloat(100), Month: 4, Year: 2024}, headers)
	_ = createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: otherCategory.Data.ID, MonthlyLimit: decimal.NewFromFloat(100), Month: 3, Year: 2024}, headers)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"By month", "month=3", 2},
		{"By category", "category=" + category.Data.ID.String(), 2},
		{"By month and category", fmt.Sprintf("month=3&category=%s", category.Data.ID), 1},
		{"By year", "year=2024", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{}, headers)

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        3,
		Year:         2024,
	}, headers)
	url := fmt.Sprintf("http://example.com/v1/budgets/%s", budget.Data.ID)

	// Patching only the limit keeps everything else
	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"monthly_limit": "250"}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.MonthlyLimit.Equal(decimal.NewFromFloat(250)))
	assert.Equal(suite.T(), 3, response.Data.Month)
	assert.Equal(suite.T(), 2024, response.Data.Year)

	// Invalid month is rejected
	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"month": 13}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestBudgetsUserScoped verifies that users cannot read or modify the
// budgets of other users.
func (suite *TestSuiteStandard) TestBudgetsUserScoped() {
	_, headers := registerTestUser(suite.T())
	_, otherHeaders := registerTestUser(suite.T())

	category := createTestCategory(suite.T(), v1.CategoryEditable{}, headers)
	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        3,
		Year:         2024,
	}, headers)
	url := fmt.Sprintf("http://example.com/v1/budgets/%s", budget.Data.ID)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		r := test.Request(suite.T(), method, url, "", otherHeaders)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{}, headers)

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        3,
		Year:         2024,
	}, headers)
	url := fmt.Sprintf("http://example.com/v1/budgets/%s", budget.Data.ID)

	r := test.Request(suite.T(), http.MethodDelete, url, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, url, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBudgetsCategoryDeleteCascades verifies that deleting a category also
// deletes its budgets.
func (suite *TestSuiteStandard) TestBudgetsCategoryDeleteCascades() {
	_, headers := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), v1.CategoryEditable{}, headers)

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        3,
		Year:         2024,
	}, headers)

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
