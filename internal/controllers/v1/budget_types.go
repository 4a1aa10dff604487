package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/models"
	ft_uuid "github.com/finance-tracker/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID   uuid.UUID       `json:"category" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category the limit applies to
	MonthlyLimit decimal.Decimal `json:"monthly_limit" example:"300"`                             // Maximum amount to spend in the month
	Month        int             `json:"month" example:"3"`                                       // Calendar month, 1 to 12
	Year         int             `json:"year" example:"2024"`                                     // Calendar year
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:       userID,
		CategoryID:   editable.CategoryID,
		MonthlyLimit: editable.MonthlyLimit,
		Month:        editable.Month,
		Year:         editable.Year,
	}
}

func newBudgetEditable(model models.Budget) BudgetEditable {
	return BudgetEditable{
		CategoryID:   model.CategoryID,
		MonthlyLimit: model.MonthlyLimit,
		Month:        model.Month,
		Year:         model.Year,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/7e287b1f-2b18-4e02-a776-61990dc5f3e0"`        // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category the budget applies to
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`

	// These fields are computed
	CategoryName string          `json:"category_name" example:"Groceries"` // Name of the category the limit applies to
	Spent        decimal.Decimal `json:"spent_amount" example:"180.50"`     // Sum of expenses in the category for the month
	Remaining    decimal.Decimal `json:"remaining" example:"119.50"`        // Limit minus spent, negative when exceeded
	OverBudget   bool            `json:"is_over_budget" example:"false"`    // Whether more than the limit was spent
}

func newBudget(c *gin.Context, db *gorm.DB, model models.Budget) (Budget, error) {
	url := c.GetString(string(models.ContextURL))

	var category models.Category
	err := db.First(&category, model.CategoryID).Error
	if err != nil {
		return Budget{}, err
	}

	spent, err := model.Spent(db)
	if err != nil {
		return Budget{}, err
	}

	overBudget, err := model.OverBudget(db)
	if err != nil {
		return Budget{}, err
	}

	return Budget{
		DefaultModel:   model.DefaultModel,
		BudgetEditable: newBudgetEditable(model),
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
		CategoryName: category.Name,
		Spent:        spent,
		Remaining:    model.MonthlyLimit.Sub(spent),
		OverBudget:   overBudget,
	}, nil
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	CategoryID ft_uuid.UUID `form:"category"`                   // By ID of the category
	Month      int          `form:"month"`                      // By calendar month
	Year       int          `form:"year"`                       // By calendar year
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		CategoryID: f.CategoryID.UUID,
		Month:      f.Month,
		Year:       f.Year,
	}
}
