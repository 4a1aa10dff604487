package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	ft_uuid "github.com/finance-tracker/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Amount      decimal.Decimal        `json:"amount" example:"14.50"`                                            // Amount of the transaction, always positive
	Description string                 `json:"description" example:"Weekly groceries" default:""`                 // Free text description
	Type        models.TransactionType `json:"transaction_type" example:"expense"`                                // Either "income" or "expense"
	Date        types.Date             `json:"date" example:"2024-03-17"`                                         // Day the transaction took place
	CategoryID  *uuid.UUID             `json:"category" example:"3b1ea324-d438-4419-882a-2fc91d71772f" default:""` // ID of the category, optional
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Type:        editable.Type,
		Date:        editable.Date,
		CategoryID:  editable.CategoryID,
	}
}

func newTransactionEditable(model models.Transaction) TransactionEditable {
	return TransactionEditable{
		Amount:      model.Amount,
		Description: model.Description,
		Type:        model.Type,
		Date:        model.Date,
		CategoryID:  model.CategoryID,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`    // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the transaction, if any
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`

	// These fields are read from the category
	CategoryName  *string `json:"category_name" example:"Groceries"` // Name of the category, if any
	CategoryColor *string `json:"category_color" example:"#FF5733"`  // Color of the category, if any
}

func newTransaction(c *gin.Context, db *gorm.DB, model models.Transaction) (Transaction, error) {
	url := c.GetString(string(models.ContextURL))

	transaction := Transaction{
		DefaultModel:        model.DefaultModel,
		TransactionEditable: newTransactionEditable(model),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.CategoryID != nil {
		var category models.Category
		err := db.First(&category, *model.CategoryID).Error
		if err != nil {
			return Transaction{}, err
		}

		transaction.Links.Category = fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID)
		transaction.CategoryName = &category.Name
		transaction.CategoryColor = &category.Color
	}

	return transaction, nil
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SummaryResponse struct {
	Data  *models.Summary `json:"data"`                                                       // The aggregated numbers over all transactions
	Error *string         `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type       models.TransactionType `form:"transaction_type"`               // By type, "income" or "expense"
	CategoryID ft_uuid.UUID           `form:"category"`                       // By ID of the category
	Offset     uint                   `form:"offset" filterField:"false"`     // The offset of the first transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`      // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	transaction := models.Transaction{
		Type: f.Type,
	}

	if f.CategoryID.UUID != uuid.Nil {
		id := f.CategoryID.UUID
		transaction.CategoryID = &id
	}

	return transaction
}

type ByCategoryQuery struct {
	CategoryID ft_uuid.UUID `form:"category_id"` // ID of the category to list transactions for
}
