package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// User errors
	ErrUsernameEmpty     = errors.New("the username must not be empty")
	ErrUsernameNotUnique = errors.New("this username is already taken")
	ErrPasswordEmpty     = errors.New("the password must not be empty")

	// Category errors
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique per user")
	ErrCategoryColorInvalid  = errors.New("the color must be a hex color code in #RRGGBB format")
	ErrCategoryInvalid       = errors.New("the category does not exist or does not belong to you")

	// Transaction errors
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be greater than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be income or expense")

	// Budget errors
	ErrBudgetMonthInvalid     = errors.New("the month must be between 1 and 12")
	ErrBudgetLimitNotPositive = errors.New("the monthly limit must be greater than zero")
	ErrBudgetNotUnique        = errors.New("there is already a budget for this category and month")
)
