package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#3B82F6"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Category represents a user defined label to group transactions,
// e.g. Food, Transport, Entertainment.
type Category struct {
	DefaultModel
	UserID uuid.UUID `json:"-" gorm:"uniqueIndex:category_user_name"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name   string    `json:"name" gorm:"uniqueIndex:category_user_name"`
	Color  string    `json:"color"` // Display color in #RRGGBB hex notation
}

// BeforeSave validates the category.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	c.Color = strings.TrimSpace(c.Color)
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	if !colorPattern.MatchString(c.Color) {
		return ErrCategoryColorInvalid
	}

	return nil
}

// TransactionCount returns the number of transactions using this category.
func (c Category) TransactionCount(db *gorm.DB) (int64, error) {
	var count int64

	err := db.
		Model(&Transaction{}).
		Where("category_id = ?", c.ID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
