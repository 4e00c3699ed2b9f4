package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category is a budget bucket, e.g. "Venue" or "Catering".
//
// Categories are created from seed data at startup and are never deleted.
// The Allocation is the amount planned for the bucket, the Percentage is its
// share of the total budget as shown on the dashboard.
type Category struct {
	DefaultModel
	Name       string          `gorm:"uniqueIndex"`
	Allocation decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Percentage int64
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Allocation.IsNegative() {
		return ErrAllocationNegative
	}

	return nil
}

// Spent returns the sum of all expenses booked against this category.
func (c Category) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Expense{}).
		Where("category_id = ?", c.ID).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}
