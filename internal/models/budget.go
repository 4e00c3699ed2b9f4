package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetConfig is the single row holding the total wedding budget.
//
// Spent and remaining amounts are never stored, they are derived from the
// expense ledger on every read.
type BudgetConfig struct {
	DefaultModel
	Total decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// GetBudgetConfig returns the budget configuration row.
func GetBudgetConfig(db *gorm.DB) (BudgetConfig, error) {
	var config BudgetConfig
	err := db.First(&config).Error

	return config, err
}

// TotalSpent returns the sum of all expenses.
func TotalSpent(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Expense{}).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}

// percentage returns part of total as a rounded integer percentage.
func percentage(part, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}

	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// SetTotalBudget replaces the total budget and recomputes every category's
// percentage against the new total.
//
// Category allocations are deliberately left untouched: the last edited side
// wins, and here the user edited the total. See SetCategoryAllocations for
// the other direction.
func SetTotalBudget(db *gorm.DB, total decimal.Decimal) error {
	if !total.IsPositive() {
		return ErrTotalBudgetNotPositive
	}

	return db.Transaction(func(tx *gorm.DB) error {
		config, err := GetBudgetConfig(tx)
		if err != nil {
			return err
		}

		err = tx.Model(&config).Update("Total", total).Error
		if err != nil {
			return err
		}

		var categories []Category
		err = tx.Find(&categories).Error
		if err != nil {
			return err
		}

		for _, category := range categories {
			err = tx.Model(&category).Update("Percentage", percentage(category.Allocation, total)).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// SetCategoryAllocations updates category allocations from a map of category
// ID to amount. The total budget is replaced wholesale with the sum of all
// allocations and every percentage is recomputed against that sum.
//
// Categories missing from the map keep their current allocation.
func SetCategoryAllocations(db *gorm.DB, allocations map[string]decimal.Decimal) error {
	for _, amount := range allocations {
		if amount.IsNegative() {
			return ErrAllocationNegative
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var categories []Category
		err := tx.Find(&categories).Error
		if err != nil {
			return err
		}

		// Every key must refer to an existing category
		known := make(map[string]bool, len(categories))
		for _, category := range categories {
			known[category.ID.String()] = true
		}
		for id := range allocations {
			if !known[id] {
				return ErrCategoryUnknown
			}
		}

		// The new grand total is the sum of all allocations
		total := decimal.Zero
		for i, category := range categories {
			if amount, ok := allocations[category.ID.String()]; ok {
				categories[i].Allocation = amount
			}
			total = total.Add(categories[i].Allocation)
		}

		if !total.IsPositive() {
			return ErrTotalBudgetNotPositive
		}

		config, err := GetBudgetConfig(tx)
		if err != nil {
			return err
		}

		err = tx.Model(&config).Update("Total", total).Error
		if err != nil {
			return err
		}

		for _, category := range categories {
			err = tx.Model(&category).
				Select("Allocation", "Percentage").
				Updates(Category{
					Allocation: category.Allocation,
					Percentage: percentage(category.Allocation, total),
				}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
