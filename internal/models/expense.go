package models

import (
	"strings"

	"github.com/everafter-planner/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single entry in the expense ledger.
//
// Expenses are only ever created and deleted, never updated in place. The
// owning category's spent amount is derived, so no bookkeeping is needed on
// either mutation.
type Expense struct {
	DefaultModel
	Category    Category  `json:"-"`
	CategoryID  uuid.UUID `gorm:"index"`
	Vendor      string
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Vendor = strings.TrimSpace(e.Vendor)
	e.Description = strings.TrimSpace(e.Description)

	if e.Vendor == "" {
		return ErrExpenseVendorEmpty
	}

	if e.Description == "" {
		return ErrExpenseDescriptionEmpty
	}

	if e.Date.IsZero() {
		return ErrExpenseDateMissing
	}

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Expense)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Expense) checkIntegrity(tx *gorm.DB, toSave Expense) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}
