package models

import (
	"strings"

	"github.com/everafter-planner/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus is the state of a payment. The only transition is
// Pending → Paid, there is no way back.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// DefaultPaymentMethod is used when a payment is marked as paid via the
// quick action, which does not ask for a method.
const DefaultPaymentMethod = "Credit Card"

// Payment is a vendor payment with a due date.
type Payment struct {
	DefaultModel
	Vendor        string
	Description   string
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate       types.Date
	Status        PaymentStatus
	PaymentDate   *types.Date
	PaymentMethod string
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.Vendor = strings.TrimSpace(p.Vendor)
	p.Description = strings.TrimSpace(p.Description)
	p.PaymentMethod = strings.TrimSpace(p.PaymentMethod)

	if p.Vendor == "" {
		return ErrPaymentVendorEmpty
	}

	if p.Description == "" {
		return ErrPaymentDescriptionEmpty
	}

	if p.DueDate.IsZero() {
		return ErrPaymentDueDateMissing
	}

	if p.Status == "" {
		p.Status = PaymentStatusPending
	}

	if p.Status != PaymentStatusPending && p.Status != PaymentStatusPaid {
		return ErrPaymentStatusInvalid
	}

	// Payment details only make sense once the payment happened
	if p.Status == PaymentStatusPending {
		p.PaymentDate = nil
		p.PaymentMethod = ""
	}

	return nil
}

func (p *Payment) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(p.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}

// MarkPaid transitions the payment from Pending to Paid, recording today as
// the payment date and the default payment method.
func (p *Payment) MarkPaid(db *gorm.DB) error {
	if p.Status == PaymentStatusPaid {
		return ErrPaymentAlreadyPaid
	}

	today := types.Today()

	p.Status = PaymentStatusPaid
	p.PaymentDate = &today
	p.PaymentMethod = DefaultPaymentMethod

	return db.Save(p).Error
}
