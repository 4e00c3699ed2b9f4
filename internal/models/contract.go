package models

import (
	"strings"

	"github.com/everafter-planner/backend/internal/types"
	"gorm.io/gorm"
)

// Contract is a signed vendor contract. The file itself is not stored, only
// its name for the user's records.
type Contract struct {
	DefaultModel
	Vendor         string
	Type           string
	SignedDate     types.Date
	ExpirationDate types.Date
	FileName       string
}

func (c *Contract) BeforeSave(_ *gorm.DB) error {
	c.Vendor = strings.TrimSpace(c.Vendor)
	c.Type = strings.TrimSpace(c.Type)
	c.FileName = strings.TrimSpace(c.FileName)

	if c.Vendor == "" {
		return ErrContractVendorEmpty
	}

	if c.Type == "" {
		return ErrContractTypeEmpty
	}

	if c.SignedDate.IsZero() {
		return ErrContractSignedDateMissing
	}

	if c.FileName == "" {
		return ErrContractFileNameEmpty
	}

	// A contract cannot expire before it was signed
	if !c.ExpirationDate.IsZero() && c.ExpirationDate.Before(c.SignedDate) {
		return ErrContractExpiresTooEarly
	}

	return nil
}
