package models

import (
	"strings"

	"github.com/everafter-planner/backend/internal/types"
	"gorm.io/gorm"
)

// Appointment is a scheduled meeting with a vendor.
type Appointment struct {
	DefaultModel
	Vendor string
	Type   string
	Date   types.Date
	Time   string
	Notes  string
}

func (a *Appointment) BeforeSave(_ *gorm.DB) error {
	a.Vendor = strings.TrimSpace(a.Vendor)
	a.Type = strings.TrimSpace(a.Type)
	a.Time = strings.TrimSpace(a.Time)
	a.Notes = strings.TrimSpace(a.Notes)

	if a.Vendor == "" {
		return ErrAppointmentVendorEmpty
	}

	if a.Type == "" {
		return ErrAppointmentTypeEmpty
	}

	if a.Date.IsZero() {
		return ErrAppointmentDateMissing
	}

	if a.Time == "" {
		return ErrAppointmentTimeEmpty
	}

	return nil
}
