package models_test

import (
	"strings"
	"testing"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAppointmentTrimWhitespace() {
	vendor := " Grand Venue  "
	notes := "  Final walkthrough of the venue \t"

	appointment := suite.createTestAppointment(models.Appointment{
		Vendor: vendor,
		Type:   "Venue Visit",
		Date:   types.NewDate(2023, 6, 15),
		Time:   "10:00 AM",
		Notes:  notes,
	})

	assert.Equal(suite.T(), strings.TrimSpace(vendor), appointment.Vendor)
	assert.Equal(suite.T(), strings.TrimSpace(notes), appointment.Notes)
}

func (suite *TestSuiteStandard) TestAppointmentRequiredFields() {
	tests := []struct {
		name   string
		modify func(a *models.Appointment)
		err    error
	}{
		{"No vendor", func(a *models.Appointment) { a.Vendor = "  " }, models.ErrAppointmentVendorEmpty},
		{"No type", func(a *models.Appointment) { a.Type = "" }, models.ErrAppointmentTypeEmpty},
		{"No date", func(a *models.Appointment) { a.Date = types.Date{} }, models.ErrAppointmentDateMissing},
		{"No time", func(a *models.Appointment) { a.Time = " \t " }, models.ErrAppointmentTimeEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			appointment := models.Appointment{
				Vendor: "Grand Venue",
				Type:   "Venue Visit",
				Date:   types.NewDate(2023, 6, 15),
				Time:   "10:00 AM",
			}
			tt.modify(&appointment)

			err := models.DB.Create(&appointment).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}
