package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/everafter-planner/backend/internal/controllers/v1"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/everafter-planner/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAppointmentsCreate() {
	appointment := createTestAppointment(suite.T(), v1.AppointmentEditable{
		Vendor: "Grand Venue",
		Type:   "Venue Visit",
		Date:   types.NewDate(2026, time.June, 15),
		Time:   "10:00 AM",
		Notes:  "Final walkthrough of the venue",
	})

	require.NotNil(suite.T(), appointment.Data)
	assert.Equal(suite.T(), "Venue Visit", appointment.Data.Type)
	assert.Equal(suite.T(), "10:00 AM", appointment.Data.Time)
}

func (suite *TestSuiteStandard) TestAppointmentsCreateInvalid() {
	valid := v1.AppointmentEditable{
		Vendor: "Grand Venue",
		Type:   "Venue Visit",
		Date:   types.NewDate(2026, time.June, 15),
		Time:   "10:00 AM",
	}

	tests := []struct {
		name   string
		modify func(a *v1.AppointmentEditable)
	}{
		{"No vendor", func(a *v1.AppointmentEditable) { a.Vendor = "  " }},
		{"No type", func(a *v1.AppointmentEditable) { a.Type = "" }},
		{"No date", func(a *v1.AppointmentEditable) { a.Date = types.Date{} }},
		{"No time", func(a *v1.AppointmentEditable) { a.Time = " \t " }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			appointment := valid
			tt.modify(&appointment)

			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/appointments", []v1.AppointmentEditable{appointment})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	suite.T().Run("Empty appointment", func(t *testing.T) {
		recorder := test.Request(t, http.MethodPost, "http://example.com/v1/appointments", []v1.AppointmentEditable{{}})
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	})
}

func (suite *TestSuiteStandard) TestAppointmentsGetSorted() {
	createTestAppointment(suite.T(), v1.AppointmentEditable{Type: "Tasting", Date: types.NewDate(2026, time.July, 3)})
	createTestAppointment(suite.T(), v1.AppointmentEditable{Type: "Fitting", Date: types.NewDate(2026, time.May, 20)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/appointments", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AppointmentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Fitting", response.Data[0].Type)
	assert.Equal(suite.T(), "Tasting", response.Data[1].Type)
}

func (suite *TestSuiteStandard) TestAppointmentsGetUpcoming() {
	createTestAppointment(suite.T(), v1.AppointmentEditable{Type: "Past tasting", Date: types.Today().AddDays(-7)})
	createTestAppointment(suite.T(), v1.AppointmentEditable{Type: "Rehearsal", Date: types.Today().AddDays(3)})
	createTestAppointment(suite.T(), v1.AppointmentEditable{Type: "Hair trial", Date: types.Today()})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/appointments?upcoming=true", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AppointmentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Today counts as upcoming
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Hair trial", response.Data[0].Type)
	assert.Equal(suite.T(), "Rehearsal", response.Data[1].Type)
}

func (suite *TestSuiteStandard) TestAppointmentsGetFilterVendor() {
	createTestAppointment(suite.T(), v1.AppointmentEditable{Vendor: "Grand Venue"})
	createTestAppointment(suite.T(), v1.AppointmentEditable{Vendor: "Bloom & Co"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/appointments?vendor=Bloom", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AppointmentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Bloom & Co", response.Data[0].Vendor)
}

func (suite *TestSuiteStandard) TestAppointmentDeleteUndo() {
	appointment := createTestAppointment(suite.T(), v1.AppointmentEditable{
		Vendor: "Bloom & Co",
		Type:   "Flower Consultation",
	})

	recorder := test.Request(suite.T(), http.MethodDelete, appointment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/undo", "")
	var undoResponse v1.UndoResponse
	test.DecodeResponse(suite.T(), &recorder, &undoResponse)
	require.NotNil(suite.T(), undoResponse.Data)
	assert.Equal(suite.T(), "appointment: Flower Consultation (Bloom & Co)", undoResponse.Data.Label)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/undo", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, appointment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAppointmentDeleteInvalidID() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "certainly-not", http.StatusBadRequest},
		{"Does not exist", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/appointments/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
