package v1

import (
	"fmt"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type AppointmentEditable struct {
	Vendor string     `json:"vendor" example:"Grand Venue" default:""`                          // The vendor the appointment is with
	Type   string     `json:"type" example:"Venue Visit" default:""`                            // The kind of appointment
	Date   types.Date `json:"date" example:"2023-06-15"`                                        // The day of the appointment
	Time   string     `json:"time" example:"10:00 AM" default:""`                               // The time of the appointment
	Notes  string     `json:"notes" example:"Final walkthrough of the venue" default:""`        // Notes about the appointment
}

// model returns the database resource for the API representation of the editable fields
func (editable AppointmentEditable) model() models.Appointment {
	return models.Appointment{
		Vendor: editable.Vendor,
		Type:   editable.Type,
		Date:   editable.Date,
		Time:   editable.Time,
		Notes:  editable.Notes,
	}
}

type AppointmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/appointments/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The appointment itself
}

type Appointment struct {
	models.DefaultModel
	AppointmentEditable
	Links AppointmentLinks `json:"links"`
}

// newAppointment returns the API representation of the resource
func newAppointment(c *gin.Context, model models.Appointment) Appointment {
	url := c.GetString(string(models.ContextURL))

	return Appointment{
		DefaultModel: model.DefaultModel,
		AppointmentEditable: AppointmentEditable{
			Vendor: model.Vendor,
			Type:   model.Type,
			Date:   model.Date,
			Time:   model.Time,
			Notes:  model.Notes,
		},
		Links: AppointmentLinks{
			Self: fmt.Sprintf("%s/v1/appointments/%s", url, model.ID),
		},
	}
}

type AppointmentListResponse struct {
	Data  []Appointment `json:"data"`                                                          // List of resources
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AppointmentCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AppointmentResponse `json:"data"`                                                          // List of created resources
}

func (t *AppointmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AppointmentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AppointmentResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Appointment `json:"data"`                                                          // The resource
}

type AppointmentQueryFilter struct {
	Vendor   string `form:"vendor" filterField:"false"`   // By vendor
	Upcoming bool   `form:"upcoming" filterField:"false"` // Only appointments from today on
}
