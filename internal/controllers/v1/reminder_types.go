package v1

import (
	"github.com/everafter-planner/backend/internal/models"
)

type ReminderListResponse struct {
	Data  []models.Reminder `json:"data"`                                                          // List of resources
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReminderQueryFilter struct {
	Today bool `form:"today"` // Only reminders for today
}
