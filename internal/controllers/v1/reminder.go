package v1

import (
	"fmt"
	"net/http"

	"github.com/everafter-planner/backend/internal/httputil"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterReminderRoutes registers the routes for reminders with the
// RouterGroup that is passed.
func RegisterReminderRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReminderList)
		r.GET("", GetReminders)
	}

	{
		r.OPTIONS("/:id", OptionsReminderDetail)
		r.DELETE("/:id", DeleteReminder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Router			/v1/reminders [options]
func OptionsReminderList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/reminders/{id} [options]
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
func OptionsReminderDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get reminders
// @Description	Returns the reminder feed, derived from pending payments due within the next 30 days and upcoming appointments
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderListResponse
// @Failure		400	{object}	ReminderListResponse
// @Failure		500	{object}	ReminderListResponse
// @Router			/v1/reminders [get]
// @Param			today	query	bool	false	"Only reminders for today"
func GetReminders(c *gin.Context) {
	var filter ReminderQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ReminderListResponse{
			Error: &s,
		})
		return
	}

	today := types.Today()

	reminders, err := models.Reminders(models.DB, today)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	if filter.Today {
		filtered := make([]models.Reminder, 0, len(reminders))
		for _, reminder := range reminders {
			if reminder.Date.Equal(today) {
				filtered = append(filtered, reminder)
			}
		}
		reminders = filtered
	}

	c.JSON(http.StatusOK, ReminderListResponse{Data: reminders})
}

// @Summary		Dismiss reminder
// @Description	Dismisses a reminder so that it no longer appears in the feed. The underlying payment or appointment is not changed.
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [delete]
func DeleteReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Look up the source so that the undo label can name it
	label := fmt.Sprintf("reminder: %s", uri.ID)
	var payment models.Payment
	if models.DB.First(&payment, uri.ID).Error == nil {
		label = fmt.Sprintf("reminder: %s", payment.Description)
	} else {
		var appointment models.Appointment
		if models.DB.First(&appointment, uri.ID).Error == nil {
			label = fmt.Sprintf("reminder: %s with %s", appointment.Type, appointment.Vendor)
		}
	}

	err = models.DismissReminder(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	sourceID := uri.ID
	undoRegister.Arm(label, func(db *gorm.DB) error {
		// The dismissal row has to go away for good since the unique index
		// on the source also covers soft deleted rows
		return db.Unscoped().Where("source_id = ?", sourceID).Delete(&models.ReminderDismissal{}).Error
	})

	c.JSON(http.StatusNoContent, nil)
}
