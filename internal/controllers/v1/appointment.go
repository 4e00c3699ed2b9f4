package v1

import (
	"fmt"
	"net/http"

	"github.com/everafter-planner/backend/internal/httputil"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterAppointmentRoutes registers the routes for appointments with
// the RouterGroup that is passed.
func RegisterAppointmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAppointmentList)
		r.GET("", GetAppointments)
		r.POST("", CreateAppointments)
	}

	{
		r.OPTIONS("/:id", OptionsAppointmentDetail)
		r.GET("/:id", GetAppointment)
		r.DELETE("/:id", DeleteAppointment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Appointments
// @Success		204
// @Router			/v1/appointments [options]
func OptionsAppointmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Appointments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/appointments/{id} [options]
func OptionsAppointmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Appointment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create appointments
// @Description	Creates new appointments
// @Tags			Appointments
// @Produce		json
// @Success		201				{object}	AppointmentCreateResponse
// @Failure		400				{object}	AppointmentCreateResponse
// @Failure		500				{object}	AppointmentCreateResponse
// @Param			appointments	body		[]AppointmentEditable	true	"Appointments"
// @Router			/v1/appointments [post]
func CreateAppointments(c *gin.Context) {
	var appointments []AppointmentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &appointments)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AppointmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AppointmentCreateResponse{}

	for _, create := range appointments {
		appointment := create.model()
		err = models.DB.Create(&appointment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newAppointment(c, appointment)
		r.Data = append(r.Data, AppointmentResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get appointments
// @Description	Returns a list of appointments, ascending by date
// @Tags			Appointments
// @Produce		json
// @Success		200	{object}	AppointmentListResponse
// @Failure		400	{object}	AppointmentListResponse
// @Failure		500	{object}	AppointmentListResponse
// @Router			/v1/appointments [get]
// @Param			vendor		query	string	false	"Filter by vendor"
// @Param			upcoming	query	bool	false	"Only appointments from today on"
func GetAppointments(c *gin.Context) {
	var filter AppointmentQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, AppointmentListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("date(appointments.date) ASC, datetime(appointments.created_at) ASC")

	if filter.Vendor != "" {
		q = q.Where("vendor LIKE ?", fmt.Sprintf("%%%s%%", filter.Vendor))
	} else if slices.Contains(setFields, "Vendor") {
		q = q.Where("vendor = ''")
	}

	if filter.Upcoming {
		q = q.Where("date >= ?", types.Today())
	}

	var appointments []models.Appointment
	err := q.Find(&appointments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AppointmentListResponse{
			Error: &s,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		data = append(data, newAppointment(c, appointment))
	}

	c.JSON(http.StatusOK, AppointmentListResponse{Data: data})
}

// @Summary		Get appointment
// @Description	Returns a specific appointment
// @Tags			Appointments
// @Produce		json
// @Success		200	{object}	AppointmentResponse
// @Failure		400	{object}	AppointmentResponse
// @Failure		404	{object}	AppointmentResponse
// @Failure		500	{object}	AppointmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/appointments/{id} [get]
func GetAppointment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AppointmentResponse{
			Error: &e,
		})
		return
	}

	var appointment models.Appointment
	err = models.DB.First(&appointment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AppointmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAppointment(c, appointment)
	c.JSON(http.StatusOK, AppointmentResponse{Data: &apiResource})
}

// @Summary		Delete appointment
// @Description	Deletes an appointment. The deletion can be undone until the next delete happens.
// @Tags			Appointments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/appointments/{id} [delete]
func DeleteAppointment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var appointment models.Appointment
	err = models.DB.First(&appointment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&appointment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	undoRegister.Arm(fmt.Sprintf("appointment: %s (%s)", appointment.Type, appointment.Vendor), func(db *gorm.DB) error {
		return models.Restore(db, &models.Appointment{}, appointment.ID)
	})

	c.JSON(http.StatusNoContent, nil)
}
