package v1

import (
	"net/http"

	"github.com/everafter-planner/backend/internal/httputil"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budget       string `json:"budget" example:"https://example.com/api/v1/budget"`             // URL of the budget endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of Category collection endpoint
	Expenses     string `json:"expenses" example:"https://example.com/api/v1/expenses"`         // URL of Expense collection endpoint
	Payments     string `json:"payments" example:"https://example.com/api/v1/payments"`         // URL of Payment collection endpoint
	Contracts    string `json:"contracts" example:"https://example.com/api/v1/contracts"`       // URL of Contract collection endpoint
	Appointments string `json:"appointments" example:"https://example.com/api/v1/appointments"` // URL of Appointment collection endpoint
	Vendors      string `json:"vendors" example:"https://example.com/api/v1/vendors"`           // URL of Vendor collection endpoint
	Reminders    string `json:"reminders" example:"https://example.com/api/v1/reminders"`       // URL of the reminder feed endpoint
	Undo         string `json:"undo" example:"https://example.com/api/v1/undo"`                 // URL of the undo register endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budget:       url + "/v1/budget",
			Categories:   url + "/v1/categories",
			Expenses:     url + "/v1/expenses",
			Payments:     url + "/v1/payments",
			Contracts:    url + "/v1/contracts",
			Appointments: url + "/v1/appointments",
			Vendors:      url + "/v1/vendors",
			Reminders:    url + "/v1/reminders",
			Undo:         url + "/v1/undo",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
