package v1

import (
	"fmt"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentEditable struct {
	Vendor        string               `json:"vendor" example:"Grand Venue" default:""`                                                                      // The vendor this payment goes to
	Description   string               `json:"description" example:"Venue final payment" default:""`                                                         // What the payment is for
	Amount        decimal.Decimal      `json:"amount" example:"5000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount due
	DueDate       types.Date           `json:"dueDate" example:"2023-12-15"`                                                                                 // The day the payment is due
	Status        models.PaymentStatus `json:"status" example:"Pending" default:"Pending"`                                                                   // Pending or Paid
	PaymentDate   *types.Date          `json:"paymentDate" example:"2023-12-10"`                                                                             // The day the payment was made. Only honored when the status is Paid.
	PaymentMethod string               `json:"paymentMethod" example:"Credit Card" default:""`                                                               // How the payment was made. Only honored when the status is Paid.
}

// model returns the database resource for the API representation of the editable fields
func (editable PaymentEditable) model() models.Payment {
	return models.Payment{
		Vendor:        editable.Vendor,
		Description:   editable.Description,
		Amount:        editable.Amount,
		DueDate:       editable.DueDate,
		Status:        editable.Status,
		PaymentDate:   editable.PaymentDate,
		PaymentMethod: editable.PaymentMethod,
	}
}

type PaymentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/payments/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`      // The payment itself
	Paid string `json:"paid" example:"https://example.com/api/v1/payments/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/paid"` // Endpoint to mark the payment as paid
}

type Payment struct {
	models.DefaultModel
	PaymentEditable
	Links PaymentLinks `json:"links"`
}

// newPayment returns the API representation of the resource
func newPayment(c *gin.Context, model models.Payment) Payment {
	url := c.GetString(string(models.ContextURL))

	return Payment{
		DefaultModel: model.DefaultModel,
		PaymentEditable: PaymentEditable{
			Vendor:        model.Vendor,
			Description:   model.Description,
			Amount:        model.Amount,
			DueDate:       model.DueDate,
			Status:        model.Status,
			PaymentDate:   model.PaymentDate,
			PaymentMethod: model.PaymentMethod,
		},
		Links: PaymentLinks{
			Self: fmt.Sprintf("%s/v1/payments/%s", url, model.ID),
			Paid: fmt.Sprintf("%s/v1/payments/%s/paid", url, model.ID),
		},
	}
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PaymentCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PaymentResponse `json:"data"`                                                          // List of created resources
}

func (t *PaymentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, PaymentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PaymentResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Payment `json:"data"`                                                          // The resource
}

type PaymentQueryFilter struct {
	Status   string `form:"status"`                       // By status (Pending or Paid)
	Vendor   string `form:"vendor" filterField:"false"`   // By vendor
	Upcoming bool   `form:"upcoming" filterField:"false"` // Only Pending payments due within the next 30 days
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first payment returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of payments to return. Defaults to 50.
}

func (f PaymentQueryFilter) model() models.Payment {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Payment{
		Status: models.PaymentStatus(f.Status),
	}
}
