package v1

import (
	"fmt"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	ea_uuid "github.com/everafter-planner/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	CategoryID  uuid.UUID       `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                                                    // The ID of the category this expense belongs to
	Vendor      string          `json:"vendor" example:"Grand Venue" default:""`                                                                      // The vendor the money went to
	Description string          `json:"description" example:"Venue deposit" default:""`                                                               // What the expense was for
	Amount      decimal.Decimal `json:"amount" example:"5000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount spent
	Date        types.Date      `json:"date" example:"2023-05-15"`                                                                                    // The day the expense was made
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		CategoryID:  editable.CategoryID,
		Vendor:      editable.Vendor,
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`      // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c1a96ae4-80e3-4827-8ed0-c7656f224fee"` // The category this expense belongs to
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.ContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			CategoryID:  model.CategoryID,
			Vendor:      model.Vendor,
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
		},
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	CategoryID ea_uuid.UUID `form:"category"`                   // By category ID
	Vendor     string       `form:"vendor" filterField:"false"` // By vendor
	Search     string       `form:"search" filterField:"false"` // Search for this text in vendor and description
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Expense{
		CategoryID: f.CategoryID.UUID,
	}
}
