package v1

import (
	"fmt"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The category itself
}

type Category struct {
	models.DefaultModel
	Name       string          `json:"name" example:"Venue"`       // Name of the category
	Allocation decimal.Decimal `json:"allocation" example:"10000"` // The amount allocated to this category
	Spent      decimal.Decimal `json:"spent" example:"5000"`       // Sum of all expenses in this category
	Percentage int64           `json:"percentage" example:"40"`    // Share of the total budget in percent
	Links      CategoryLinks   `json:"links"`
}

// newCategory returns the API representation of the resource. The spent
// amount is derived from the expense ledger on every call.
func newCategory(c *gin.Context, model models.Category) (Category, error) {
	url := c.GetString(string(models.ContextURL))

	spent, err := model.Spent(models.DB)
	if err != nil {
		return Category{}, err
	}

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Allocation:   model.Allocation,
		Spent:        spent,
		Percentage:   model.Percentage,
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}, nil
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of resources
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The resource
}
