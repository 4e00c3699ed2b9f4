package v1

import (
	"fmt"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Total decimal.Decimal `json:"total" example:"25000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The total wedding budget
}

// BudgetAllocationsEditable maps category IDs to their new allocation.
type BudgetAllocationsEditable map[string]decimal.Decimal

type BudgetLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/budget"`                  // The budget itself
	Categories string `json:"categories" example:"https://example.com/api/v1/budget/categories"` // Endpoint to update category allocations
}

type Budget struct {
	Total      decimal.Decimal `json:"total" example:"25000"`     // The total wedding budget
	Spent      decimal.Decimal `json:"spent" example:"12450"`     // Sum of all expenses
	Remaining  decimal.Decimal `json:"remaining" example:"12550"` // Total minus spent
	Categories []Category      `json:"categories"`                // All budget categories with their spending
	Links      BudgetLinks     `json:"links"`
}

// newBudget computes the API representation of the budget overview.
func newBudget(c *gin.Context, config models.BudgetConfig, spent decimal.Decimal, categories []Category) Budget {
	url := c.GetString(string(models.ContextURL))

	return Budget{
		Total:      config.Total,
		Spent:      spent,
		Remaining:  config.Total.Sub(spent),
		Categories: categories,
		Links: BudgetLinks{
			Self:       fmt.Sprintf("%s/v1/budget", url),
			Categories: fmt.Sprintf("%s/v1/budget/categories", url),
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the total budget must be larger than zero"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                      // The budget overview
}
