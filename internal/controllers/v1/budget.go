package v1

import (
	"net/http"

	"github.com/everafter-planner/backend/internal/httputil"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for the budget overview with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudget)
		r.GET("", GetBudget)
		r.PATCH("", UpdateBudget)
	}

	{
		r.OPTIONS("/categories", OptionsBudgetCategories)
		r.PATCH("/categories", UpdateBudgetCategories)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget/categories [options]
func OptionsBudgetCategories(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Get budget
// @Description	Returns the budget overview with all categories and their spending
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	budget, err := budgetOverview(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Update total budget
// @Description	Sets the total budget and recomputes every category's percentage. Allocations are not changed.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [patch]
func UpdateBudget(c *gin.Context) {
	var data BudgetEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.SetTotalBudget(models.DB, data.Total)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	budget, err := budgetOverview(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Update category allocations
// @Description	Sets the allocations for the referenced categories. The total budget is replaced with the sum of all allocations.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	BudgetResponse
// @Failure		404			{object}	BudgetResponse
// @Failure		500			{object}	BudgetResponse
// @Param			allocations	body		BudgetAllocationsEditable	true	"Category allocations"
// @Router			/v1/budget/categories [patch]
func UpdateBudgetCategories(c *gin.Context) {
	var data BudgetAllocationsEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.SetCategoryAllocations(models.DB, data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	budget, err := budgetOverview(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// budgetOverview loads the budget configuration and all categories and
// computes their derived amounts.
func budgetOverview(c *gin.Context) (Budget, error) {
	config, err := models.GetBudgetConfig(models.DB)
	if err != nil {
		return Budget{}, err
	}

	spent, err := models.TotalSpent(models.DB)
	if err != nil {
		return Budget{}, err
	}

	var categories []models.Category
	err = models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		return Budget{}, err
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		apiResource, err := newCategory(c, category)
		if err != nil {
			return Budget{}, err
		}
		data = append(data, apiResource)
	}

	return newBudget(c, config, spent, data), nil
}
