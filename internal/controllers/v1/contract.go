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

// RegisterContractRoutes registers the routes for contracts with
// the RouterGroup that is passed.
func RegisterContractRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsContractList)
		r.GET("", GetContracts)
		r.POST("", CreateContracts)
	}

	{
		r.OPTIONS("/:id", OptionsContractDetail)
		r.GET("/:id", GetContract)
		r.DELETE("/:id", DeleteContract)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contracts
// @Success		204
// @Router			/v1/contracts [options]
func OptionsContractList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contracts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contracts/{id} [options]
func OptionsContractDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Contract{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create contracts
// @Description	Creates new contracts
// @Tags			Contracts
// @Produce		json
// @Success		201			{object}	ContractCreateResponse
// @Failure		400			{object}	ContractCreateResponse
// @Failure		500			{object}	ContractCreateResponse
// @Param			contracts	body		[]ContractEditable	true	"Contracts"
// @Router			/v1/contracts [post]
func CreateContracts(c *gin.Context) {
	var contracts []ContractEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &contracts)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ContractCreateResponse{}

	for _, create := range contracts {
		contract := create.model()
		err = models.DB.Create(&contract).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newContract(c, contract)
		r.Data = append(r.Data, ContractResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get contracts
// @Description	Returns a list of contracts
// @Tags			Contracts
// @Produce		json
// @Success		200	{object}	ContractListResponse
// @Failure		400	{object}	ContractListResponse
// @Failure		500	{object}	ContractListResponse
// @Router			/v1/contracts [get]
// @Param			vendor		query	string	false	"Filter by vendor"
// @Param			expiring	query	bool	false	"Only contracts expiring within the next 30 days"
func GetContracts(c *gin.Context) {
	var filter ContractQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ContractListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("date(contracts.signed_date) ASC, datetime(contracts.created_at) ASC")

	if filter.Vendor != "" {
		q = q.Where("vendor LIKE ?", fmt.Sprintf("%%%s%%", filter.Vendor))
	} else if slices.Contains(setFields, "Vendor") {
		q = q.Where("vendor = ''")
	}

	if filter.Expiring {
		today := types.Today()
		q = q.
			Where("expiration_date >= ? AND expiration_date <= ?", today, today.AddDays(models.ReminderWindowDays)).
			Order("date(contracts.expiration_date) ASC")
	}

	var contracts []models.Contract
	err := q.Find(&contracts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContractListResponse{
			Error: &s,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Contract, 0, len(contracts))
	for _, contract := range contracts {
		data = append(data, newContract(c, contract))
	}

	c.JSON(http.StatusOK, ContractListResponse{Data: data})
}

// @Summary		Get contract
// @Description	Returns a specific contract
// @Tags			Contracts
// @Produce		json
// @Success		200	{object}	ContractResponse
// @Failure		400	{object}	ContractResponse
// @Failure		404	{object}	ContractResponse
// @Failure		500	{object}	ContractResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contracts/{id} [get]
func GetContract(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	var contract models.Contract
	err = models.DB.First(&contract, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	apiResource := newContract(c, contract)
	c.JSON(http.StatusOK, ContractResponse{Data: &apiResource})
}

// @Summary		Delete contract
// @Description	Deletes a contract. The deletion can be undone until the next delete happens.
// @Tags			Contracts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contracts/{id} [delete]
func DeleteContract(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var contract models.Contract
	err = models.DB.First(&contract, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&contract).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	undoRegister.Arm(fmt.Sprintf("contract: %s (%s)", contract.Type, contract.Vendor), func(db *gorm.DB) error {
		return models.Restore(db, &models.Contract{}, contract.ID)
	})

	c.JSON(http.StatusNoContent, nil)
}
