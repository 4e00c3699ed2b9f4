package v1

import (
	"fmt"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type ContractEditable struct {
	Vendor         string     `json:"vendor" example:"Grand Venue" default:""`                 // The vendor the contract was signed with
	Type           string     `json:"type" example:"Venue" default:""`                         // The kind of service the contract covers
	SignedDate     types.Date `json:"signedDate" example:"2023-05-15"`                         // The day the contract was signed
	ExpirationDate types.Date `json:"expirationDate" example:"2024-06-30"`                     // The day the contract expires
	FileName       string     `json:"fileName" example:"grand_venue_contract.pdf" default:""` // Name of the contract document
}

// model returns the database resource for the API representation of the editable fields
func (editable ContractEditable) model() models.Contract {
	return models.Contract{
		Vendor:         editable.Vendor,
		Type:           editable.Type,
		SignedDate:     editable.SignedDate,
		ExpirationDate: editable.ExpirationDate,
		FileName:       editable.FileName,
	}
}

type ContractLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/contracts/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The contract itself
}

type Contract struct {
	models.DefaultModel
	ContractEditable
	Links ContractLinks `json:"links"`
}

// newContract returns the API representation of the resource
func newContract(c *gin.Context, model models.Contract) Contract {
	url := c.GetString(string(models.ContextURL))

	return Contract{
		DefaultModel: model.DefaultModel,
		ContractEditable: ContractEditable{
			Vendor:         model.Vendor,
			Type:           model.Type,
			SignedDate:     model.SignedDate,
			ExpirationDate: model.ExpirationDate,
			FileName:       model.FileName,
		},
		Links: ContractLinks{
			Self: fmt.Sprintf("%s/v1/contracts/%s", url, model.ID),
		},
	}
}

type ContractListResponse struct {
	Data  []Contract `json:"data"`                                                          // List of resources
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ContractCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ContractResponse `json:"data"`                                                          // List of created resources
}

func (t *ContractCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ContractResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ContractResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Contract `json:"data"`                                                          // The resource
}

type ContractQueryFilter struct {
	Vendor   string `form:"vendor" filterField:"false"`   // By vendor
	Expiring bool   `form:"expiring" filterField:"false"` // Only contracts expiring within the next 30 days
}
