package v1

import (
	"fmt"
	"time"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type VendorEditable struct {
	Name        string `json:"name" example:"Elegant Flowers" default:""`                                            // Name of the vendor
	Category    string `json:"category" example:"Florist" default:""`                                                // The kind of service the vendor offers
	Rating      int64  `json:"rating" example:"5" minimum:"0" maximum:"5" default:"0"`                               // Rating from 0 (unrated) to 5
	Image       string `json:"image" example:"/placeholder.svg?height=200&width=200" default:""`                     // URL of the vendor image
	Description string `json:"description" example:"Specializing in elegant floral arrangements for weddings." default:""` // Description of the vendor
	Favorite    bool   `json:"favorite" example:"true" default:"false"`                                              // Whether the vendor is a favorite
	Notes       string `json:"notes" example:"They have great options for centerpieces." default:""`                 // Personal notes about the vendor
}

// model returns the database resource for the API representation of the editable fields
func (editable VendorEditable) model() models.Vendor {
	return models.Vendor{
		Name:        editable.Name,
		Category:    editable.Category,
		Rating:      editable.Rating,
		Image:       editable.Image,
		Description: editable.Description,
		Favorite:    editable.Favorite,
		Notes:       editable.Notes,
	}
}

type VendorLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/vendors/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`              // The vendor itself
	Messages string `json:"messages" example:"https://example.com/api/v1/vendors/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/messages"` // The conversation with the vendor
}

type Vendor struct {
	models.DefaultModel
	VendorEditable
	Links VendorLinks `json:"links"`
}

// newVendor returns the API representation of the resource
func newVendor(c *gin.Context, model models.Vendor) Vendor {
	url := c.GetString(string(models.ContextURL))

	return Vendor{
		DefaultModel: model.DefaultModel,
		VendorEditable: VendorEditable{
			Name:        model.Name,
			Category:    model.Category,
			Rating:      model.Rating,
			Image:       model.Image,
			Description: model.Description,
			Favorite:    model.Favorite,
			Notes:       model.Notes,
		},
		Links: VendorLinks{
			Self:     fmt.Sprintf("%s/v1/vendors/%s", url, model.ID),
			Messages: fmt.Sprintf("%s/v1/vendors/%s/messages", url, model.ID),
		},
	}
}

type VendorListResponse struct {
	Data       []Vendor    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type VendorCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []VendorResponse `json:"data"`                                                          // List of created resources
}

func (t *VendorCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, VendorResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type VendorResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Vendor `json:"data"`                                                          // The resource
}

type VendorQueryFilter struct {
	Category string `form:"category"`                     // By category
	Search   string `form:"search" filterField:"false"`   // Search in name and category. Supports * as wildcard.
	Favorite bool   `form:"favorite"`                     // Only favorites
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first vendor returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of vendors to return. Defaults to 50.
}

func (f VendorQueryFilter) model() models.Vendor {
	return models.Vendor{
		Category: f.Category,
		Favorite: f.Favorite,
	}
}

type MessageEditable struct {
	Text string `json:"text" example:"Do you have availability on June 15th next year?"` // The message text
}

type Message struct {
	models.DefaultModel
	Sender    models.MessageSender `json:"sender" example:"user"`                          // Who wrote the message, user or vendor
	Text      string               `json:"text" example:"That would be great."`            // The message text
	Timestamp time.Time            `json:"timestamp" example:"2023-05-15T10:30:00Z"`       // When the message was sent
}

// newMessage returns the API representation of the resource
func newMessage(model models.Message) Message {
	return Message{
		DefaultModel: model.DefaultModel,
		Sender:       model.Sender,
		Text:         model.Text,
		Timestamp:    model.Timestamp,
	}
}

type MessageListResponse struct {
	Data  []Message `json:"data"`                                                          // List of resources
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MessageResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Message `json:"data"`                                                          // The resource
}
