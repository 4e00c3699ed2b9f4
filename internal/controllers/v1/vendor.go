package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/everafter-planner/backend/internal/httputil"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterVendorRoutes registers the routes for vendors and their
// conversations with the RouterGroup that is passed.
func RegisterVendorRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsVendorList)
		r.GET("", GetVendors)
		r.POST("", CreateVendors)
	}

	{
		r.OPTIONS("/:id", OptionsVendorDetail)
		r.GET("/:id", GetVendor)
		r.PATCH("/:id", UpdateVendor)
	}

	{
		r.OPTIONS("/:id/messages", OptionsVendorMessages)
		r.GET("/:id/messages", GetVendorMessages)
		r.POST("/:id/messages", CreateVendorMessage)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vendors
// @Success		204
// @Router			/v1/vendors [options]
func OptionsVendorList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vendors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vendors/{id} [options]
func OptionsVendorDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Vendor{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vendors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vendors/{id}/messages [options]
func OptionsVendorMessages(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Vendor{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Create vendors
// @Description	Creates new vendors
// @Tags			Vendors
// @Produce		json
// @Success		201		{object}	VendorCreateResponse
// @Failure		400		{object}	VendorCreateResponse
// @Failure		500		{object}	VendorCreateResponse
// @Param			vendors	body		[]VendorEditable	true	"Vendors"
// @Router			/v1/vendors [post]
func CreateVendors(c *gin.Context) {
	var vendors []VendorEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &vendors)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := VendorCreateResponse{}

	for _, create := range vendors {
		vendor := create.model()

		err = models.DB.Create(&vendor).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newVendor(c, vendor)
		r.Data = append(r.Data, VendorResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get vendors
// @Description	Returns a list of vendors
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	VendorListResponse
// @Failure		400	{object}	VendorListResponse
// @Failure		500	{object}	VendorListResponse
// @Router			/v1/vendors [get]
// @Param			category	query	string	false	"Filter by category"
// @Param			search		query	string	false	"Search in name and category. Supports * as wildcard."
// @Param			favorite	query	bool	false	"Only favorites"
// @Param			offset		query	uint	false	"The offset of the first vendor returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of vendors to return. Defaults to 50."
func GetVendors(c *gin.Context) {
	var filter VendorQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, VendorListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("vendors.name ASC").
		Where(&where, queryFields...)

	// Substring search happens in the database. Wildcard patterns are
	// matched in memory below since SQLite's LIKE cannot express them.
	wildcard := strings.Contains(filter.Search, "*")
	if filter.Search != "" && !wildcard {
		q = q.Where(
			models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("category LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	var vendors []models.Vendor
	err := q.Find(&vendors).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorListResponse{
			Error: &s,
		})
		return
	}

	if wildcard {
		pattern := strings.ToLower(filter.Search)
		vendors = slices.DeleteFunc(vendors, func(v models.Vendor) bool {
			return !glob.Glob(pattern, strings.ToLower(v.Name)) && !glob.Glob(pattern, strings.ToLower(v.Category))
		})
	}

	total := int64(len(vendors))

	// Set the offset. Does not need checking since the default is 0
	if int(filter.Offset) < len(vendors) {
		vendors = vendors[filter.Offset:]
	} else {
		vendors = nil
	}

	// Default to 50 vendors and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(vendors) {
		vendors = vendors[:limit]
	}

	// Transform resources to their API representation
	data := make([]Vendor, 0, len(vendors))
	for _, vendor := range vendors {
		data = append(data, newVendor(c, vendor))
	}

	c.JSON(http.StatusOK, VendorListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get vendor
// @Description	Returns a specific vendor
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	VendorResponse
// @Failure		400	{object}	VendorResponse
// @Failure		404	{object}	VendorResponse
// @Failure		500	{object}	VendorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vendors/{id} [get]
func GetVendor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	var vendor models.Vendor
	err = models.DB.First(&vendor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	apiResource := newVendor(c, vendor)
	c.JSON(http.StatusOK, VendorResponse{Data: &apiResource})
}

// @Summary		Update vendor
// @Description	Updates an existing vendor, e.g. the rating, notes or the favorite flag. Only values to be updated need to be specified.
// @Tags			Vendors
// @Accept			json
// @Produce		json
// @Success		200		{object}	VendorResponse
// @Failure		400		{object}	VendorResponse
// @Failure		404		{object}	VendorResponse
// @Failure		500		{object}	VendorResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			vendor	body		VendorEditable	true	"Vendor"
// @Router			/v1/vendors/{id} [patch]
func UpdateVendor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	var vendor models.Vendor
	err = models.DB.First(&vendor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, VendorEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data VendorEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	// The validation hooks see the stored record, not the patch payload,
	// so the fields being updated are checked here.
	err = validateVendorPatch(updateFields, data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&vendor).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorResponse{
			Error: &e,
		})
		return
	}

	apiResource := newVendor(c, vendor)
	c.JSON(http.StatusOK, VendorResponse{Data: &apiResource})
}

func validateVendorPatch(updateFields []any, data VendorEditable) error {
	for _, field := range updateFields {
		switch field {
		case "Name":
			name := strings.TrimSpace(data.Name)
			if name == "" {
				return models.ErrVendorNameEmpty
			}
			if len(name) > 50 {
				return models.ErrVendorNameTooLong
			}
		case "Category":
			if strings.TrimSpace(data.Category) == "" {
				return models.ErrVendorCategoryEmpty
			}
		case "Description":
			if strings.TrimSpace(data.Description) == "" {
				return models.ErrVendorDescriptionEmpty
			}
		case "Rating":
			if data.Rating < 0 || data.Rating > 5 {
				return models.ErrVendorRatingOutOfRange
			}
		}
	}

	return nil
}

// @Summary		Get messages
// @Description	Returns the conversation with a vendor, oldest message first
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	MessageListResponse
// @Failure		400	{object}	MessageListResponse
// @Failure		404	{object}	MessageListResponse
// @Failure		500	{object}	MessageListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vendors/{id}/messages [get]
func GetVendorMessages(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &e,
		})
		return
	}

	var vendor models.Vendor
	err = models.DB.First(&vendor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &e,
		})
		return
	}

	messages, err := vendor.Messages(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Message, 0, len(messages))
	for _, message := range messages {
		data = append(data, newMessage(message))
	}

	c.JSON(http.StatusOK, MessageListResponse{Data: data})
}

// @Summary		Send message
// @Description	Appends a message from the user to the conversation with a vendor
// @Tags			Vendors
// @Accept			json
// @Produce		json
// @Success		201		{object}	MessageResponse
// @Failure		400		{object}	MessageResponse
// @Failure		404		{object}	MessageResponse
// @Failure		500		{object}	MessageResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			message	body		MessageEditable	true	"Message"
// @Router			/v1/vendors/{id}/messages [post]
func CreateVendorMessage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	var vendor models.Vendor
	err = models.DB.First(&vendor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	var data MessageEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	message := models.Message{
		VendorID:  vendor.ID,
		Sender:    models.MessageSenderUser,
		Text:      data.Text,
		Timestamp: time.Now().UTC(),
	}

	err = models.DB.Create(&message).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	apiResource := newMessage(message)
	c.JSON(http.StatusCreated, MessageResponse{Data: &apiResource})
}
