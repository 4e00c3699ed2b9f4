package v1

import (
	"net/http"

	"github.com/everafter-planner/backend/internal/httputil"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUndoRoutes registers the routes for the undo register with the
// RouterGroup that is passed.
func RegisterUndoRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUndo)
		r.GET("", GetUndo)
		r.POST("", CreateUndo)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Undo
// @Success		204
// @Router			/v1/undo [options]
func OptionsUndo(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get undo state
// @Description	Returns the action that a POST would undo. Data is null when nothing can be undone.
// @Tags			Undo
// @Produce		json
// @Success		200	{object}	UndoResponse
// @Router			/v1/undo [get]
func GetUndo(c *gin.Context) {
	label, ok := undoRegister.Peek()
	if !ok {
		c.JSON(http.StatusOK, UndoResponse{})
		return
	}

	c.JSON(http.StatusOK, UndoResponse{Data: &UndoAction{Label: label}})
}

// @Summary		Undo
// @Description	Applies the pending undo action, restoring the most recently deleted resource. The register is cleared afterwards.
// @Tags			Undo
// @Produce		json
// @Success		200	{object}	UndoResponse
// @Failure		404	{object}	UndoResponse
// @Failure		500	{object}	UndoResponse
// @Router			/v1/undo [post]
func CreateUndo(c *gin.Context) {
	label, err := undoRegister.Apply(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UndoResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, UndoResponse{Data: &UndoAction{Label: label}})
}
