package v1

import (
	"errors"
	"net/http"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/undo"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, undo.ErrNothingToUndo) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
