package v1

import (
	"github.com/everafter-planner/backend/internal/undo"
)

// undoRegister holds the inverse of the most recent delete across all
// resources. Deletes arm it, POST /v1/undo applies it. One level only.
var undoRegister = undo.New()
