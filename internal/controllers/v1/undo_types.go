package v1

type UndoAction struct {
	Label string `json:"label" example:"expense: Venue deposit"` // Description of the action that can be or was undone
}

type UndoResponse struct {
	Error *string     `json:"error" example:"there is no action that can be undone"` // The error, if any occurred
	Data  *UndoAction `json:"data"`                                                  // The pending or applied action
}
