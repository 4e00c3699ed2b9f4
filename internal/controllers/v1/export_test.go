package v1

// ResetUndoRegister clears the undo register. Tests use this to get a
// clean slate since the register is package state that survives a
// database reconnect.
func ResetUndoRegister() {
	undoRegister.Clear()
}
