// Package undo implements the single-slot undo register for deletes.
//
// Deleting a resource arms the register with an inverse action that restores
// the deleted record. Only the most recent delete can be undone: arming the
// register replaces whatever was in the slot before.
package undo

import (
	"errors"
	"sync"

	"gorm.io/gorm"
)

var ErrNothingToUndo = errors.New("there is no action that can be undone")

// RestoreFunc re-creates the state a delete removed.
type RestoreFunc func(db *gorm.DB) error

type entry struct {
	label   string
	restore RestoreFunc
}

// Register holds the inverse of the most recent delete.
type Register struct {
	mu    sync.Mutex
	entry *entry
}

func New() *Register {
	return &Register{}
}

// Arm stores the inverse action for a delete, replacing any previous entry.
// The label describes the action for users, e.g. "expense: Venue deposit".
func (r *Register) Arm(label string, restore RestoreFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entry = &entry{label: label, restore: restore}
}

// Peek returns the label of the pending entry without applying it.
func (r *Register) Peek() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entry == nil {
		return "", false
	}

	return r.entry.label, true
}

// Apply runs the pending inverse action and clears the slot. The slot is
// cleared even when the restore fails, there is no second chance.
func (r *Register) Apply(db *gorm.DB) (string, error) {
	r.mu.Lock()
	e := r.entry
	r.entry = nil
	r.mu.Unlock()

	if e == nil {
		return "", ErrNothingToUndo
	}

	return e.label, e.restore(db)
}

// Clear empties the slot.
func (r *Register) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entry = nil
}
