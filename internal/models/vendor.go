package models

import (
	"strings"

	"gorm.io/gorm"
)

// Vendor is a wedding vendor in the directory.
type Vendor struct {
	DefaultModel
	Name        string
	Category    string
	Rating      int64
	Image       string
	Description string
	Favorite    bool
	Notes       string
}

func (v *Vendor) BeforeSave(_ *gorm.DB) error {
	v.Name = strings.TrimSpace(v.Name)
	v.Category = strings.TrimSpace(v.Category)
	v.Description = strings.TrimSpace(v.Description)
	v.Notes = strings.TrimSpace(v.Notes)

	if v.Name == "" {
		return ErrVendorNameEmpty
	}

	if len(v.Name) > 50 {
		return ErrVendorNameTooLong
	}

	if v.Category == "" {
		return ErrVendorCategoryEmpty
	}

	if v.Description == "" {
		return ErrVendorDescriptionEmpty
	}

	if v.Rating < 0 || v.Rating > 5 {
		return ErrVendorRatingOutOfRange
	}

	return nil
}

// Messages returns the conversation with this vendor in chronological order.
func (v Vendor) Messages(db *gorm.DB) ([]Message, error) {
	var messages []Message

	err := db.
		Where(Message{VendorID: v.ID}).
		Order("timestamp ASC").
		Find(&messages).Error

	return messages, err
}
