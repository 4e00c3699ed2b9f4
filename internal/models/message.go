package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageSender identifies who wrote a message. Vendor messages exist only
// as seed data, there is no real messaging transport behind this.
type MessageSender string

const (
	MessageSenderUser   MessageSender = "user"
	MessageSenderVendor MessageSender = "vendor"
)

// Message is one entry in the ordered conversation log with a vendor.
type Message struct {
	DefaultModel
	Vendor    Vendor    `json:"-"`
	VendorID  uuid.UUID `gorm:"index"`
	Sender    MessageSender
	Text      string
	Timestamp time.Time
}

func (m *Message) BeforeSave(_ *gorm.DB) error {
	m.Text = strings.TrimSpace(m.Text)

	if m.Text == "" {
		return ErrMessageTextEmpty
	}

	if m.Sender != MessageSenderUser && m.Sender != MessageSenderVendor {
		return ErrMessageSenderInvalid
	}

	return nil
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Message)
	return tx.First(&Vendor{}, toSave.VendorID).Error
}
