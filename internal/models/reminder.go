package models

import (
	"sort"

	"github.com/everafter-planner/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gorm.io/gorm"
)

// ReminderType tells which kind of resource a reminder was derived from.
type ReminderType string

const (
	ReminderTypePayment     ReminderType = "payment"
	ReminderTypeAppointment ReminderType = "appointment"
)

// ReminderWindowDays is the forward-looking window for payment reminders.
const ReminderWindowDays = 30

// Reminder is a derived dashboard notice. Reminders are never stored: they
// are computed from pending payments and upcoming appointments on every
// request, so they can never drift out of sync with the underlying data.
type Reminder struct {
	ID     uuid.UUID    `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the payment or appointment the reminder is derived from
	Title  string       `json:"title" example:"Venue final payment due ($5,000)"`  // Human readable description
	Date   types.Date   `json:"date" example:"2023-12-15"`                         // Date the reminder is about
	Vendor string       `json:"vendor" example:"Grand Venue"`                      // Vendor the reminder is about
	Type   ReminderType `json:"type" example:"payment"`                            // Which resource type the reminder is derived from
}

// ReminderDismissal hides a single derived reminder from the feed.
type ReminderDismissal struct {
	DefaultModel
	SourceID uuid.UUID `gorm:"uniqueIndex"`
}

// currencyPrinter formats amounts with en-US separators, e.g. 5000 → 5,000.
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// Reminders derives the reminder feed for a given day: pending payments due
// within the next 30 days and appointments from that day on, minus dismissed
// entries, sorted by date then title.
func Reminders(db *gorm.DB, today types.Date) ([]Reminder, error) {
	dismissed := make(map[uuid.UUID]bool)
	var dismissals []ReminderDismissal
	err := db.Find(&dismissals).Error
	if err != nil {
		return nil, err
	}
	for _, d := range dismissals {
		dismissed[d.SourceID] = true
	}

	var payments []Payment
	err = db.
		Where("status = ?", PaymentStatusPending).
		Where("due_date >= ? AND due_date <= ?", today, today.AddDays(ReminderWindowDays)).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	var appointments []Appointment
	err = db.Where("date >= ?", today).Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	reminders := make([]Reminder, 0, len(payments)+len(appointments))

	for _, p := range payments {
		if dismissed[p.ID] {
			continue
		}

		reminders = append(reminders, Reminder{
			ID:     p.ID,
			Title:  currencyPrinter.Sprintf("%s due ($%v)", p.Description, number.Decimal(p.Amount.InexactFloat64())),
			Date:   p.DueDate,
			Vendor: p.Vendor,
			Type:   ReminderTypePayment,
		})
	}

	for _, a := range appointments {
		if dismissed[a.ID] {
			continue
		}

		reminders = append(reminders, Reminder{
			ID:     a.ID,
			Title:  currencyPrinter.Sprintf("%s with %s", a.Type, a.Vendor),
			Date:   a.Date,
			Vendor: a.Vendor,
			Type:   ReminderTypeAppointment,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		if !reminders[i].Date.Equal(reminders[j].Date) {
			return reminders[i].Date.Before(reminders[j].Date)
		}
		return reminders[i].Title < reminders[j].Title
	})

	return reminders, nil
}

// DismissReminder hides the reminder derived from the given payment or
// appointment. The source must exist.
func DismissReminder(db *gorm.DB, sourceID uuid.UUID) error {
	var payment Payment
	err := db.First(&payment, sourceID).Error
	if err != nil {
		var appointment Appointment
		err = db.First(&appointment, sourceID).Error
		if err != nil {
			return err
		}
	}

	return db.Create(&ReminderDismissal{SourceID: sourceID}).Error
}
