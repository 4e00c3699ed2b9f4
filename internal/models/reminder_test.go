package models_test

import (
	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReminders() {
	today := types.NewDate(2023, 11, 1)

	// Due within the window
	duePayment := suite.createTestPayment(models.Payment{
		Vendor:      "Elegant Flowers",
		Description: "Floral arrangements final payment",
		Amount:      decimal.NewFromInt(1000),
		DueDate:     types.NewDate(2023, 11, 10),
	})

	// Due after the window, must not appear
	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(5000),
		DueDate:     types.NewDate(2023, 12, 15),
	})

	// Already paid, must not appear
	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Sunset Catering",
		Description: "Catering deposit",
		Amount:      decimal.NewFromInt(2500),
		DueDate:     types.NewDate(2023, 11, 5),
		Status:      models.PaymentStatusPaid,
	})

	appointment := suite.createTestAppointment(models.Appointment{
		Vendor: "Sweet Delights Bakery",
		Type:   "Cake Tasting",
		Date:   types.NewDate(2023, 11, 20),
		Time:   "11:00 AM",
	})

	// In the past, must not appear
	_ = suite.createTestAppointment(models.Appointment{
		Vendor: "Grand Venue",
		Type:   "Venue Visit",
		Date:   types.NewDate(2023, 6, 15),
		Time:   "10:00 AM",
	})

	reminders, err := models.Reminders(models.DB, today)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), reminders, 2)

	assert.Equal(suite.T(), duePayment.ID, reminders[0].ID)
	assert.Equal(suite.T(), "Floral arrangements final payment due ($1,000)", reminders[0].Title)
	assert.Equal(suite.T(), models.ReminderTypePayment, reminders[0].Type)

	assert.Equal(suite.T(), appointment.ID, reminders[1].ID)
	assert.Equal(suite.T(), "Cake Tasting with Sweet Delights Bakery", reminders[1].Title)
	assert.Equal(suite.T(), models.ReminderTypeAppointment, reminders[1].Type)
}

// The 30 day window includes both its first and its last day.
func (suite *TestSuiteStandard) TestRemindersWindowBoundaries() {
	today := types.NewDate(2023, 11, 1)

	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Due today",
		Amount:      decimal.NewFromInt(100),
		DueDate:     today,
	})
	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Due on the last day",
		Amount:      decimal.NewFromInt(100),
		DueDate:     today.AddDays(models.ReminderWindowDays),
	})
	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Due one day too late",
		Amount:      decimal.NewFromInt(100),
		DueDate:     today.AddDays(models.ReminderWindowDays + 1),
	})
	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Was due yesterday",
		Amount:      decimal.NewFromInt(100),
		DueDate:     today.AddDays(-1),
	})

	reminders, err := models.Reminders(models.DB, today)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), reminders, 2)

	assert.Equal(suite.T(), "Due today due ($100)", reminders[0].Title)
	assert.Equal(suite.T(), "Due on the last day due ($100)", reminders[1].Title)
}

// The feed is derived on every call, so repeated calls must return the
// same reminders in the same order.
func (suite *TestSuiteStandard) TestRemindersStableOrder() {
	today := types.NewDate(2023, 11, 1)
	sameDay := types.NewDate(2023, 11, 10)

	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Elegant Flowers",
		Description: "Floral arrangements final payment",
		Amount:      decimal.NewFromInt(1000),
		DueDate:     sameDay,
	})
	_ = suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(5000),
		DueDate:     sameDay,
	})
	_ = suite.createTestAppointment(models.Appointment{
		Vendor: "Sweet Delights Bakery",
		Type:   "Cake Tasting",
		Date:   sameDay,
		Time:   "11:00 AM",
	})

	first, err := models.Reminders(models.DB, today)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), first, 3)

	second, err := models.Reminders(models.DB, today)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), second, 3)

	for i := range first {
		assert.Equal(suite.T(), first[i].ID, second[i].ID)
		assert.Equal(suite.T(), first[i].Title, second[i].Title)
	}
}

func (suite *TestSuiteStandard) TestDismissReminder() {
	today := types.NewDate(2023, 11, 1)

	payment := suite.createTestPayment(models.Payment{
		Vendor:      "Elegant Flowers",
		Description: "Floral arrangements final payment",
		Amount:      decimal.NewFromInt(1000),
		DueDate:     types.NewDate(2023, 11, 10),
	})

	err := models.DismissReminder(models.DB, payment.ID)
	require.NoError(suite.T(), err)

	reminders, err := models.Reminders(models.DB, today)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), reminders)
}

func (suite *TestSuiteStandard) TestDismissReminderTwice() {
	appointment := suite.createTestAppointment(models.Appointment{
		Vendor: "Grand Venue",
		Type:   "Venue Visit",
		Date:   types.NewDate(2023, 11, 15),
		Time:   "10:00 AM",
	})

	require.NoError(suite.T(), models.DismissReminder(models.DB, appointment.ID))

	err := models.DismissReminder(models.DB, appointment.ID)
	assert.ErrorIs(suite.T(), err, models.ErrReminderDismissed)
}

func (suite *TestSuiteStandard) TestDismissReminderUnknownSource() {
	err := models.DismissReminder(models.DB, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
