package models_test

import (
	"testing"

	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPaymentRequiredFields() {
	tests := []struct {
		name   string
		modify func(p *models.Payment)
		err    error
	}{
		{"No vendor", func(p *models.Payment) { p.Vendor = "  " }, models.ErrPaymentVendorEmpty},
		{"No description", func(p *models.Payment) { p.Description = "" }, models.ErrPaymentDescriptionEmpty},
		{"No due date", func(p *models.Payment) { p.DueDate = types.Date{} }, models.ErrPaymentDueDateMissing},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			payment := models.Payment{
				Vendor:      "Grand Venue",
				Description: "Venue final payment",
				Amount:      decimal.NewFromInt(5000),
				DueDate:     types.NewDate(2023, 12, 15),
			}
			tt.modify(&payment)

			err := models.DB.Create(&payment).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentDefaultStatus() {
	payment := suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(5000),
		DueDate:     types.NewDate(2023, 12, 15),
	})

	assert.Equal(suite.T(), models.PaymentStatusPending, payment.Status)
	assert.Nil(suite.T(), payment.PaymentDate)
	assert.Empty(suite.T(), payment.PaymentMethod)
}

func (suite *TestSuiteStandard) TestPaymentStatusInvalid() {
	err := models.DB.Create(&models.Payment{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(5000),
		DueDate:     types.NewDate(2023, 12, 15),
		Status:      "Overdue",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrPaymentStatusInvalid)
}

func (suite *TestSuiteStandard) TestPaymentAmountNotPositive() {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"Zero", decimal.Zero},
		{"Negative", decimal.NewFromInt(-500)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.Payment{
				Vendor:      "Grand Venue",
				Description: "Venue final payment",
				Amount:      tt.amount,
				DueDate:     types.NewDate(2023, 12, 15),
			}).Error
			assert.ErrorIs(t, err, models.ErrAmountNotPositive)
		})
	}
}

// A pending payment never carries payment details, even if they are set on
// the way in.
func (suite *TestSuiteStandard) TestPaymentPendingClearsDetails() {
	paymentDate := types.NewDate(2023, 5, 10)

	payment := suite.createTestPayment(models.Payment{
		Vendor:        "Grand Venue",
		Description:   "Venue final payment",
		Amount:        decimal.NewFromInt(5000),
		DueDate:       types.NewDate(2023, 12, 15),
		Status:        models.PaymentStatusPending,
		PaymentDate:   &paymentDate,
		PaymentMethod: "Bank Transfer",
	})

	assert.Nil(suite.T(), payment.PaymentDate)
	assert.Empty(suite.T(), payment.PaymentMethod)
}

func (suite *TestSuiteStandard) TestPaymentMarkPaid() {
	payment := suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(5000),
		DueDate:     types.NewDate(2023, 12, 15),
	})

	err := payment.MarkPaid(models.DB)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), models.PaymentStatusPaid, payment.Status)
	assert.Equal(suite.T(), models.DefaultPaymentMethod, payment.PaymentMethod)
	require.NotNil(suite.T(), payment.PaymentDate)
	assert.True(suite.T(), payment.PaymentDate.Equal(types.Today()))

	// Verify the transition was persisted
	var reloaded models.Payment
	require.NoError(suite.T(), models.DB.First(&reloaded, payment.ID).Error)
	assert.Equal(suite.T(), models.PaymentStatusPaid, reloaded.Status)
}

// Pending → Paid is a one-way street.
func (suite *TestSuiteStandard) TestPaymentMarkPaidTwice() {
	payment := suite.createTestPayment(models.Payment{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(5000),
		DueDate:     types.NewDate(2023, 12, 15),
	})

	require.NoError(suite.T(), payment.MarkPaid(models.DB))

	err := payment.MarkPaid(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrPaymentAlreadyPaid)
}
