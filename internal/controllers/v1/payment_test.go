package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/everafter-planner/backend/internal/controllers/v1"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/internal/types"
	"github.com/everafter-planner/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPaymentsCreate() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(15000),
		DueDate:     types.NewDate(2026, time.December, 15),
	})

	require.NotNil(suite.T(), payment.Data)
	assert.Equal(suite.T(), models.PaymentStatusPending, payment.Data.Status)
	assert.Nil(suite.T(), payment.Data.PaymentDate)
	assert.Empty(suite.T(), payment.Data.PaymentMethod)
}

// TestPaymentsCreatePaid verifies that payment details are only stored for
// Paid payments.
func (suite *TestSuiteStandard) TestPaymentsCreatePaid() {
	date := types.NewDate(2026, time.April, 2)

	payment := createTestPayment(suite.T(), v1.PaymentEditable{
		Vendor:        "Bloom & Co",
		Amount:        decimal.NewFromInt(800),
		Status:        models.PaymentStatusPaid,
		PaymentDate:   &date,
		PaymentMethod: "Bank Transfer",
	})

	require.NotNil(suite.T(), payment.Data)
	assert.Equal(suite.T(), models.PaymentStatusPaid, payment.Data.Status)
	require.NotNil(suite.T(), payment.Data.PaymentDate)
	assert.True(suite.T(), payment.Data.PaymentDate.Equal(date))
	assert.Equal(suite.T(), "Bank Transfer", payment.Data.PaymentMethod)
}

func (suite *TestSuiteStandard) TestPaymentsCreateInvalid() {
	valid := v1.PaymentEditable{
		Vendor:      "Grand Venue",
		Description: "Venue final payment",
		Amount:      decimal.NewFromInt(10),
		DueDate:     types.NewDate(2026, time.December, 15),
	}

	tests := []struct {
		name   string
		modify func(p *v1.PaymentEditable)
	}{
		{"Zero amount", func(p *v1.PaymentEditable) { p.Amount = decimal.Zero }},
		{"Invalid status", func(p *v1.PaymentEditable) { p.Status = "Overdue" }},
		{"No vendor", func(p *v1.PaymentEditable) { p.Vendor = "  " }},
		{"No description", func(p *v1.PaymentEditable) { p.Description = "" }},
		{"No due date", func(p *v1.PaymentEditable) { p.DueDate = types.Date{} }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			payment := valid
			tt.modify(&payment)

			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/payments", []v1.PaymentEditable{payment})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	suite.T().Run("Broken JSON", func(t *testing.T) {
		recorder := test.Request(t, http.MethodPost, "http://example.com/v1/payments", `{ broken`)
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	})

	suite.T().Run("Empty payment", func(t *testing.T) {
		recorder := test.Request(t, http.MethodPost, "http://example.com/v1/payments", []v1.PaymentEditable{{}})
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	})
}

func (suite *TestSuiteStandard) TestPaymentsGetSorted() {
	createTestPayment(suite.T(), v1.PaymentEditable{Description: "Second", DueDate: types.NewDate(2026, time.October, 1)})
	createTestPayment(suite.T(), v1.PaymentEditable{Description: "Third", DueDate: types.NewDate(2026, time.December, 1)})
	createTestPayment(suite.T(), v1.PaymentEditable{Description: "First", DueDate: types.NewDate(2026, time.September, 1)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payments", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PaymentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "First", response.Data[0].Description)
	assert.Equal(suite.T(), "Second", response.Data[1].Description)
	assert.Equal(suite.T(), "Third", response.Data[2].Description)
}

func (suite *TestSuiteStandard) TestPaymentsGetFilter() {
	paid := types.Today()

	createTestPayment(suite.T(), v1.PaymentEditable{Vendor: "Grand Venue", DueDate: types.Today().AddDays(10)})
	createTestPayment(suite.T(), v1.PaymentEditable{Vendor: "Bloom & Co", DueDate: types.Today().AddDays(60)})
	createTestPayment(suite.T(), v1.PaymentEditable{
		Vendor:      "Sweet Cakes",
		DueDate:     types.Today().AddDays(5),
		Status:      models.PaymentStatusPaid,
		PaymentDate: &paid,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Pending", "status=Pending", 2},
		{"Paid", "status=Paid", 1},
		{"By vendor", "vendor=Venue", 1},
		{"Upcoming excludes paid and far dues", "upcoming=true", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/payments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.PaymentListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentMarkPaid() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{
		Vendor:  "Grand Venue",
		DueDate: types.Today().AddDays(14),
	})

	recorder := test.Request(suite.T(), http.MethodPost, payment.Data.Links.Paid, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.PaymentStatusPaid, response.Data.Status)
	require.NotNil(suite.T(), response.Data.PaymentDate)
	assert.True(suite.T(), response.Data.PaymentDate.Equal(types.Today()))
	assert.Equal(suite.T(), models.DefaultPaymentMethod, response.Data.PaymentMethod)

	// There is no transition back, a second attempt is rejected
	recorder = test.Request(suite.T(), http.MethodPost, payment.Data.Links.Paid, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPaymentMarkPaidInvalidID() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "half-a-uuid", http.StatusBadRequest},
		{"Does not exist", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/payments/%s/paid", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentGet() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{Description: "Band deposit"})

	recorder := test.Request(suite.T(), http.MethodGet, payment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Band deposit", response.Data.Description)
}

func (suite *TestSuiteStandard) TestPaymentGetInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/payments/%s", uuid.NewString()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
