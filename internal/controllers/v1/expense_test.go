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

func (suite *TestSuiteStandard) TestExpensesCreate() {
	category := createTestCategory(suite.T(), models.Category{Name: "Venue", Allocation: decimal.NewFromInt(10000)})

	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		CategoryID:  category.ID,
		Vendor:      "Grand Venue",
		Description: "Venue deposit",
		Amount:      decimal.NewFromInt(5000),
		Date:        types.NewDate(2026, time.May, 15),
	})

	require.NotNil(suite.T(), expense.Data)
	assert.Equal(suite.T(), "Grand Venue", expense.Data.Vendor)
	assert.True(suite.T(), expense.Data.Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/expenses/%s", expense.Data.ID), expense.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), expense.Data.Links.Category)
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	category := createTestCategory(suite.T(), models.Category{})

	valid := v1.ExpenseEditable{
		CategoryID:  category.ID,
		Vendor:      "Grand Venue",
		Description: "Venue deposit",
		Amount:      decimal.NewFromInt(10),
		Date:        types.NewDate(2026, time.May, 15),
	}

	tests := []struct {
		name   string
		modify func(e *v1.ExpenseEditable)
		status int
	}{
		{"Unknown category", func(e *v1.ExpenseEditable) { e.CategoryID = uuid.New() }, http.StatusNotFound},
		{"Zero amount", func(e *v1.ExpenseEditable) { e.Amount = decimal.Zero }, http.StatusBadRequest},
		{"Negative amount", func(e *v1.ExpenseEditable) { e.Amount = decimal.NewFromInt(-10) }, http.StatusBadRequest},
		{"No vendor", func(e *v1.ExpenseEditable) { e.Vendor = "  " }, http.StatusBadRequest},
		{"No description", func(e *v1.ExpenseEditable) { e.Description = "" }, http.StatusBadRequest},
		{"No date", func(e *v1.ExpenseEditable) { e.Date = types.Date{} }, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			expense := valid
			tt.modify(&expense)

			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{expense})
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}

	suite.T().Run("Broken JSON", func(t *testing.T) {
		recorder := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", `{ "not": "a list" }`)
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	})

	// An expense that is nothing but a category and an amount is rejected
	suite.T().Run("Amount only", func(t *testing.T) {
		recorder := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{{CategoryID: category.ID, Amount: decimal.NewFromInt(10)}})
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	})
}

func (suite *TestSuiteStandard) TestExpensesGetSorted() {
	category := createTestCategory(suite.T(), models.Category{})

	createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: category.ID, Description: "Older", Date: types.NewDate(2026, time.March, 1)})
	createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: category.ID, Description: "Newest", Date: types.NewDate(2026, time.June, 1)})
	createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: category.ID, Description: "Oldest", Date: types.NewDate(2026, time.January, 1)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Newest", response.Data[0].Description)
	assert.Equal(suite.T(), "Older", response.Data[1].Description)
	assert.Equal(suite.T(), "Oldest", response.Data[2].Description)
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	venue := createTestCategory(suite.T(), models.Category{Name: "Venue"})
	flowers := createTestCategory(suite.T(), models.Category{Name: "Flowers"})

	createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: venue.ID, Vendor: "Grand Venue", Description: "Deposit"})
	createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: flowers.ID, Vendor: "Bloom & Co", Description: "Bouquet"})
	createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: flowers.ID, Vendor: "Bloom & Co", Description: "Table arrangements"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"By category", fmt.Sprintf("category=%s", flowers.ID), 2},
		{"By vendor", "vendor=Bloom", 2},
		{"Search in description", "search=bouquet", 1},
		{"Search in vendor", "search=venue", 1},
		{"Search without match", "search=photobooth", 0},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesPagination() {
	category := createTestCategory(suite.T(), models.Category{})

	for i := 0; i < 5; i++ {
		createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: category.ID, Description: fmt.Sprint(i)})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?offset=2&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cake tasting"})

	recorder := test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Cake tasting", response.Data.Description)
}

func (suite *TestSuiteStandard) TestExpenseGetInvalidID() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "definitely-not", http.StatusBadRequest},
		{"Does not exist", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestExpenseDeleteUndo walks through the full lifecycle: an expense is
// deleted, the category's spending drops, and applying the undo brings
// both back.
func (suite *TestSuiteStandard) TestExpenseDeleteUndo() {
	category := createTestCategory(suite.T(), models.Category{Name: "Photography", Allocation: decimal.NewFromInt(3000)})
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		CategoryID:  category.ID,
		Description: "Engagement shoot",
		Amount:      decimal.NewFromInt(400),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The category's derived spending reflects the deletion
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	var categoryResponse v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &categoryResponse)
	assert.True(suite.T(), categoryResponse.Data.Spent.IsZero())

	// The register announces what a POST would undo
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/undo", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var undoResponse v1.UndoResponse
	test.DecodeResponse(suite.T(), &recorder, &undoResponse)
	require.NotNil(suite.T(), undoResponse.Data)
	assert.Equal(suite.T(), "expense: Engagement shoot", undoResponse.Data.Label)

	// Apply the undo
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/undo", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.DecodeResponse(suite.T(), &recorder, &categoryResponse)
	assert.True(suite.T(), categoryResponse.Data.Spent.Equal(decimal.NewFromInt(400)))

	// The register only holds a single action
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/undo", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDeleteInvalidID() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "nope", http.StatusBadRequest},
		{"Does not exist", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
