package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/everafter-planner/backend/internal/controllers/v1"
	"github.com/everafter-planner/backend/internal/models"
	"github.com/everafter-planner/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesGet() {
	createTestCategory(suite.T(), models.Category{Name: "Venue", Allocation: decimal.NewFromInt(10000)})
	flowers := createTestCategory(suite.T(), models.Category{Name: "Flowers", Allocation: decimal.NewFromInt(2000)})

	createTestExpense(suite.T(), v1.ExpenseEditable{
		CategoryID:  flowers.ID,
		Vendor:      "Bloom & Co",
		Description: "Bridal bouquet",
		Amount:      decimal.NewFromInt(250),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Sorted by name
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Flowers", response.Data[0].Name)
	assert.Equal(suite.T(), "Venue", response.Data[1].Name)

	assert.True(suite.T(), response.Data[0].Spent.Equal(decimal.NewFromInt(250)), "Spent amount is wrong: %s", response.Data[0].Spent)
	assert.True(suite.T(), response.Data[1].Spent.IsZero())
}

func (suite *TestSuiteStandard) TestCategoriesGetDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestCategoryGet() {
	category := createTestCategory(suite.T(), models.Category{Name: "Music", Allocation: decimal.NewFromInt(1500)})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Music", response.Data.Name)
	assert.True(suite.T(), response.Data.Allocation.Equal(decimal.NewFromInt(1500)))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestCategoryGetInvalidID() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "notaUUID", http.StatusBadRequest},
		{"Does not exist", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
