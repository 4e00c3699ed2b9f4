package v1_test

import (
	"net/http"

	v1 "github.com/everafter-planner/backend/internal/controllers/v1"
	"github.com/everafter-planner/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUndoGetEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/undo", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UndoResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Nil(suite.T(), response.Data)
	assert.Nil(suite.T(), response.Error)
}

func (suite *TestSuiteStandard) TestUndoApplyEmpty() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/undo", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// TestUndoSingleSlot verifies that a new deletion replaces the pending undo
// action, so only the most recent deletion can ever be undone.
func (suite *TestSuiteStandard) TestUndoSingleSlot() {
	first := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "First"})
	second := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Second"})

	recorder := test.Request(suite.T(), http.MethodDelete, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodDelete, second.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/undo", "")
	var response v1.UndoResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "expense: Second", response.Data.Label)

	// Applying restores the second expense. The first one stays gone.
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/undo", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, second.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
