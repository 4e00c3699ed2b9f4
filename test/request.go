package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/everafter-planner/backend/internal/router"
	"github.com/stretchr/testify/require"
)

// Request performs an HTTP request against a fresh router instance and
// returns the recorded response.
//
// A string body is sent as-is, everything else is encoded as JSON.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var buffer *bytes.Buffer

	switch b := body.(type) {
	case nil:
		buffer = new(bytes.Buffer)
	case string:
		buffer = bytes.NewBufferString(b)
	case *bytes.Buffer:
		buffer = b
	default:
		encoded, err := json.Marshal(body)
		require.NoError(t, err, "request body of type %T could not be encoded", body)
		buffer = bytes.NewBuffer(encoded)
	}

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(method, reqURL, buffer)
	require.NoError(t, err)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	engine, teardown := serve(t)
	defer teardown()

	engine.ServeHTTP(recorder, req)

	return *recorder
}

// serve builds the full router with all routes attached, the same way main
// does on startup.
func serve(t *testing.T) (http.Handler, func()) {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.NoError(t, err, "environment variable API_URL must be a valid URL")

	engine, teardown, err := router.Config(baseURL)
	require.NoError(t, err, "router could not be initialized")

	router.AttachRoutes(engine.Group("/"))

	return engine, teardown
}

// DecodeResponse decodes a recorded JSON response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	require.NoError(t, err, "unable to decode response %q into %v, request ID %s", r.Body, reflect.TypeOf(target), r.Result().Header.Get("x-request-id"))
}

// AssertHTTPStatus verifies that the response status is one of the expected
// ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
