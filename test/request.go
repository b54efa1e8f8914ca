package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/fund-split/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newRouter builds the full API router for the base URL in API_URL. The
// returned function unregisters its metrics.
func newRouter(t *testing.T) (*gin.Engine, func()) {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.NoError(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	require.NoError(t, err, "router could not be initialized")

	router.AttachRoutes(r.Group("/"))
	return r, teardown
}

// encode turns a request body into a reader. Strings and byte buffers are
// sent as they are, everything else is encoded as JSON.
func encode(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return bytes.NewBufferString(b)
	case *bytes.Buffer:
		return b
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err, "request body could not be encoded")
		return bytes.NewReader(data)
	}
}

// Request sends a request to a freshly configured router and returns the
// recorded response.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	r, teardown := newRouter(t)
	defer teardown()

	req, err := http.NewRequest(method, reqURL, encode(t, body))
	require.NoError(t, err, "request could not be built")

	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return *recorder
}

// DecodeResponse decodes the JSON body of a response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	require.NoError(t, err, "response %q could not be decoded into %T, request ID: %s", r.Body.String(), target, r.Header().Get("x-request-id"))
}

// AssertHTTPStatus verifies that the response has one of the expected status codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong, request ID: %s, response body: %s", r.Header().Get("x-request-id"), r.Body.String())
}
