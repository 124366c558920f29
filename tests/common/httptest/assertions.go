//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pos-terminal/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if targetStruct != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "undecodable body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains expectedErrorMsg
// (skipped when empty). The decoded envelope is returned so callers can inspect Detail.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "undecodable error body: %s", w.Body.String())
	if expectedErrorMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedErrorMsg)
	}
	return resp
}
