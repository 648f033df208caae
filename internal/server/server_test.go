package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/certificate"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/directory"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/ledger"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/pipeline"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// stubSubmitter returns a canned response or error.
type stubSubmitter struct {
	resp *types.SubmitPledgeResponse
	err  error
}

func (s *stubSubmitter) Submit(_ context.Context, _ types.SubmitPledgeRequest) (*types.SubmitPledgeResponse, error) {
	return s.resp, s.err
}

func newTestServer(sub PledgeSubmitter, led ledger.Ledger) *Server {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	if led == nil {
		led = ledger.NewMemLedger()
	}
	return New("0", sub, led, logger)
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(&stubSubmitter{}, nil)

	w := doRequest(s, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestSubmitPledge_Success(t *testing.T) {
	s := newTestServer(&stubSubmitter{resp: &types.SubmitPledgeResponse{
		Success:      true,
		Message:      "Pledge submitted successfully",
		EmployeeName: "Jane Doe",
		EmployeeID:   "E001",
		Department:   "Finance",
		Designation:  "Analyst",
		PledgeID:     "pledge-1",
		PDFBase64:    "JVBERg==",
	}}, nil)

	w := doRequest(s, http.MethodPost, "/pledge", `{"employee_id":"E001","pledge_accepted":true}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.SubmitPledgeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Jane Doe", resp.EmployeeName)
	assert.NotEmpty(t, resp.PledgeID)
}

func TestSubmitPledge_InvalidBody(t *testing.T) {
	s := newTestServer(&stubSubmitter{}, nil)

	w := doRequest(s, http.MethodPost, "/pledge", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitPledge_ValidationError(t *testing.T) {
	s := newTestServer(&stubSubmitter{
		err: &pipeline.ValidationError{Field: "employee_id", Message: "Employee ID is required"},
	}, nil)

	w := doRequest(s, http.MethodPost, "/pledge", `{"employee_id":"","pledge_accepted":true}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Employee ID is required", resp["message"])
}

func TestSubmitPledge_NotFound(t *testing.T) {
	s := newTestServer(&stubSubmitter{err: &directory.NotFoundError{EmployeeID: "E999"}}, nil)

	w := doRequest(s, http.MethodPost, "/pledge", `{"employee_id":"E999","pledge_accepted":true}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "E999")
}

func TestSubmitPledge_RetrievalError(t *testing.T) {
	s := newTestServer(&stubSubmitter{
		err: &directory.RetrievalError{Cause: errors.New("connection refused to bulk source")},
	}, nil)

	w := doRequest(s, http.MethodPost, "/pledge", `{"employee_id":"E001","pledge_accepted":true}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused",
		"internal details must not be echoed to the caller")
}

func TestSubmitPledge_RenderError(t *testing.T) {
	s := newTestServer(&stubSubmitter{err: &certificate.RenderError{Message: "bad template"}}, nil)

	w := doRequest(s, http.MethodPost, "/pledge", `{"employee_id":"E001","pledge_accepted":true}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetPledge(t *testing.T) {
	led := ledger.NewMemLedger()
	rec := types.PledgeRecord{
		PledgeID:   "pledge-1",
		EmployeeID: "E001",
		PledgeDate: time.Date(2025, 11, 17, 10, 0, 0, 0, time.UTC),
		Status:     types.PledgeStatusCompleted,
	}
	require.NoError(t, led.Record(context.Background(), rec))

	s := newTestServer(&stubSubmitter{}, led)

	w := doRequest(s, http.MethodGet, "/pledges/pledge-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got types.PledgeRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "E001", got.EmployeeID)

	w = doRequest(s, http.MethodGet, "/pledges/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&stubSubmitter{}, nil)

	w := doRequest(s, http.MethodOptions, "/pledge", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
