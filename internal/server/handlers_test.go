package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return New("../../examples/default-machine", 0)
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetSpec(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodGet, "/api/spec", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got spec.MachineSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "example-machine", got.Machine.Name)
	assert.Len(t, got.Cylinders, 2)
}

func TestGetCost(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodGet, "/api/cost", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Cost)
	require.NotNil(t, resp.Usage)
	assert.True(t, resp.Validation.Valid)
	assert.Greater(t, resp.Cost.Summary.TotalHourly, 0.0)
	assert.InEpsilon(t, resp.Cost.Summary.TotalHourly*8*5*52, resp.Cost.Summary.TotalAnnual, 1e-9)
}

func TestGetUsage(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodGet, "/api/usage", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var usage map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usage))
	assert.Greater(t, usage["free_air_per_hour_m3"], 0.0)
	assert.Greater(t, usage["servo_power_watts"], 0.0)
}

func TestPostEstimate(t *testing.T) {
	body, err := json.Marshal(spec.Default())
	require.NoError(t, err)

	rec := doRequest(t, testServer(t), http.MethodPost, "/api/estimate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Cost)
	assert.InDelta(t, 0.0648, resp.Cost.Breakdown.Servos.Hourly, 1e-6)
}

func TestPostEstimateInvalidSpec(t *testing.T) {
	bad := spec.Default()
	bad.Operating.DaysPerWeek = 9
	body, err := json.Marshal(bad)
	require.NoError(t, err)

	rec := doRequest(t, testServer(t), http.MethodPost, "/api/estimate", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Validation.Valid)
	assert.Nil(t, resp.Cost)
}

func TestPostEstimateMalformedBody(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodPost, "/api/estimate", []byte(`{"cylinders": "nope"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSpecMissingProject(t *testing.T) {
	s := New("/nonexistent/project", 0)
	rec := doRequest(t, s, http.MethodGet, "/api/spec", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t)
	doRequest(t, s, http.MethodGet, "/api/cost", nil)

	rec := doRequest(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "machinecost_http_requests_total")
}
