package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The vehicle and matching endpoints are Result-style: they report success
// inside the body (isSuccess/isFailure), not through the wrapper the
// envelope endpoints use. The services must hand that shape back untouched.

func TestVehicle_ListTypes_ReturnsRawResult(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vehicle-types", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"value": [{"id":"vt-bike","name":"Xe máy","maxWeight":30}],
			"isSuccess": true,
			"isFailure": false,
			"error": null
		}`))
	}))

	res, err := svcs.Vehicle.ListTypes(context.Background())

	require.NoError(t, err)
	assert.True(t, res.IsSuccess)
	assert.False(t, res.IsFailure)
	require.Len(t, res.Value, 1)
	assert.Equal(t, "Xe máy", res.Value[0].Name)
}

func TestMatching_ForShipRequest_FailureStaysInsideResult(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/matching/ship-request/sr-9", r.URL.Path)
		// HTTP-level success; the failure is a body-level fact.
		_, _ = w.Write([]byte(`{
			"value": null,
			"isSuccess": false,
			"isFailure": true,
			"error": {"code":"Matching.NotFound","message":"no route matches"}
		}`))
	}))

	res, err := svcs.Matching.ForShipRequest(context.Background(), "sr-9")

	require.NoError(t, err, "a Result-style body failure is not a call failure")
	assert.True(t, res.IsFailure)
	require.NotNil(t, res.Err)
	assert.Equal(t, "Matching.NotFound", res.Err.Code)
}

func TestMatching_ForShipRequest_Success(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"value": {"id":"m-1","shipRequestId":"sr-9","routeId":"rt-7","status":"proposed","price":125000},
			"isSuccess": true,
			"isFailure": false,
			"error": null
		}`))
	}))

	res, err := svcs.Matching.ForShipRequest(context.Background(), "sr-9")

	require.NoError(t, err)
	assert.True(t, res.IsSuccess)
	assert.Equal(t, "rt-7", res.Value.RouteID)
	assert.InDelta(t, 125000, res.Value.Price, 1e-9)
}
