package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ndtruong/vango-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShip_Create_UnwrapsEnvelopeData(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ship-requests", r.URL.Path)

		var req models.CreateShipRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u1", req.UserID)
		assert.InDelta(t, 10.77, req.PickupLatitude, 1e-9)

		_ = json.NewEncoder(w).Encode(models.Envelope[models.ShipRequest]{
			Success: true,
			Message: "created",
			Data:    models.ShipRequest{ID: "sr-1", UserID: "u1", Status: "pending"},
		})
	}))

	got, err := svcs.Ship.Create(context.Background(), models.CreateShipRequest{
		UserID:         "u1",
		PickupLatitude: 10.77,
		Items:          []models.ShipItem{{Name: "Hộp tài liệu", Quantity: 1, Weight: 0.5}},
	})

	require.NoError(t, err)
	assert.Equal(t, "sr-1", got.ID)
	assert.Equal(t, "pending", got.Status)
}

func TestShip_Get_SubstitutesPathPlaceholder(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ship-requests/sr-42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Envelope[models.ShipRequest]{
			Success: true,
			Data:    models.ShipRequest{ID: "sr-42"},
		})
	}))

	got, err := svcs.Ship.Get(context.Background(), "sr-42")

	require.NoError(t, err)
	assert.Equal(t, "sr-42", got.ID)
}

func TestShip_ListByUser(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ship-requests/user/u1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Envelope[[]models.ShipRequest]{
			Success: true,
			Data:    []models.ShipRequest{{ID: "sr-1"}, {ID: "sr-2"}},
		})
	}))

	got, err := svcs.Ship.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sr-2", got[1].ID)
}

func TestRoute_Create_UnwrapsEnvelopeData(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/routes", r.URL.Path)

		var req models.CreateRouteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "vt-truck", req.VehicleTypeID)

		_ = json.NewEncoder(w).Encode(models.Envelope[models.Route]{
			Success: true,
			Data:    models.Route{ID: "rt-1", VehicleTypeID: "vt-truck"},
		})
	}))

	got, err := svcs.Route.Create(context.Background(), models.CreateRouteRequest{VehicleTypeID: "vt-truck"})

	require.NoError(t, err)
	assert.Equal(t, "rt-1", got.ID)
}

func TestRoute_Get(t *testing.T) {
	svcs, _, _ := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/routes/rt-7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Envelope[models.Route]{Success: true, Data: models.Route{ID: "rt-7"}})
	}))

	got, err := svcs.Route.Get(context.Background(), "rt-7")

	require.NoError(t, err)
	assert.Equal(t, "rt-7", got.ID)
}
