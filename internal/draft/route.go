// SPDX-License-Identifier: Apache-2.0

package draft

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ndtruong/vango-client/models"
)

// RouteAttributes is the free-form attributes record a driver fills in
// about the leg they are offering. All fields are optional.
type RouteAttributes struct {
	VehicleTypeID         string
	TemperatureControlled bool
	Size                  string
	Category              string
	MaxWeight             float64
	Notes                 string
	DepartureTime         string
	ArrivalTime           string
}

// RouteDraft is the route variant of [OrderDraft]: the same two optional
// locations plus a nullable attributes record. Clear resets all three
// atomically.
type RouteDraft struct {
	id string

	mu      sync.Mutex
	pickup  *LocationDraft
	dropoff *LocationDraft
	attrs   *RouteAttributes
}

// NewRouteDraft creates an empty route draft with a client-generated id.
func NewRouteDraft() *RouteDraft {
	return &RouteDraft{id: uuid.NewString()}
}

// ID returns the client-generated draft id.
func (d *RouteDraft) ID() string { return d.id }

// SetPickup stores (or replaces) the pickup location.
func (d *RouteDraft) SetPickup(loc LocationDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pickup = &loc
}

// SetDropoff stores (or replaces) the dropoff location.
func (d *RouteDraft) SetDropoff(loc LocationDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dropoff = &loc
}

// SetAttributes stores (or replaces) the attributes record.
func (d *RouteDraft) SetAttributes(attrs RouteAttributes) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attrs = &attrs
}

// Attributes returns a copy of the attributes record, or nil when unset.
func (d *RouteDraft) Attributes() *RouteAttributes {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.attrs == nil {
		return nil
	}
	attrs := *d.attrs
	return &attrs
}

// Clear resets both locations and the attributes record in one update.
func (d *RouteDraft) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pickup = nil
	d.dropoff = nil
	d.attrs = nil
}

// BuildCreateRouteRequest projects the draft into a complete route-creation
// request. The location preconditions are identical to
// [OrderDraft.BuildCreateShipRequest]; the attributes record is optional
// and flattened when present.
func (d *RouteDraft) BuildCreateRouteRequest(userID string, items []models.ShipItem, window TimeWindow) (*models.CreateRouteRequest, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	shipReq, err := buildShipRequest(userID, d.pickup, d.dropoff, items, window)
	if err != nil {
		return nil, err
	}

	req := &models.CreateRouteRequest{CreateShipRequest: *shipReq}
	if d.attrs != nil {
		req.VehicleTypeID = d.attrs.VehicleTypeID
		req.TemperatureControlled = d.attrs.TemperatureControlled
		req.Size = d.attrs.Size
		req.Category = d.attrs.Category
		req.MaxWeight = d.attrs.MaxWeight
		req.Notes = d.attrs.Notes
		req.DepartureTime = d.attrs.DepartureTime
		req.ArrivalTime = d.attrs.ArrivalTime
	}
	return req, nil
}
