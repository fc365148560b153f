// SPDX-License-Identifier: Apache-2.0

package draft

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ndtruong/vango-client/models"
)

// OrderDraft holds the in-progress pickup/dropoff state of one order. The
// two locations are set independently by UI flows and read exactly once at
// submission time. All methods are safe for concurrent use; Clear resets
// both locations in one atomic update.
type OrderDraft struct {
	id string

	mu      sync.Mutex
	pickup  *LocationDraft
	dropoff *LocationDraft
}

// NewOrderDraft creates an empty draft with a client-generated id.
func NewOrderDraft() *OrderDraft {
	return &OrderDraft{id: uuid.NewString()}
}

// ID returns the client-generated draft id.
func (d *OrderDraft) ID() string { return d.id }

// SetPickup stores (or replaces) the pickup location.
func (d *OrderDraft) SetPickup(loc LocationDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pickup = &loc
}

// SetDropoff stores (or replaces) the dropoff location.
func (d *OrderDraft) SetDropoff(loc LocationDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dropoff = &loc
}

// Pickup returns a copy of the pickup location, or nil when unset.
func (d *OrderDraft) Pickup() *LocationDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pickup == nil {
		return nil
	}
	loc := *d.pickup
	return &loc
}

// Dropoff returns a copy of the dropoff location, or nil when unset.
func (d *OrderDraft) Dropoff() *LocationDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dropoff == nil {
		return nil
	}
	loc := *d.dropoff
	return &loc
}

// Clear resets both locations.
func (d *OrderDraft) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pickup = nil
	d.dropoff = nil
}

// BuildCreateShipRequest projects the draft into a complete creation
// request, flattening both locations under pickup*/dropoff* fields. It
// fails with [ErrMissingPickup] or [ErrMissingDropoff] when either location
// is unset; no partial request is ever returned.
func (d *OrderDraft) BuildCreateShipRequest(userID string, items []models.ShipItem, window TimeWindow) (*models.CreateShipRequest, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return buildShipRequest(userID, d.pickup, d.dropoff, items, window)
}
