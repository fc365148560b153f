package draft

import "errors"

var (
	// ErrMissingPickup is returned when a creation request is built before
	// the pickup location has been set.
	ErrMissingPickup = errors.New("pickup location is not set")

	// ErrMissingDropoff is returned when a creation request is built before
	// the dropoff location has been set.
	ErrMissingDropoff = errors.New("dropoff location is not set")
)
