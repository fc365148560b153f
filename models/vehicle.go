package models

// VehicleType describes one vehicle class a route can be served with.
// Served by a Result-style endpoint.
type VehicleType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MaxWeight   float64 `json:"maxWeight"`
	Description string  `json:"description,omitempty"`
}
