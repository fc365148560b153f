package models

// Matching pairs a shipment with a candidate route. Served by a Result-style
// endpoint; callers inspect Result.IsSuccess before reading the value.
type Matching struct {
	ID            string  `json:"id"`
	ShipRequestID string  `json:"shipRequestId"`
	RouteID       string  `json:"routeId"`
	DriverID      string  `json:"driverId"`
	Status        string  `json:"status"`
	Price         float64 `json:"price,omitempty"`
}
