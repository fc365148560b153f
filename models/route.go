package models

// CreateRouteRequest is the route-creation payload: the same flattened
// pickup/dropoff projection as [CreateShipRequest] plus the route attributes
// a driver publishes about the leg they are offering.
type CreateRouteRequest struct {
	CreateShipRequest

	VehicleTypeID         string  `json:"vehicleTypeId,omitempty"`
	TemperatureControlled bool    `json:"temperatureControlled,omitempty"`
	Size                  string  `json:"size,omitempty"`
	Category              string  `json:"category,omitempty"`
	MaxWeight             float64 `json:"maxWeight,omitempty"`
	Notes                 string  `json:"notes,omitempty"`
	DepartureTime         string  `json:"departureTime,omitempty"`
	ArrivalTime           string  `json:"arrivalTime,omitempty"`
}

// Route is a published route as the server knows it.
type Route struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Status        string  `json:"status"`
	VehicleTypeID string  `json:"vehicleTypeId,omitempty"`
	MaxWeight     float64 `json:"maxWeight,omitempty"`
	DepartureTime string  `json:"departureTime,omitempty"`
	ArrivalTime   string  `json:"arrivalTime,omitempty"`

	PickupFullAddress  string  `json:"pickupFullAddress"`
	PickupLatitude     float64 `json:"pickupLatitude"`
	PickupLongitude    float64 `json:"pickupLongitude"`
	DropoffFullAddress string  `json:"dropoffFullAddress"`
	DropoffLatitude    float64 `json:"dropoffLatitude"`
	DropoffLongitude   float64 `json:"dropoffLongitude"`
}
