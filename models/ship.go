package models

// ShipItem is one line item of a shipment: what is being carried and how
// much of it.
type ShipItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Note     string  `json:"note,omitempty"`
}

// CreateShipRequest is the full shipment-creation payload. The pickup and
// dropoff location fields are flattened projections of two location drafts;
// the struct is built on demand by the draft accumulator and never stored.
type CreateShipRequest struct {
	UserID string `json:"userId"`

	PickupStreet        string  `json:"pickupStreet"`
	PickupWard          string  `json:"pickupWard"`
	PickupDistrict      string  `json:"pickupDistrict"`
	PickupCity          string  `json:"pickupCity"`
	PickupProvince      string  `json:"pickupProvince"`
	PickupPostalCode    string  `json:"pickupPostalCode"`
	PickupCountry       string  `json:"pickupCountry"`
	PickupLatitude      float64 `json:"pickupLatitude"`
	PickupLongitude     float64 `json:"pickupLongitude"`
	PickupFullAddress   string  `json:"pickupFullAddress"`
	PickupNote          string  `json:"pickupNote,omitempty"`
	PickupReceiverName  string  `json:"pickupReceiverName,omitempty"`
	PickupReceiverPhone string  `json:"pickupReceiverPhone,omitempty"`

	DropoffStreet        string  `json:"dropoffStreet"`
	DropoffWard          string  `json:"dropoffWard"`
	DropoffDistrict      string  `json:"dropoffDistrict"`
	DropoffCity          string  `json:"dropoffCity"`
	DropoffProvince      string  `json:"dropoffProvince"`
	DropoffPostalCode    string  `json:"dropoffPostalCode"`
	DropoffCountry       string  `json:"dropoffCountry"`
	DropoffLatitude      float64 `json:"dropoffLatitude"`
	DropoffLongitude     float64 `json:"dropoffLongitude"`
	DropoffFullAddress   string  `json:"dropoffFullAddress"`
	DropoffNote          string  `json:"dropoffNote,omitempty"`
	DropoffReceiverName  string  `json:"dropoffReceiverName,omitempty"`
	DropoffReceiverPhone string  `json:"dropoffReceiverPhone,omitempty"`

	Items           []ShipItem `json:"items"`
	PickupTimeStart string     `json:"pickupTimeStart"`
	PickupTimeEnd   string     `json:"pickupTimeEnd"`
}

// ShipRequest is a shipment as the server knows it.
type ShipRequest struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Status    string     `json:"status"`
	Items     []ShipItem `json:"items"`
	PickupAt  string     `json:"pickupAt,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`

	PickupFullAddress  string  `json:"pickupFullAddress"`
	PickupLatitude     float64 `json:"pickupLatitude"`
	PickupLongitude    float64 `json:"pickupLongitude"`
	DropoffFullAddress string  `json:"dropoffFullAddress"`
	DropoffLatitude    float64 `json:"dropoffLatitude"`
	DropoffLongitude   float64 `json:"dropoffLongitude"`
}
