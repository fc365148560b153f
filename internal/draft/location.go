// SPDX-License-Identifier: Apache-2.0

// Package draft accumulates the in-progress state of an order or route
// before submission: two independently set geocoded locations (pickup and
// dropoff) and, for routes, a free-form attributes record. On demand a
// draft projects itself, together with caller-supplied line items and a
// time window, into a complete creation request. The projection is pure and
// fails fast when a required location is missing — a half-built request
// never escapes.
package draft

import "github.com/ndtruong/vango-client/models"

// LocationDraft is a geocoded address captured by the UI, plus optional
// contact and note fields.
type LocationDraft struct {
	Street      string
	Ward        string
	District    string
	City        string
	Province    string
	PostalCode  string
	Country     string
	Latitude    float64
	Longitude   float64
	FullAddress string

	Note          string
	ReceiverName  string
	ReceiverPhone string
}

// TimeWindow is the pickup window of a creation request.
type TimeWindow struct {
	Start string
	End   string
}

func applyPickup(req *models.CreateShipRequest, loc *LocationDraft) {
	req.PickupStreet = loc.Street
	req.PickupWard = loc.Ward
	req.PickupDistrict = loc.District
	req.PickupCity = loc.City
	req.PickupProvince = loc.Province
	req.PickupPostalCode = loc.PostalCode
	req.PickupCountry = loc.Country
	req.PickupLatitude = loc.Latitude
	req.PickupLongitude = loc.Longitude
	req.PickupFullAddress = loc.FullAddress
	req.PickupNote = loc.Note
	req.PickupReceiverName = loc.ReceiverName
	req.PickupReceiverPhone = loc.ReceiverPhone
}

func applyDropoff(req *models.CreateShipRequest, loc *LocationDraft) {
	req.DropoffStreet = loc.Street
	req.DropoffWard = loc.Ward
	req.DropoffDistrict = loc.District
	req.DropoffCity = loc.City
	req.DropoffProvince = loc.Province
	req.DropoffPostalCode = loc.PostalCode
	req.DropoffCountry = loc.Country
	req.DropoffLatitude = loc.Latitude
	req.DropoffLongitude = loc.Longitude
	req.DropoffFullAddress = loc.FullAddress
	req.DropoffNote = loc.Note
	req.DropoffReceiverName = loc.ReceiverName
	req.DropoffReceiverPhone = loc.ReceiverPhone
}

func buildShipRequest(userID string, pickup, dropoff *LocationDraft, items []models.ShipItem, window TimeWindow) (*models.CreateShipRequest, error) {
	if pickup == nil {
		return nil, ErrMissingPickup
	}
	if dropoff == nil {
		return nil, ErrMissingDropoff
	}

	req := &models.CreateShipRequest{
		UserID:          userID,
		Items:           items,
		PickupTimeStart: window.Start,
		PickupTimeEnd:   window.End,
	}
	applyPickup(req, pickup)
	applyDropoff(req, dropoff)
	return req, nil
}
