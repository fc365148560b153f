package service

import (
	"context"

	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/models"
)

const epVehicleTypes = "/api/vehicle-types"

type vehicleService struct {
	gw gateway.Caller
}

// NewVehicleService constructs the vehicle façade.
func NewVehicleService(gw gateway.Caller) VehicleService {
	return &vehicleService{gw: gw}
}

// ListTypes returns the raw Result envelope: this endpoint is Result-style
// upstream and callers branch on IsSuccess/IsFailure, not on success/data.
func (s *vehicleService) ListTypes(ctx context.Context) (*models.Result[[]models.VehicleType], error) {
	resp, err := s.gw.Get(ctx, epVehicleTypes)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]models.VehicleType](resp)
}
