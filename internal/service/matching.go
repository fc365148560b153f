package service

import (
	"context"

	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/models"
)

const epMatchingByShip = "/api/matching/ship-request/{shipRequestId}"

type matchingService struct {
	gw gateway.Caller
}

// NewMatchingService constructs the matching façade.
func NewMatchingService(gw gateway.Caller) MatchingService {
	return &matchingService{gw: gw}
}

// ForShipRequest returns the raw Result envelope, same contract as
// [VehicleService.ListTypes].
func (s *matchingService) ForShipRequest(ctx context.Context, shipRequestID string) (*models.Result[models.Matching], error) {
	resp, err := s.gw.Get(ctx, epMatchingByShip, gateway.WithPathParam("shipRequestId", shipRequestID))
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Matching](resp)
}
