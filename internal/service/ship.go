package service

import (
	"context"

	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/models"
)

const (
	epCreateShip  = "/api/ship-requests"
	epShipByID    = "/api/ship-requests/{shipRequestId}"
	epShipsByUser = "/api/ship-requests/user/{userId}"
)

type shipService struct {
	gw gateway.Caller
}

// NewShipService constructs the shipment façade.
func NewShipService(gw gateway.Caller) ShipService {
	return &shipService{gw: gw}
}

func (s *shipService) Create(ctx context.Context, req models.CreateShipRequest) (*models.ShipRequest, error) {
	resp, err := s.gw.Post(ctx, epCreateShip, req)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[models.ShipRequest](resp)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (s *shipService) Get(ctx context.Context, shipRequestID string) (*models.ShipRequest, error) {
	resp, err := s.gw.Get(ctx, epShipByID, gateway.WithPathParam("shipRequestId", shipRequestID))
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[models.ShipRequest](resp)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (s *shipService) ListByUser(ctx context.Context, userID string) ([]models.ShipRequest, error) {
	resp, err := s.gw.Get(ctx, epShipsByUser, gateway.WithPathParam("userId", userID))
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[[]models.ShipRequest](resp)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
