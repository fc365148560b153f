package service

import (
	"context"

	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/models"
)

const (
	epCreateRoute = "/api/routes"
	epRouteByID   = "/api/routes/{routeId}"
)

type routeService struct {
	gw gateway.Caller
}

// NewRouteService constructs the route façade.
func NewRouteService(gw gateway.Caller) RouteService {
	return &routeService{gw: gw}
}

func (s *routeService) Create(ctx context.Context, req models.CreateRouteRequest) (*models.Route, error) {
	resp, err := s.gw.Post(ctx, epCreateRoute, req)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[models.Route](resp)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (s *routeService) Get(ctx context.Context, routeID string) (*models.Route, error) {
	resp, err := s.gw.Get(ctx, epRouteByID, gateway.WithPathParam("routeId", routeID))
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[models.Route](resp)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
