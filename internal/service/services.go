package service

import (
	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/internal/logger"
	"github.com/ndtruong/vango-client/internal/store"
)

// Services aggregates every domain façade behind one constructor. The
// Gateway capability is passed in explicitly so tests can hand each service
// a fake.
type Services struct {
	Auth     AuthService
	Ship     ShipService
	Route    RouteService
	Vehicle  VehicleService
	Matching MatchingService
	File     FileService
}

func NewServices(gw gateway.Caller, creds store.CredentialStore, log *logger.Logger) *Services {
	return &Services{
		Auth:     NewAuthService(gw, creds, log),
		Ship:     NewShipService(gw),
		Route:    NewRouteService(gw),
		Vehicle:  NewVehicleService(gw),
		Matching: NewMatchingService(gw),
		File:     NewFileService(gw),
	}
}
