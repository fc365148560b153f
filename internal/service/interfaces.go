// SPDX-License-Identifier: Apache-2.0

// Package service contains the typed domain façades of the VanGo client.
// Each service is a thin wrapper over the [gateway.Caller] capability bound
// to a fixed set of endpoint templates; services decode successful bodies
// and let normalized gateway errors pass through to their callers unchanged.
//
// Two response shapes coexist upstream and are deliberately not reconciled:
// most endpoints wrap their payload in [models.Envelope] (services unwrap
// Data), while the vehicle and matching endpoints return [models.Result]
// (services hand the whole Result back and callers branch on
// IsSuccess/IsFailure).
package service

import (
	"context"

	"github.com/ndtruong/vango-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService signs users in and out and manages the locally cached
// credentials.
type AuthService interface {
	// Login authenticates with email and password. On success the bearer
	// token and the user record are persisted in the credential store.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthData, error)

	// Register creates an account. On success the session is persisted the
	// same way Login does.
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthData, error)

	// Logout removes the stored token and user record. Purely local; there
	// is no server-side sign-out call.
	Logout(ctx context.Context) error

	// CurrentUser returns the cached user record, or ErrNotAuthenticated
	// when no session is stored.
	CurrentUser(ctx context.Context) (*models.User, error)
}

// ShipService manages shipment requests.
type ShipService interface {
	Create(ctx context.Context, req models.CreateShipRequest) (*models.ShipRequest, error)
	Get(ctx context.Context, shipRequestID string) (*models.ShipRequest, error)
	ListByUser(ctx context.Context, userID string) ([]models.ShipRequest, error)
}

// RouteService manages published driver routes.
type RouteService interface {
	Create(ctx context.Context, req models.CreateRouteRequest) (*models.Route, error)
	Get(ctx context.Context, routeID string) (*models.Route, error)
}

// VehicleService reads vehicle classes. Result-style endpoint: callers get
// the raw Result and branch on IsSuccess/IsFailure themselves.
type VehicleService interface {
	ListTypes(ctx context.Context) (*models.Result[[]models.VehicleType], error)
}

// MatchingService looks up the shipment/route pairing. Result-style
// endpoint, same contract as VehicleService.
type MatchingService interface {
	ForShipRequest(ctx context.Context, shipRequestID string) (*models.Result[models.Matching], error)
}

// FileService uploads files as multipart bodies.
type FileService interface {
	Upload(ctx context.Context, upload models.FileUpload) (*models.UploadedFile, error)
}
