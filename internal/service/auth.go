// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/internal/logger"
	"github.com/ndtruong/vango-client/internal/store"
	"github.com/ndtruong/vango-client/models"
)

const (
	epLogin    = "/api/auth/login"
	epRegister = "/api/auth/register"
)

type authService struct {
	gw    gateway.Caller
	creds store.CredentialStore
	log   *logger.Logger
}

// NewAuthService constructs the auth façade. creds receives the bearer token
// and the user record after a successful sign-in.
func NewAuthService(gw gateway.Caller, creds store.CredentialStore, log *logger.Logger) AuthService {
	return &authService{gw: gw, creds: creds, log: log}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthData, error) {
	resp, err := s.gw.Post(ctx, epLogin, req)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[models.AuthData](resp)
	if err != nil {
		return nil, err
	}

	data := env.Data
	if err = s.persistSession(ctx, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthData, error) {
	resp, err := s.gw.Post(ctx, epRegister, req)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[models.AuthData](resp)
	if err != nil {
		return nil, err
	}

	data := env.Data
	if err = s.persistSession(ctx, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.creds.RemoveMany(ctx, store.KeyToken, store.KeyUser); err != nil {
		return fmt.Errorf("remove session credentials: %w", err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := s.creds.Get(ctx, store.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("read cached user: %w", err)
	}
	if raw == "" {
		return nil, ErrNotAuthenticated
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode cached user: %w", err)
	}
	return &user, nil
}

// persistSession stores the token and the user record. When the server
// omits the user id, it is recovered from the token's unverified subject
// claim so the cached record stays addressable.
func (s *authService) persistSession(ctx context.Context, data *models.AuthData) error {
	if data.User.ID == "" {
		if sub, err := subjectFromJWT(data.Token); err == nil {
			data.User.ID = sub
		} else {
			s.log.Warn().Err(err).Msg("parse user id from token")
		}
	}

	if err := s.creds.Set(ctx, store.KeyToken, data.Token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}

	userJSON, err := json.Marshal(data.User)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	if err = s.creds.Set(ctx, store.KeyUser, string(userJSON)); err != nil {
		return fmt.Errorf("persist user record: %w", err)
	}
	return nil
}

func subjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.GetSubject()
}
