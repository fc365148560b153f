// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndtruong/vango-client/models"
)

func validLoginRequest() models.LoginRequest {
	return models.LoginRequest{Email: "an@vango.vn", Password: "secret"}
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FullName:    "Nguyễn Văn An",
		Email:       "an@vango.vn",
		PhoneNumber: "0912345678",
		Password:    "secret",
	}
}

func TestNewAuthValidator(t *testing.T) {
	v := NewAuthValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	login := validLoginRequest()
	assert.NoError(t, v.Validate(ctx, login))
	assert.NoError(t, v.Validate(ctx, &login))

	register := validRegisterRequest()
	assert.NoError(t, v.Validate(ctx, register))
	assert.NoError(t, v.Validate(ctx, &register))

	assert.ErrorIs(t, v.Validate(ctx, struct{}{}), ErrUnsupportedType)
}

func TestValidate_LoginRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *models.LoginRequest)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(req *models.LoginRequest) {},
		},
		{
			name:    "empty email",
			mutate:  func(req *models.LoginRequest) { req.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			mutate:  func(req *models.LoginRequest) { req.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty password",
			mutate:  func(req *models.LoginRequest) { req.Password = "" },
			wantErr: ErrEmptyPassword,
		},
		{
			name:   "empty password skipped with email-only scope",
			mutate: func(req *models.LoginRequest) { req.Password = "" },
			fields: []string{FieldEmail},
		},
		{
			name:    "unknown field",
			mutate:  func(req *models.LoginRequest) {},
			fields:  []string{"surname"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewAuthValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLoginRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *models.RegisterRequest)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(req *models.RegisterRequest) {},
		},
		{
			name:   "phone is optional",
			mutate: func(req *models.RegisterRequest) { req.PhoneNumber = "" },
		},
		{
			name:   "international phone format",
			mutate: func(req *models.RegisterRequest) { req.PhoneNumber = "+84912345678" },
		},
		{
			name:    "empty full name",
			mutate:  func(req *models.RegisterRequest) { req.FullName = "" },
			wantErr: ErrEmptyFullName,
		},
		{
			name:    "malformed phone",
			mutate:  func(req *models.RegisterRequest) { req.PhoneNumber = "12345" },
			wantErr: ErrInvalidPhoneNumber,
		},
		{
			name:    "short password",
			mutate:  func(req *models.RegisterRequest) { req.Password = "abc" },
			wantErr: ErrPasswordTooShort,
		},
	}

	v := NewAuthValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
