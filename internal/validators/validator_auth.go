// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"net/mail"
	"regexp"

	"github.com/ndtruong/vango-client/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the account email of an auth payload.
	FieldEmail = "email"

	// FieldPassword targets the password of an auth payload.
	FieldPassword = "password"

	// FieldFullName targets the display name of a registration payload.
	FieldFullName = "full_name"

	// FieldPhoneNumber targets the phone number of a registration payload.
	FieldPhoneNumber = "phone_number"
)

// Vietnamese mobile numbers: local 0xxxxxxxxx or international +84xxxxxxxxx.
var phonePattern = regexp.MustCompile(`^(0|\+84)\d{9}$`)

// AuthValidator implements the Validator interface for the sign-in and
// registration payloads. It supports both value and pointer receivers for
// every model type and allows optional field-level scoping via variadic
// field name arguments.
type AuthValidator struct {
}

// NewAuthValidator constructs a new AuthValidator and returns it as the
// Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPhoneNumber, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if req.FullName == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPhoneNumber:
			// Phone is optional at registration.
			if req.PhoneNumber != "" && !phonePattern.MatchString(req.PhoneNumber) {
				return ErrInvalidPhoneNumber
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) < 6 {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
