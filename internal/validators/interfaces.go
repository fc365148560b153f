// SPDX-License-Identifier: Apache-2.0

// Package validators checks user-supplied request payloads before they are
// handed to the domain services. Validation lives in front of the services
// on purpose: the services stay thin pass-throughs over the gateway, and the
// screens that collect input decide which fields to enforce.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
