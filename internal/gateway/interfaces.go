// SPDX-License-Identifier: Apache-2.0

// Package gateway is the single point through which every outbound VanGo API
// call passes. It builds requests on a shared resty client, injects the
// bearer token read from the credential store before each dispatch, and runs
// every outcome through a response normalizer that detects session expiry
// (evicting credentials and navigating to the login screen) and reshapes all
// failures into one [APIError] envelope.
//
// Callers never receive a raw transport error: every failed call rejects
// with *APIError and nothing else.
package gateway

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// Caller is the minimal verb-scoped capability the service layer depends
// on. Services hold a Caller rather than the concrete *Gateway so tests can
// substitute a fake.
type Caller interface {
	Get(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error)
	Post(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error)
	Put(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error)
	Delete(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error)
}
