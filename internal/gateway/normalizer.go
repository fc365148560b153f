// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/ndtruong/vango-client/internal/app"
	"github.com/ndtruong/vango-client/internal/logger"
	"github.com/ndtruong/vango-client/internal/nav"
	"github.com/ndtruong/vango-client/internal/store"
)

// normalizer is the inbound interception stage. It runs on every outcome,
// success or failure, fires the session-expiry side effects on 401, and
// reshapes every failure into *APIError.
type normalizer struct {
	credentials store.CredentialStore
	navigator   nav.Navigator
	log         *logger.Logger
}

// apiErrorBody is the JSON error body the upstream API puts in non-2xx
// responses. Both fields are optional.
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// intercept returns nil for a successful outcome, otherwise the normalized
// error. Session expiry (401) triggers credential eviction and, when the
// navigation subsystem is ready, a switch to the login screen before the
// error is surfaced.
func (n *normalizer) intercept(ctx context.Context, resp *resty.Response, err error) *APIError {
	if err == nil && resp != nil && resp.IsSuccess() {
		return nil
	}

	if resp != nil && resp.StatusCode() == http.StatusUnauthorized {
		n.expireSession(ctx)
	}

	return normalizeError(resp, err)
}

// expireSession moves the session to the unauthenticated state: both
// credential keys are removed, then the user is returned to the login
// screen. Eviction is best-effort — a store failure is logged and never
// blocks navigation. Repeating the transition on a second 401 only repeats
// the removal, so it is idempotent in effect.
func (n *normalizer) expireSession(ctx context.Context) {
	if err := n.credentials.RemoveMany(ctx, store.KeyToken, store.KeyUser); err != nil {
		n.log.Error().Err(err).Msg("evict session credentials")
	}
	if n.navigator.IsReady() {
		n.navigator.Navigate(nav.ScreenLogin)
	}
}

// normalizeError builds the single error envelope for any failure origin.
// Message priority: server message, else the transport error text when a
// protocol response was actually received, else the localized fallback.
// Detail carries the server error field or the transport error text.
func normalizeError(resp *resty.Response, err error) *APIError {
	var body apiErrorBody
	status := 0
	if resp != nil {
		status = resp.StatusCode()
		if len(resp.Body()) > 0 {
			_ = json.Unmarshal(resp.Body(), &body)
		}
	}

	msg := body.Message
	if msg == "" && err != nil && status != 0 {
		msg = err.Error()
	}
	if msg == "" {
		msg = app.MsgSomethingWentWrong
	}

	detail := body.Error
	if detail == "" && err != nil {
		detail = err.Error()
	}
	if detail == "" && status != 0 {
		detail = http.StatusText(status)
	}

	return &APIError{Message: msg, Detail: detail, Status: status}
}
