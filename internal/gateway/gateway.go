// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/ndtruong/vango-client/internal/logger"
	"github.com/ndtruong/vango-client/internal/nav"
	"github.com/ndtruong/vango-client/internal/store"
)

// defaultTimeout bounds every call issued through a Gateway; past it the
// request is treated as a transport failure.
const defaultTimeout = 10 * time.Second

// Config holds the settings of one Gateway instance. Multiple independently
// configured Gateways (e.g. per base URL) can coexist; nothing in this
// package is process-global.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Gateway builds outbound requests and exposes the verb-scoped call helpers
// of [Caller]. It holds no session state: the bearer token is re-read from
// the credential store on every request.
type Gateway struct {
	client *resty.Client
	norm   *normalizer
	log    *logger.Logger
}

// New constructs a Gateway. The base URL is normalised and validated; the
// timeout falls back to 10s when unset. Credential injection is installed as
// a resty pre-dispatch middleware, so a failing credential read rejects the
// call before any network I/O — that rejection still surfaces as a
// normalized [APIError].
func New(cfg Config, credentials store.CredentialStore, navigator nav.Navigator, log *logger.Logger) (*Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		// Re-read per request; a token deleted by a concurrent session
		// expiry just means this request goes out unauthenticated.
		token, getErr := credentials.Get(r.Context(), store.KeyToken)
		if getErr != nil {
			return fmt.Errorf("read session credential: %w", getErr)
		}
		if token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Gateway{
		client: client,
		norm:   &normalizer{credentials: credentials, navigator: navigator, log: log},
		log:    log,
	}, nil
}

// Get implements [Caller].
func (g *Gateway) Get(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error) {
	return g.execute(ctx, http.MethodGet, path, nil, opts)
}

// Post implements [Caller].
func (g *Gateway) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return g.execute(ctx, http.MethodPost, path, body, opts)
}

// Put implements [Caller].
func (g *Gateway) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return g.execute(ctx, http.MethodPut, path, body, opts)
}

// Delete implements [Caller].
func (g *Gateway) Delete(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error) {
	return g.execute(ctx, http.MethodDelete, path, nil, opts)
}

func (g *Gateway) execute(ctx context.Context, method, path string, body any, opts []RequestOption) (*resty.Response, error) {
	req := g.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	g.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("gateway call")

	if apiErr := g.norm.intercept(ctx, resp, err); apiErr != nil {
		return resp, apiErr
	}
	return resp, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
