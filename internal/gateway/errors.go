package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the one error shape every failed Gateway call surfaces to its
// caller. It serialises to {"success":false,"message":...,"error":...} —
// the exact envelope the UI layer consumes. Message is user-facing and
// localized; Detail carries the diagnostic text.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Detail != "" && e.Detail != e.Message {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// AsAPIError unwraps err into the *APIError produced by the normalizer.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a normalized session-expiry (401)
// failure.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}
