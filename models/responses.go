package models

// Envelope is the standard success wrapper used by most VanGo API endpoints:
// a boolean flag, a human-readable message, and the typed payload under data.
// Services unwrap Data before returning to their callers.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Result is the second success wrapper the upstream API uses on a handful of
// endpoints (vehicle types, matching). Unlike [Envelope] it is returned to
// callers as-is: they branch on IsSuccess/IsFailure themselves. The two
// shapes coexist upstream and must not be conflated.
type Result[T any] struct {
	Value     T            `json:"value"`
	IsSuccess bool         `json:"isSuccess"`
	IsFailure bool         `json:"isFailure"`
	Err       *ResultError `json:"error"`
}

// ResultError carries the failure detail of a Result-style response.
type ResultError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
