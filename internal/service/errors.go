package service

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation needs a stored
	// session and none exists.
	ErrNotAuthenticated = errors.New("not authenticated")
)
