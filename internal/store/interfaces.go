// SPDX-License-Identifier: Apache-2.0

// Package store provides the device-local credential store: a small
// key-value persistence layer holding the session bearer token and the
// cached user record between application runs.
//
// The package ships a SQLite-backed implementation ([NewSQLiteStore]) for
// real devices and an in-memory implementation ([NewMemoryStore]) for tests
// and ephemeral runs.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// Storage keys. At most one value exists per key per device.
const (
	// KeyToken holds the opaque bearer token of the active session.
	KeyToken = "vango_token"

	// KeyUser holds the JSON-encoded user record of the signed-in account.
	KeyUser = "vango_user"
)

// CredentialStore is asynchronous get/set/remove access to device-local
// credentials by string key. Implementations must treat an absent key as a
// non-error: Get returns ("", nil).
type CredentialStore interface {
	// Get returns the value stored under key, or an empty string when the
	// key is absent. A non-nil error indicates a storage failure, never a
	// missing key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// RemoveMany deletes every given key in a single atomic operation.
	// Deleting an absent key is not an error.
	RemoveMany(ctx context.Context, keys ...string) error
}
