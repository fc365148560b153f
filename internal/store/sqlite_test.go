// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newSQLiteStoreWithDB(db), mock
}

func TestSQLiteStore_Get_ReturnsValue(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectQuery(`SELECT value FROM credentials WHERE key = \?`).
		WithArgs(KeyToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("jwt-abc"))

	got, err := s.Get(context.Background(), KeyToken)

	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Get_AbsentKeyIsNotAnError(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectQuery(`SELECT value FROM credentials WHERE key = \?`).
		WithArgs(KeyToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	got, err := s.Get(context.Background(), KeyToken)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_Get_StorageFailure(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectQuery(`SELECT value FROM credentials WHERE key = \?`).
		WithArgs(KeyToken).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), KeyToken)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestSQLiteStore_Set_Upserts(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectExec(`INSERT INTO credentials \(key, value\) VALUES \(\?, \?\)`).
		WithArgs(KeyToken, "jwt-new").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), KeyToken, "jwt-new"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_RemoveMany_DeletesAllKeysInOneTransaction(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM credentials WHERE key = \?`).
		WithArgs(KeyToken).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM credentials WHERE key = \?`).
		WithArgs(KeyUser).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.RemoveMany(context.Background(), KeyToken, KeyUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_RemoveMany_RollsBackOnFailure(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM credentials WHERE key = \?`).
		WithArgs(KeyToken).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := s.RemoveMany(context.Background(), KeyToken, KeyUser)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Empty(t, got, "absent key reads as empty string")

	require.NoError(t, s.Set(ctx, KeyToken, "jwt-abc"))
	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"u1"}`))

	got, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", got)

	require.NoError(t, s.RemoveMany(ctx, KeyToken, KeyUser))

	got, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Empty(t, got)
	got, err = s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_RemoveMany_AbsentKeysAreNotAnError(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.RemoveMany(context.Background(), "never", "stored"))
}
