package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndtruong/vango-client/internal/logger"
	"github.com/ndtruong/vango-client/internal/mock"
	"github.com/ndtruong/vango-client/internal/nav"
	"github.com/ndtruong/vango-client/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizer_Expiry_RemovesBothKeysThenNavigates(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	navigator := mock.NewMockNavigator(ctrl)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds.EXPECT().Get(gomock.Any(), store.KeyToken).Return("jwt-old", nil)
	gomock.InOrder(
		creds.EXPECT().RemoveMany(gomock.Any(), store.KeyToken, store.KeyUser).Return(nil),
		navigator.EXPECT().IsReady().Return(true),
		navigator.EXPECT().Navigate(nav.ScreenLogin),
	)

	g, err := New(Config{BaseURL: srv.URL}, creds, navigator, logger.Nop())
	require.NoError(t, err)

	_, err = g.Get(context.Background(), "/api/ship-requests")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestNormalizer_Expiry_StoreFailureDoesNotBlockNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	navigator := mock.NewMockNavigator(ctrl)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds.EXPECT().Get(gomock.Any(), store.KeyToken).Return("jwt-old", nil)
	creds.EXPECT().RemoveMany(gomock.Any(), store.KeyToken, store.KeyUser).
		Return(errors.New("database is locked"))
	navigator.EXPECT().IsReady().Return(true)
	navigator.EXPECT().Navigate(nav.ScreenLogin)

	g, err := New(Config{BaseURL: srv.URL}, creds, navigator, logger.Nop())
	require.NoError(t, err)

	_, err = g.Get(context.Background(), "/api/routes")

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "store failure must not replace the normalized error")
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestNormalizer_NonExpiryFailure_NoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	navigator := mock.NewMockNavigator(ctrl)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"already matched"}`))
	}))
	defer srv.Close()

	// Only the pre-dispatch credential read is expected; RemoveMany and
	// Navigate must never be called for a non-401 failure.
	creds.EXPECT().Get(gomock.Any(), store.KeyToken).Return("jwt", nil)

	g, err := New(Config{BaseURL: srv.URL}, creds, navigator, logger.Nop())
	require.NoError(t, err)

	_, err = g.Get(context.Background(), "/api/matching/ship-request/{shipRequestId}",
		WithPathParam("shipRequestId", "sr-9"))

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "already matched", apiErr.Message)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestNormalizer_SuccessPassesThroughUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	navigator := mock.NewMockNavigator(ctrl)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"id":"sr-1"}}`))
	}))
	defer srv.Close()

	creds.EXPECT().Get(gomock.Any(), store.KeyToken).Return("jwt", nil)

	g, err := New(Config{BaseURL: srv.URL}, creds, navigator, logger.Nop())
	require.NoError(t, err)

	resp, err := g.Get(context.Background(), "/api/ship-requests/{shipRequestId}",
		WithPathParam("shipRequestId", "sr-1"))

	require.NoError(t, err)
	assert.Contains(t, string(resp.Body()), `"id":"sr-1"`)
}
