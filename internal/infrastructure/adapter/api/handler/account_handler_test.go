package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/points-bot/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, register func(r *gin.Engine), path string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	register(r)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAccountHandler_GetAccount(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m *usecasemocks.MockLedgerStore)
		wantStatus int
		wantCode   int
	}{
		{
			name:       "invalid id",
			path:       "/accounts/abc",
			setup:      func(m *usecasemocks.MockLedgerStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerr.CodeInvalidUserID,
		},
		{
			name:       "non-positive id",
			path:       "/accounts/0",
			setup:      func(m *usecasemocks.MockLedgerStore) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerr.CodeInvalidUserID,
		},
		{
			name: "unknown account",
			path: "/accounts/42",
			setup: func(m *usecasemocks.MockLedgerStore) {
				m.EXPECT().GetAccount(mock.Anything, int64(42)).Return(nil, domainerr.ErrAccountNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   domainerr.CodeAccountNotFound,
		},
		{
			name: "store failure",
			path: "/accounts/42",
			setup: func(m *usecasemocks.MockLedgerStore) {
				m.EXPECT().GetAccount(mock.Anything, int64(42)).
					Return(nil, domainerr.NewStoreError("get", 42, errors.New("disk I/O error")))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerr.CodeStoreOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ledger := usecasemocks.NewMockLedgerStore(t)
			tt.setup(ledger)
			h := NewAccountHandler(ledger, logger.NewNoopLogger())

			// Act
			w := serve(t, func(r *gin.Engine) { r.GET("/accounts/:userId", h.GetAccount) }, tt.path)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}

	t.Run("existing account", func(t *testing.T) {
		// Arrange
		ledger := usecasemocks.NewMockLedgerStore(t)
		ledger.EXPECT().GetAccount(mock.Anything, int64(772531685438783539)).
			Return(entity.RestoreAccount(772531685438783539, 250), nil)
		h := NewAccountHandler(ledger, logger.NewNoopLogger())

		// Act
		w := serve(t, func(r *gin.Engine) { r.GET("/accounts/:userId", h.GetAccount) }, "/accounts/772531685438783539")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, dto.AccountResponse{UserID: "772531685438783539", Points: 250, Exists: true}, body)
	})
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	t.Run("lists every account", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerStore(t)
		ledger.EXPECT().ListAccounts(mock.Anything).Return([]*entity.Account{
			entity.RestoreAccount(1, 10),
			entity.RestoreAccount(2, -5),
		})
		h := NewAccountHandler(ledger, logger.NewNoopLogger())

		w := serve(t, func(r *gin.Engine) { r.GET("/accounts", h.ListAccounts) }, "/accounts")

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.AccountListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Count)
		assert.Equal(t, "1", body.Accounts[0].UserID)
		assert.Equal(t, int64(-5), body.Accounts[1].Points)
	})

	t.Run("empty store returns an empty list", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerStore(t)
		ledger.EXPECT().ListAccounts(mock.Anything).Return([]*entity.Account{})
		h := NewAccountHandler(ledger, logger.NewNoopLogger())

		w := serve(t, func(r *gin.Engine) { r.GET("/accounts", h.ListAccounts) }, "/accounts")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"accounts":[],"count":0}`, w.Body.String())
	})
}
