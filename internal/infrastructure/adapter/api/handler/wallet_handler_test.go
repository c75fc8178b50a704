package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/payledger/mocks/port/usecase"
)

var createdAt = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func newWalletRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockWalletUseCase) {
	gin.SetMode(gin.TestMode)
	wallet := usecasemocks.NewMockWalletUseCase(t)
	router := gin.New()
	routes.SetupWalletRoutes(router, handler.NewWalletHandler(wallet, logger.NewNoopLogger()))
	return router, wallet
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sentTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:                  1741948200000,
		CounterpartyName:    "Asha",
		CounterpartyAddress: "asha@okaxis",
		Amount:              300,
		DisplayAmount:       "₹300",
		CreatedAt:           createdAt,
		DisplayDate:         "14 Mar 2025, 10:30 AM",
		Direction:           entity.DirectionSent,
		SyncState:           entity.SyncPending,
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWalletHandler_GetBalance(t *testing.T) {
	router, wallet := newWalletRouter(t)
	wallet.EXPECT().GetBalanceDisplay(mock.Anything).
		Return(&usecase.BalanceView{Amount: 225925, Display: "₹2,25,925"}, nil).Once()

	rec := serve(router, http.MethodGet, "/wallet/balance", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(225925), resp.Amount)
	assert.Equal(t, "₹2,25,925", resp.Display)
}

func TestWalletHandler_Pay(t *testing.T) {
	t.Run("should parse display amounts and return the recorded payment", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().Pay(mock.Anything, usecase.PaymentRequest{Name: "Asha", Address: "asha@okaxis", Amount: 1500}).
			Return(&usecase.PaymentResult{
				Transaction: sentTransaction(),
				Balance:     usecase.BalanceView{Amount: 224425, Display: "₹2,24,425"},
			}, nil).Once()

		rec := serve(router, http.MethodPost, "/wallet/pay", `{"name":"Asha","address":"asha@okaxis","amount":"₹1,500"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.PaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "1741948200000", resp.Transaction.ID)
		assert.Equal(t, "sent", resp.Transaction.Direction)
		assert.Equal(t, "pending", resp.Transaction.SyncState)
		assert.Equal(t, "₹2,24,425", resp.Balance.Display)
	})

	t.Run("should reject a malformed amount without calling the wallet", func(t *testing.T) {
		router, wallet := newWalletRouter(t)

		rec := serve(router, http.MethodPost, "/wallet/pay", `{"name":"Asha","address":"asha@okaxis","amount":"12.50"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidAmount, decodeError(t, rec).Code)
		wallet.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything)
	})

	t.Run("should reject a body with missing fields", func(t *testing.T) {
		router, _ := newWalletRouter(t)

		rec := serve(router, http.MethodPost, "/wallet/pay", `{"name":"Asha"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeValidation, decodeError(t, rec).Code)
	})

	t.Run("should map insufficient funds to a client error", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().Pay(mock.Anything, mock.Anything).
			Return(nil, errs.NewInsufficientFundsError(5000, 700)).Once()

		rec := serve(router, http.MethodPost, "/wallet/pay", `{"name":"Asha","address":"asha@okaxis","amount":"5000"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInsufficientFunds, decodeError(t, rec).Code)
	})

	t.Run("should hide persistence failure details", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().Pay(mock.Anything, mock.Anything).
			Return(nil, errs.NewPersistenceError("put", "transactions", errors.New("disk full"))).Once()

		rec := serve(router, http.MethodPost, "/wallet/pay", `{"name":"Asha","address":"asha@okaxis","amount":"10"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, errs.CodePersistence, resp.Code)
		assert.NotContains(t, resp.Message, "disk full")
	})
}

func TestWalletHandler_BankTransfers(t *testing.T) {
	t.Run("should top up from the bank", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().TopUp(mock.Anything, int64(2500)).
			Return(&usecase.PaymentResult{Transaction: sentTransaction()}, nil).Once()

		rec := serve(router, http.MethodPost, "/wallet/topup", `{"amount":"2,500"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should withdraw to the bank", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().Withdraw(mock.Anything, int64(100)).
			Return(&usecase.PaymentResult{Transaction: sentTransaction()}, nil).Once()

		rec := serve(router, http.MethodPost, "/wallet/withdraw", `{"amount":"100"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should receive from a counterparty", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().Receive(mock.Anything, usecase.PaymentRequest{Name: "Ravi", Address: "ravi@ybl", Amount: 40}).
			Return(&usecase.PaymentResult{Transaction: sentTransaction()}, nil).Once()

		rec := serve(router, http.MethodPost, "/wallet/receive", `{"name":"Ravi","address":"ravi@ybl","amount":"40"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	t.Run("should pass the direction filter", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().GetHistory(mock.Anything, &entity.TransactionFilter{Direction: entity.DirectionSent}).
			Return([]entity.Transaction{*sentTransaction()}, nil).Once()

		rec := serve(router, http.MethodGet, "/wallet/transactions?direction=sent", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.TransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "asha@okaxis", resp[0].CounterpartyAddress)
	})

	t.Run("should list everything without a filter", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().GetHistory(mock.Anything, (*entity.TransactionFilter)(nil)).
			Return(nil, nil).Once()

		rec := serve(router, http.MethodGet, "/wallet/transactions", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should reject an unknown direction", func(t *testing.T) {
		router, _ := newWalletRouter(t)

		rec := serve(router, http.MethodGet, "/wallet/transactions?direction=sideways", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidDirection, decodeError(t, rec).Code)
	})
}

func TestWalletHandler_Contacts(t *testing.T) {
	t.Run("should list contacts", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().Contacts(mock.Anything).Return([]entity.Contact{{
			ID:                  1,
			DisplayName:         "Asha",
			CounterpartyAddress: "asha@okaxis",
			LastActivityAt:      createdAt,
			SyncState:           entity.SyncSynced,
		}}, nil).Once()

		rec := serve(router, http.MethodGet, "/wallet/contacts", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.ContactResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "1", resp[0].ID)
		assert.Equal(t, "synced", resp[0].SyncState)
	})

	t.Run("should remove a contact", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().RemoveContact(mock.Anything, int64(7)).Return(nil).Once()

		rec := serve(router, http.MethodDelete, "/wallet/contacts/7", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should treat an unknown contact id as removed", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().RemoveContact(mock.Anything, int64(404)).Return(nil).Once()

		rec := serve(router, http.MethodDelete, "/wallet/contacts/404", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should reject a non-numeric contact id", func(t *testing.T) {
		router, _ := newWalletRouter(t)

		rec := serve(router, http.MethodDelete, "/wallet/contacts/asha", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWalletHandler_Sync(t *testing.T) {
	t.Run("should report sync results", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().SyncNow(mock.Anything).Return(&usecase.SyncResult{
			Outcome:            usecase.SyncSuccess,
			LastSynced:         &createdAt,
			TransactionsSynced: 2,
		}, nil).Once()

		rec := serve(router, http.MethodPost, "/wallet/sync", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp usecase.SyncResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, usecase.SyncSuccess, resp.Outcome)
		assert.Equal(t, 2, resp.TransactionsSynced)
	})

	t.Run("should answer ok with skipped when a cycle is already running", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().SyncNow(mock.Anything).Return(&usecase.SyncResult{Skipped: true}, nil).Once()

		rec := serve(router, http.MethodPost, "/wallet/sync", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp usecase.SyncResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Skipped)
	})

	t.Run("should map mirror failures to bad gateway", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().SyncNow(mock.Anything).
			Return(nil, errs.NewSyncError("submit", errors.New("connection refused"))).Once()

		rec := serve(router, http.MethodPost, "/wallet/sync", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, errs.CodeSync, decodeError(t, rec).Code)
	})

	t.Run("should return the engine status", func(t *testing.T) {
		router, wallet := newWalletRouter(t)
		wallet.EXPECT().SyncStatus().Return(usecase.SyncStatus{State: usecase.SyncIdle, DeviceID: "device-1"}).Once()

		rec := serve(router, http.MethodGet, "/wallet/sync/status", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"state":"idle","deviceId":"device-1"}`, rec.Body.String())
	})
}
