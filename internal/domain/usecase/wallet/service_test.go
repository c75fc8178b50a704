package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/balance"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/kvstore"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/payledger/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/payledger/mocks/port/usecase"
)

var fixedTime = time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC)

// newWallet wires a Service over real stores backed by memory
func newWallet(t *testing.T, seed int64) (*Service, *ledger.Store, *balance.Register) {
	ctx := context.Background()
	noop := logger.NewNoopLogger()
	kv := kvstore.NewMemoryStore()
	bus := events.NewBus(noop)

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()

	store, err := ledger.Open(ctx, kv, bus, clock, noop)
	require.NoError(t, err)
	register, err := balance.Open(ctx, kv, bus, clock, noop, seed)
	require.NoError(t, err)

	syncer := usecasemocks.NewMockSyncUseCase(t)
	return NewService(store, register, syncer, noop, BankAccount{}), store, register
}

func TestService_PayScenario(t *testing.T) {
	ctx := context.Background()
	svc, store, register := newWallet(t, 1000)

	result, err := svc.Pay(ctx, usecase.PaymentRequest{Name: "Alice", Address: "alice@bank", Amount: 300})

	require.NoError(t, err)
	assert.Equal(t, int64(700), register.GetBalance())
	assert.Equal(t, usecase.BalanceView{Amount: 700, Display: "₹700"}, result.Balance)
	assert.Equal(t, entity.DirectionSent, result.Transaction.Direction)
	assert.Equal(t, int64(300), result.Transaction.Amount)
	assert.Equal(t, "alice@bank", result.Transaction.CounterpartyAddress)

	txns := store.ListTransactions(nil)
	require.Len(t, txns, 1)
	contacts := store.ListContacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Alice", contacts[0].DisplayName)
	assert.Equal(t, "alice@bank", contacts[0].CounterpartyAddress)

	_, err = svc.Pay(ctx, usecase.PaymentRequest{Name: "Alice", Address: "alice@bank", Amount: 5000})

	assert.True(t, errs.IsInsufficientFundsError(err))
	assert.Equal(t, int64(700), register.GetBalance())
	assert.Len(t, store.ListTransactions(nil), 1)
}

func TestService_TopUpScenario(t *testing.T) {
	ctx := context.Background()
	svc, store, register := newWallet(t, 0)

	result, err := svc.TopUp(ctx, 500)

	require.NoError(t, err)
	assert.Equal(t, int64(500), register.GetBalance())
	assert.Equal(t, entity.DirectionReceived, result.Transaction.Direction)
	assert.Equal(t, int64(500), result.Transaction.Amount)
	assert.Equal(t, DefaultBankAddress, result.Transaction.CounterpartyAddress)

	txns := store.ListTransactions(&entity.TransactionFilter{Direction: entity.DirectionReceived})
	require.Len(t, txns, 1)
}

func TestService_Withdraw(t *testing.T) {
	ctx := context.Background()
	svc, _, register := newWallet(t, 1000)

	result, err := svc.Withdraw(ctx, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(600), register.GetBalance())
	assert.Equal(t, DefaultBankName, result.Transaction.CounterpartyName)

	_, err = svc.Withdraw(ctx, 601)
	assert.True(t, errs.IsInsufficientFundsError(err))
}

func TestService_Receive(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newWallet(t, 0)

	result, err := svc.Receive(ctx, usecase.PaymentRequest{Name: "Priya Mehta", Address: "priya@okicici", Amount: 250})

	require.NoError(t, err)
	assert.Equal(t, int64(250), result.Balance.Amount)
	assert.Equal(t, "priya@okicici", store.ListContacts()[0].CounterpartyAddress)
}

func TestService_ValidatesBeforeTouchingBalance(t *testing.T) {
	ctx := context.Background()
	mockLedger := usecasemocks.NewMockLedgerUseCase(t)
	mockBalance := usecasemocks.NewMockBalanceUseCase(t)
	svc := NewService(mockLedger, mockBalance, usecasemocks.NewMockSyncUseCase(t), logger.NewNoopLogger(), BankAccount{})

	testCases := []struct {
		name     string
		req      usecase.PaymentRequest
		expected error
	}{
		{"malformed address", usecase.PaymentRequest{Name: "Bob", Address: "bob", Amount: 100}, errs.ErrInvalidAddress},
		{"empty name", usecase.PaymentRequest{Name: " ", Address: "bob@bank", Amount: 100}, errs.ErrInvalidName},
		{"zero amount", usecase.PaymentRequest{Name: "Bob", Address: "bob@bank", Amount: 0}, errs.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Pay(ctx, tc.req)
			assert.ErrorIs(t, err, tc.expected)

			_, err = svc.Receive(ctx, tc.req)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	_, err := svc.TopUp(ctx, -10)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	mockBalance.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything)
	mockBalance.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything)
	mockLedger.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CompensatesWhenLedgerFails(t *testing.T) {
	ctx := context.Background()
	appendErr := errs.NewPersistenceError("write", "", errors.New("disk full"))

	t.Run("pay reverses debit", func(t *testing.T) {
		// Arrange
		mockLedger := usecasemocks.NewMockLedgerUseCase(t)
		mockBalance := usecasemocks.NewMockBalanceUseCase(t)

		mockBalance.EXPECT().Debit(ctx, int64(300)).Return(int64(700), nil).Once()
		mockLedger.EXPECT().AppendTransaction(ctx, "Bob", "bob@bank", int64(300), entity.DirectionSent).
			Return(nil, appendErr).Once()
		mockBalance.EXPECT().Credit(mock.Anything, int64(300)).Return(int64(1000), nil).Once()

		svc := NewService(mockLedger, mockBalance, usecasemocks.NewMockSyncUseCase(t), logger.NewNoopLogger(), BankAccount{})

		// Act
		result, err := svc.Pay(ctx, usecase.PaymentRequest{Name: "Bob", Address: "bob@bank", Amount: 300})

		// Assert
		assert.Nil(t, result)
		assert.True(t, errs.IsPersistenceError(err))
	})

	t.Run("top-up reverses credit", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerUseCase(t)
		mockBalance := usecasemocks.NewMockBalanceUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockBalance.EXPECT().Credit(ctx, int64(500)).Return(int64(500), nil).Once()
		mockLedger.EXPECT().AppendTransaction(ctx, "HDFC", "me@hdfc", int64(500), entity.DirectionReceived).
			Return(nil, appendErr).Once()
		mockBalance.EXPECT().Debit(mock.Anything, int64(500)).Return(int64(0), nil).Once()
		mockLogger.EXPECT().Warn("Balance change reversed after ledger failure", mock.Anything).Return().Once()

		svc := NewService(mockLedger, mockBalance, usecasemocks.NewMockSyncUseCase(t), mockLogger,
			BankAccount{Name: "HDFC", Address: "me@hdfc"})

		_, err := svc.TopUp(ctx, 500)

		assert.ErrorIs(t, err, appendErr)
	})

	t.Run("logs when the reversal fails too", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerUseCase(t)
		mockBalance := usecasemocks.NewMockBalanceUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockBalance.EXPECT().Debit(ctx, int64(300)).Return(int64(700), nil).Once()
		mockLedger.EXPECT().AppendTransaction(ctx, "Bob", "bob@bank", int64(300), entity.DirectionSent).
			Return(nil, appendErr).Once()
		mockBalance.EXPECT().Credit(mock.Anything, int64(300)).Return(int64(0), appendErr).Once()
		mockLogger.EXPECT().Error("Failed to reverse balance change", mock.Anything).Return().Once()

		svc := NewService(mockLedger, mockBalance, usecasemocks.NewMockSyncUseCase(t), mockLogger, BankAccount{})

		_, err := svc.Pay(ctx, usecase.PaymentRequest{Name: "Bob", Address: "bob@bank", Amount: 300})

		assert.Error(t, err)
	})
}

func TestService_Queries(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWallet(t, 225925)

	view, err := svc.GetBalanceDisplay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "₹2,25,925", view.Display)

	_, err = svc.Pay(ctx, usecase.PaymentRequest{Name: "Rahul Sharma", Address: "rahul@okaxis", Amount: 100})
	require.NoError(t, err)
	_, err = svc.TopUp(ctx, 100)
	require.NoError(t, err)

	history, err := svc.GetHistory(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	sent, err := svc.GetHistory(ctx, &entity.TransactionFilter{Direction: entity.DirectionSent})
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	_, err = svc.GetHistory(ctx, &entity.TransactionFilter{Direction: "refund"})
	assert.ErrorIs(t, err, errs.ErrInvalidDirection)

	contacts, err := svc.Contacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	require.NoError(t, svc.RemoveContact(ctx, contacts[0].ID))
	contacts, err = svc.Contacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestService_SyncDelegates(t *testing.T) {
	ctx := context.Background()
	syncer := usecasemocks.NewMockSyncUseCase(t)
	syncer.EXPECT().SyncNow(ctx).Return(&usecase.SyncResult{Skipped: true}, nil).Once()
	syncer.EXPECT().Status().Return(usecase.SyncStatus{State: usecase.SyncIdle}).Once()

	svc := NewService(usecasemocks.NewMockLedgerUseCase(t), usecasemocks.NewMockBalanceUseCase(t), syncer,
		logger.NewNoopLogger(), BankAccount{})

	result, err := svc.SyncNow(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, usecase.SyncIdle, svc.SyncStatus().State)
}
