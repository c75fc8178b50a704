package syncengine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	eventport "github.com/amirhossein-jamali/payledger/internal/domain/port/event"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/balance"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/kvstore"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/payledger/mocks/port/core"
	remotemocks "github.com/amirhossein-jamali/payledger/mocks/port/remote"
)

var fixedTime = time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC)

type fixture struct {
	kv      *kvstore.MemoryStore
	bus     *events.Bus
	ledger  *ledger.Store
	balance *balance.Register
	remote  *remotemocks.MockMirror
	engine  *Engine
}

func newClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(time.Millisecond).Maybe()
	clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d)
		}).Maybe()
	return clock
}

func newFixture(t *testing.T, cfg Config) *fixture {
	ctx := context.Background()
	noop := logger.NewNoopLogger()
	clock := newClock(t)

	f := &fixture{
		kv:     kvstore.NewMemoryStore(),
		bus:    events.NewBus(noop),
		remote: remotemocks.NewMockMirror(t),
	}

	var err error
	f.ledger, err = ledger.Open(ctx, f.kv, f.bus, clock, noop)
	require.NoError(t, err)
	f.balance, err = balance.Open(ctx, f.kv, f.bus, clock, noop, 1000)
	require.NoError(t, err)

	f.engine = NewEngine(f.ledger, f.balance, f.kv, f.remote, f.bus, clock, noop, cfg)
	return f
}

// echo answers with exactly what was submitted
func echo(_ context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
	amount := req.Balance
	last := fixedTime.Add(time.Hour)
	return &entity.SyncResponse{
		Transactions: req.Transactions,
		Contacts:     req.Contacts,
		Balance:      &amount,
		LastSynced:   &last,
	}, nil
}

func TestEngine_SyncNow(t *testing.T) {
	ctx := context.Background()

	t.Run("should mark submitted records synced and persist last sync time", func(t *testing.T) {
		// Arrange
		f := newFixture(t, Config{Debounce: -1})
		_, err := f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 300, entity.DirectionSent)
		require.NoError(t, err)

		var submitted *entity.SyncRequest
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
				submitted = req
				return echo(ctx, req)
			}).Once()

		// Act
		result, err := f.engine.SyncNow(ctx)

		// Assert
		require.NoError(t, err)
		assert.False(t, result.Skipped)
		assert.Equal(t, usecase.SyncSuccess, result.Outcome)
		assert.Equal(t, 1, result.TransactionsSynced)
		assert.Equal(t, 1, result.ContactsSynced)
		assert.False(t, result.BalanceCorrected)

		require.NotNil(t, submitted)
		assert.Len(t, submitted.Transactions, 1)
		assert.Equal(t, int64(1000), submitted.Balance)
		assert.NotEmpty(t, submitted.DeviceID)
		assert.Nil(t, submitted.LastSynced)

		assert.Empty(t, f.ledger.UnsyncedTransactions())
		assert.Empty(t, f.ledger.UnsyncedContacts())

		raw, ok, err := f.kv.Get(ctx, persistence.KeyLastSyncTime)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, fixedTime.Add(time.Hour).Format(time.RFC3339Nano), raw)

		status := f.engine.Status()
		assert.Equal(t, usecase.SyncIdle, status.State)
		assert.Equal(t, usecase.SyncSuccess, status.LastOutcome)
		require.NotNil(t, status.LastSynced)
		assert.True(t, fixedTime.Add(time.Hour).Equal(*status.LastSynced))
	})

	t.Run("should be idempotent when replayed", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		_, err := f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 300, entity.DirectionSent)
		require.NoError(t, err)
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(echo).Times(2)

		_, err = f.engine.SyncNow(ctx)
		require.NoError(t, err)
		beforeTxns := f.ledger.ListTransactions(nil)
		beforeContacts := f.ledger.ListContacts()
		beforeBalance := f.balance.GetBalance()

		second, err := f.engine.SyncNow(ctx)

		require.NoError(t, err)
		assert.Zero(t, second.TransactionsSynced)
		assert.Equal(t, beforeTxns, f.ledger.ListTransactions(nil))
		assert.Equal(t, beforeContacts, f.ledger.ListContacts())
		assert.Equal(t, beforeBalance, f.balance.GetBalance())
	})

	t.Run("should apply balance correction when nothing changed locally", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		corrected := int64(800)
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(&entity.SyncResponse{Balance: &corrected}, nil).Once()

		result, err := f.engine.SyncNow(ctx)

		require.NoError(t, err)
		assert.True(t, result.BalanceCorrected)
		assert.Equal(t, int64(800), f.balance.GetBalance())
		assert.True(t, fixedTime.Equal(*result.LastSynced), "falls back to local clock")
	})

	t.Run("should stamp the local clock when the mirror omits lastSynced", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		_, err := f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 300, entity.DirectionSent)
		require.NoError(t, err)
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
				resp, err := echo(ctx, req)
				resp.LastSynced = nil
				return resp, err
			}).Once()

		result, err := f.engine.SyncNow(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.TransactionsSynced)
		require.NotNil(t, result.LastSynced)
		assert.True(t, fixedTime.Equal(*result.LastSynced))

		raw, ok, err := f.kv.Get(ctx, persistence.KeyLastSyncTime)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, fixedTime.Format(time.RFC3339Nano), raw)
	})

	t.Run("should not overwrite a balance mutated during the round-trip", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		var appended *entity.Transaction
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
				// a payment lands while the mirror is answering
				_, err := f.balance.Debit(ctx, 300)
				assert.NoError(t, err)
				appended, err = f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 300, entity.DirectionSent)
				assert.NoError(t, err)
				return echo(ctx, req)
			}).Once()

		result, err := f.engine.SyncNow(ctx)

		require.NoError(t, err)
		assert.False(t, result.BalanceCorrected)
		assert.Equal(t, int64(700), f.balance.GetBalance())

		pending := f.ledger.UnsyncedTransactions()
		require.Len(t, pending, 1, "records appended mid-cycle stay pending")
		require.NotNil(t, appended)
		assert.Equal(t, appended.ID, pending[0].ID)
	})

	t.Run("should keep a contact pending when it is touched during the round-trip", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		_, err := f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 300, entity.DirectionSent)
		require.NoError(t, err)

		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
				// Bob is paid again after the snapshot was taken
				_, err := f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 50, entity.DirectionSent)
				assert.NoError(t, err)
				return echo(ctx, req)
			}).Once()

		result, err := f.engine.SyncNow(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.TransactionsSynced)
		assert.Zero(t, result.ContactsSynced)

		contacts := f.ledger.ListContacts()
		require.Len(t, contacts, 1)
		assert.Equal(t, entity.SyncPending, contacts[0].SyncState)
		assert.Len(t, f.ledger.UnsyncedContacts(), 1)
		assert.Len(t, f.ledger.UnsyncedTransactions(), 1)

		// the next cycle carries the newer copy and settles it
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(echo).Once()
		result, err = f.engine.SyncNow(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.ContactsSynced)
		assert.Empty(t, f.ledger.UnsyncedContacts())
		assert.Empty(t, f.ledger.UnsyncedTransactions())
	})

	t.Run("should fail without mutating state when remote errors", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		_, err := f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 300, entity.DirectionSent)
		require.NoError(t, err)
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		result, err := f.engine.SyncNow(ctx)

		assert.Nil(t, result)
		assert.True(t, errs.IsSyncError(err))
		assert.Len(t, f.ledger.UnsyncedTransactions(), 1)
		assert.Equal(t, int64(1000), f.balance.GetBalance())
		_, ok, _ := f.kv.Get(ctx, persistence.KeyLastSyncTime)
		assert.False(t, ok)

		status := f.engine.Status()
		assert.Equal(t, usecase.SyncIdle, status.State)
		assert.Equal(t, usecase.SyncError, status.LastOutcome)
		assert.Contains(t, status.LastError, "connection refused")
		assert.Nil(t, status.LastSynced)
	})

	t.Run("should reject a malformed response", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		negative := int64(-5)
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(&entity.SyncResponse{Balance: &negative}, nil).Once()

		_, err := f.engine.SyncNow(ctx)

		assert.ErrorIs(t, err, errs.ErrInvalidSyncPayload)
		assert.Equal(t, int64(1000), f.balance.GetBalance())
	})

	t.Run("should reject an empty response", func(t *testing.T) {
		f := newFixture(t, Config{Debounce: -1})
		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, nil).Once()

		_, err := f.engine.SyncNow(ctx)

		assert.ErrorIs(t, err, errs.ErrInvalidSyncPayload)
	})

	t.Run("should time out a remote that never answers", func(t *testing.T) {
		f := newFixture(t, Config{Timeout: 20 * time.Millisecond, Debounce: -1})
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, *entity.SyncRequest) (*entity.SyncResponse, error) {
				<-release
				return nil, nil
			}).Once()

		_, err := f.engine.SyncNow(ctx)

		assert.ErrorIs(t, err, errs.ErrSyncTimeout)
		assert.Equal(t, usecase.SyncError, f.engine.Status().LastOutcome)
	})
}

func TestEngine_SingleFlight(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{Debounce: -1})

	entered := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
			close(entered)
			<-release
			return echo(ctx, req)
		}).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var first *usecase.SyncResult
	go func() {
		defer wg.Done()
		first, _ = f.engine.SyncNow(ctx)
	}()

	<-entered
	assert.Equal(t, usecase.SyncSyncing, f.engine.Status().State)

	second, err := f.engine.SyncNow(ctx)
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	close(release)
	wg.Wait()

	require.NotNil(t, first)
	assert.False(t, first.Skipped)
	f.remote.AssertNumberOfCalls(t, "Submit", 1)
}

func TestEngine_DeviceID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{Debounce: -1})

	id, err := f.engine.EnsureDeviceID(ctx)
	require.NoError(t, err)
	assert.Len(t, id, 36)

	again, err := f.engine.EnsureDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	other := NewEngine(f.ledger, f.balance, f.kv, f.remote, f.bus, newClock(t), logger.NewNoopLogger(), Config{})
	reloaded, err := other.EnsureDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, reloaded, "device id survives restarts")
}

func TestEngine_StartRestoresLastSynced(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{Debounce: -1})
	last := fixedTime.Add(-time.Hour)
	require.NoError(t, f.kv.Put(ctx, map[string]string{persistence.KeyLastSyncTime: last.Format(time.RFC3339Nano)}))

	require.NoError(t, f.engine.Start(ctx))
	defer f.engine.Stop()

	status := f.engine.Status()
	require.NotNil(t, status.LastSynced)
	assert.True(t, last.Equal(*status.LastSynced))
	assert.NotEmpty(t, status.DeviceID)
}

func TestEngine_DebouncedTrigger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{Debounce: 30 * time.Millisecond})

	synced := make(chan struct{}, 1)
	f.remote.EXPECT().Submit(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
			synced <- struct{}{}
			return echo(ctx, req)
		}).Once()

	require.NoError(t, f.engine.Start(ctx))
	defer f.engine.Stop()

	// bursts collapse into one cycle
	for i := 0; i < 3; i++ {
		_, err := f.ledger.AppendTransaction(ctx, "Bob", "bob@bank", 10, entity.DirectionSent)
		require.NoError(t, err)
	}
	assert.True(t, f.engine.Pending())

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced sync did not run")
	}

	assert.Eventually(t, func() bool {
		return f.engine.Status().LastOutcome == usecase.SyncSuccess
	}, time.Second, 5*time.Millisecond)

	// the engine's own mark-synced writes must not schedule another cycle
	assert.False(t, f.engine.Pending())
}

func TestEngine_IgnoresSyncOriginEvents(t *testing.T) {
	f := newFixture(t, Config{Debounce: time.Hour})
	require.NoError(t, f.engine.Start(context.Background()))
	defer f.engine.Stop()

	f.bus.Publish(eventport.Event{Topic: eventport.TopicBalanceChanged, Origin: eventport.OriginSync})
	assert.False(t, f.engine.Pending())

	f.bus.Publish(eventport.Event{Topic: eventport.TopicBalanceChanged, Origin: eventport.OriginLocal})
	assert.True(t, f.engine.Pending())
}

func TestEngine_Job(t *testing.T) {
	f := newFixture(t, Config{Debounce: -1})
	f.remote.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(echo).Once()

	assert.Equal(t, "wallet-sync", f.engine.Name())
	assert.NoError(t, f.engine.Run())
}
