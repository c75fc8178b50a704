package syncengine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/payledger/internal/domain/port/event"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/persistence"
	remoteport "github.com/amirhossein-jamali/payledger/internal/domain/port/remote"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"
)

// Defaults used when Config leaves a field zero
const (
	DefaultTimeout  = 10 * time.Second
	DefaultDebounce = 2 * time.Second
	jobName         = "wallet-sync"
)

// Config tunes the engine
type Config struct {
	Timeout  time.Duration // upper bound for one remote round-trip
	Debounce time.Duration // quiet period after a local change before syncing; negative disables
}

// Engine reconciles local state with the remote mirror, one cycle at a time
type Engine struct {
	ledger       usecase.LedgerUseCase
	balance      usecase.BalanceUseCase
	kv           persistence.KeyValueStore
	remote       remoteport.Mirror
	bus          eventport.Bus
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validate     *validator.Validate
	cfg          Config

	inFlight atomic.Bool

	mu          sync.RWMutex // guards the status fields
	state       usecase.SyncState
	lastOutcome usecase.SyncState
	lastSynced  *time.Time
	lastErr     string
	deviceID    string

	debounceMu  sync.Mutex
	timer       *time.Timer
	baseCtx     context.Context
	unsubscribe func()
}

// NewEngine creates an idle Engine
func NewEngine(
	ledger usecase.LedgerUseCase,
	balance usecase.BalanceUseCase,
	kv persistence.KeyValueStore,
	remote remoteport.Mirror,
	bus eventport.Bus,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Engine {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}

	return &Engine{
		ledger:       ledger,
		balance:      balance,
		kv:           kv,
		remote:       remote,
		bus:          bus,
		timeProvider: timeProvider,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
		state:        usecase.SyncIdle,
		baseCtx:      context.Background(),
	}
}

// Start loads the device id and last sync time, then subscribes to local change signals
func (e *Engine) Start(ctx context.Context) error {
	if _, err := e.EnsureDeviceID(ctx); err != nil {
		return err
	}

	raw, ok, err := e.kv.Get(ctx, persistence.KeyLastSyncTime)
	if err != nil {
		return err
	}
	if ok && raw != "" {
		last, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return errs.NewPersistenceError("decode", persistence.KeyLastSyncTime, err)
		}
		e.mu.Lock()
		e.lastSynced = &last
		e.mu.Unlock()
	}

	e.debounceMu.Lock()
	e.baseCtx = context.WithoutCancel(ctx)
	if e.bus != nil && e.cfg.Debounce > 0 && e.unsubscribe == nil {
		e.unsubscribe = e.bus.Subscribe(e.onChange,
			eventport.TopicTransactionsChanged,
			eventport.TopicContactsChanged,
			eventport.TopicBalanceChanged,
		)
	}
	e.debounceMu.Unlock()

	e.logger.Info("Sync engine started", map[string]any{
		"deviceId": e.DeviceID(),
		"timeout":  e.cfg.Timeout.String(),
		"debounce": e.cfg.Debounce.String(),
	})
	return nil
}

// Stop removes the change subscription and cancels a pending debounced sync
func (e *Engine) Stop() {
	e.debounceMu.Lock()
	defer e.debounceMu.Unlock()

	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// EnsureDeviceID returns the persisted device id, generating it on first use
func (e *Engine) EnsureDeviceID(ctx context.Context) (string, error) {
	if id := e.DeviceID(); id != "" {
		return id, nil
	}

	id, ok, err := e.kv.Get(ctx, persistence.KeyDeviceID)
	if err != nil {
		return "", err
	}
	if !ok || id == "" {
		id = uuid.NewString()
		if err := e.kv.Put(ctx, map[string]string{persistence.KeyDeviceID: id}); err != nil {
			return "", err
		}
		e.logger.Info("Generated device id", map[string]any{"deviceId": id})
	}

	e.mu.Lock()
	e.deviceID = id
	e.mu.Unlock()
	return id, nil
}

// DeviceID returns the cached device id, empty before EnsureDeviceID succeeds
func (e *Engine) DeviceID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.deviceID
}

// Status returns the current engine state
func (e *Engine) Status() usecase.SyncStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()

	status := usecase.SyncStatus{
		State:       e.state,
		LastOutcome: e.lastOutcome,
		LastError:   e.lastErr,
		DeviceID:    e.deviceID,
	}
	if e.lastSynced != nil {
		last := *e.lastSynced
		status.LastSynced = &last
	}
	return status
}

// SyncNow runs one cycle. A call made while a cycle is running returns a skipped result
// without contacting the remote.
func (e *Engine) SyncNow(ctx context.Context) (*usecase.SyncResult, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		e.logger.Debug("Sync already in progress, request skipped", nil)
		return &usecase.SyncResult{Skipped: true, Outcome: usecase.SyncSyncing}, nil
	}
	defer e.inFlight.Store(false)

	e.setState(usecase.SyncSyncing)
	started := e.timeProvider.Now()

	result, err := e.runCycle(ctx)
	if err != nil {
		e.finish(usecase.SyncError, nil, err)
		e.logger.Error("Sync failed", map[string]any{
			"error":    err.Error(),
			"duration": e.timeProvider.Since(started).String(),
		})
		return nil, err
	}

	e.finish(usecase.SyncSuccess, result.LastSynced, nil)
	e.publish(eventport.TopicSyncCompleted)

	e.logger.Info("Sync completed", map[string]any{
		"transactionsSynced": result.TransactionsSynced,
		"contactsSynced":     result.ContactsSynced,
		"balanceCorrected":   result.BalanceCorrected,
		"duration":           e.timeProvider.Since(started).String(),
	})
	return result, nil
}

func (e *Engine) runCycle(ctx context.Context) (*usecase.SyncResult, error) {
	deviceID, err := e.EnsureDeviceID(ctx)
	if err != nil {
		return nil, errs.NewSyncError("snapshot", err)
	}

	snap := e.balance.Snapshot()
	req := &entity.SyncRequest{
		Transactions: e.ledger.UnsyncedTransactions(),
		Contacts:     e.ledger.UnsyncedContacts(),
		Balance:      snap.Amount,
		DeviceID:     deviceID,
		LastSynced:   e.Status().LastSynced,
	}

	resp, err := e.submit(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := e.validate.Struct(resp); err != nil {
		return nil, errs.NewSyncError("validate", fmt.Errorf("%w: %v", errs.ErrInvalidSyncPayload, err))
	}

	txnIDs := echoed(idsOfTransactions(req.Transactions), resp.TransactionIDs())
	txnsSynced, err := e.ledger.MarkSyncedIDs(ctx, entity.KindTransactions, txnIDs)
	if err != nil {
		return nil, errs.NewSyncError("apply", err)
	}

	contactsSynced, err := e.ledger.MarkContactsSynced(ctx, echoedContacts(req.Contacts, resp.ContactIDs()))
	if err != nil {
		return nil, errs.NewSyncError("apply", err)
	}

	corrected := false
	if resp.Balance != nil {
		corrected, err = e.balance.SetBalanceIfVersion(ctx, *resp.Balance, snap.Version)
		if err != nil {
			return nil, errs.NewSyncError("apply", err)
		}
	}

	syncedAt := e.timeProvider.Now()
	if resp.LastSynced != nil && !resp.LastSynced.IsZero() {
		syncedAt = *resp.LastSynced
	}
	if err := e.kv.Put(ctx, map[string]string{
		persistence.KeyLastSyncTime: syncedAt.Format(time.RFC3339Nano),
	}); err != nil {
		return nil, errs.NewSyncError("apply", err)
	}

	return &usecase.SyncResult{
		Outcome:            usecase.SyncSuccess,
		LastSynced:         &syncedAt,
		TransactionsSynced: txnsSynced,
		ContactsSynced:     contactsSynced,
		BalanceCorrected:   corrected,
	}, nil
}

// submit calls the remote under the configured timeout, even if the remote ignores ctx
func (e *Engine) submit(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
	callCtx, cancel := e.timeProvider.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	type outcome struct {
		resp *entity.SyncResponse
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		resp, err := e.remote.Submit(callCtx, req)
		done <- outcome{resp: resp, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			if errors.Is(out.err, context.DeadlineExceeded) {
				return nil, errs.NewSyncError("submit", fmt.Errorf("%w: %v", errs.ErrSyncTimeout, out.err))
			}
			return nil, errs.NewSyncError("submit", out.err)
		}
		if out.resp == nil {
			return nil, errs.NewSyncError("validate", fmt.Errorf("%w: empty response", errs.ErrInvalidSyncPayload))
		}
		return out.resp, nil
	case <-callCtx.Done():
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, errs.NewSyncError("submit", fmt.Errorf("%w after %s", errs.ErrSyncTimeout, e.cfg.Timeout))
		}
		return nil, errs.NewSyncError("submit", callCtx.Err())
	}
}

func (e *Engine) setState(state usecase.SyncState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = state
}

func (e *Engine) finish(outcome usecase.SyncState, syncedAt *time.Time, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = usecase.SyncIdle
	e.lastOutcome = outcome
	if err != nil {
		e.lastErr = err.Error()
		return
	}
	e.lastErr = ""
	if syncedAt != nil {
		last := *syncedAt
		e.lastSynced = &last
	}
}

func (e *Engine) publish(topic eventport.Topic) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(eventport.Event{
		Topic:      topic,
		Origin:     eventport.OriginSync,
		OccurredAt: e.timeProvider.Now(),
	})
}

// echoed returns the ids present in both the snapshot and the response
func echoed(sent, returned []int64) []int64 {
	if len(sent) == 0 || len(returned) == 0 {
		return nil
	}

	inSnapshot := make(map[int64]struct{}, len(sent))
	for _, id := range sent {
		inSnapshot[id] = struct{}{}
	}

	out := make([]int64, 0, len(returned))
	for _, id := range returned {
		if _, ok := inSnapshot[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func idsOfTransactions(txns []entity.Transaction) []int64 {
	ids := make([]int64, 0, len(txns))
	for i := range txns {
		ids = append(ids, txns[i].ID)
	}
	return ids
}

// echoedContacts returns the sent contacts whose ids the remote acknowledged
func echoedContacts(sent []entity.Contact, returned []int64) []entity.Contact {
	if len(sent) == 0 || len(returned) == 0 {
		return nil
	}

	acked := make(map[int64]struct{}, len(returned))
	for _, id := range returned {
		acked[id] = struct{}{}
	}

	out := make([]entity.Contact, 0, len(returned))
	for i := range sent {
		if _, ok := acked[sent[i].ID]; ok {
			out = append(out, sent[i])
		}
	}
	return out
}
