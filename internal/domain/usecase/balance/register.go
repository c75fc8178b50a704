package balance

import (
	"context"
	"strconv"
	"sync"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/payledger/internal/domain/port/event"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/persistence"
)

// Register holds the authoritative balance. Every mutation computes the new value,
// persists it, and only then replaces the in-memory copy.
type Register struct {
	kv           persistence.KeyValueStore
	bus          eventport.Publisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu      sync.RWMutex
	current *entity.Balance
}

// Open creates a Register and loads the persisted balance, falling back to seed
func Open(
	ctx context.Context,
	kv persistence.KeyValueStore,
	bus eventport.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	seed int64,
) (*Register, error) {
	r := &Register{
		kv:           kv,
		bus:          bus,
		timeProvider: timeProvider,
		logger:       logger,
	}

	current, err := r.load(ctx, seed)
	if err != nil {
		return nil, err
	}
	r.current = current

	logger.Info("Balance loaded", map[string]any{
		"balance": current.Amount(),
		"version": current.Version,
	})
	return r, nil
}

func (r *Register) load(ctx context.Context, seed int64) (*entity.Balance, error) {
	amount := seed
	raw, ok, err := r.kv.Get(ctx, persistence.KeyBalance)
	if err != nil {
		return nil, err
	}
	if ok {
		amount, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errs.NewPersistenceError("decode", persistence.KeyBalance, err)
		}
	}

	var version uint64
	raw, ok, err = r.kv.Get(ctx, persistence.KeyBalanceVersion)
	if err != nil {
		return nil, err
	}
	if ok {
		version, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, errs.NewPersistenceError("decode", persistence.KeyBalanceVersion, err)
		}
	}

	current, err := entity.NewBalance(amount, version, r.timeProvider.Now())
	if err != nil {
		return nil, errs.NewPersistenceError("decode", persistence.KeyBalance, err)
	}
	return current, nil
}

// GetBalance returns the current amount
func (r *Register) GetBalance() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Amount()
}

// Snapshot returns the current amount and version
func (r *Register) Snapshot() entity.BalanceSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Snapshot()
}

// Credit increases the balance by a positive amount
func (r *Register) Credit(ctx context.Context, amount int64) (int64, error) {
	next, err := r.apply(ctx, eventport.OriginLocal, func(current *entity.Balance) (*entity.Balance, error) {
		return current.Credited(amount, r.timeProvider)
	})
	if err != nil {
		return 0, err
	}
	return next.Amount(), nil
}

// Debit decreases the balance by a positive amount
// Returns InsufficientFundsError if the balance does not cover the amount
func (r *Register) Debit(ctx context.Context, amount int64) (int64, error) {
	next, err := r.apply(ctx, eventport.OriginLocal, func(current *entity.Balance) (*entity.Balance, error) {
		return current.Debited(amount, r.timeProvider)
	})
	if err != nil {
		if errs.IsInsufficientFundsError(err) {
			r.logger.Warn("Debit rejected", map[string]any{
				"amount":  amount,
				"balance": r.GetBalance(),
			})
		}
		return 0, err
	}
	return next.Amount(), nil
}

// SetBalance overrides the balance. Setting the current value again is a no-op.
func (r *Register) SetBalance(ctx context.Context, amount int64) error {
	_, err := r.apply(ctx, eventport.OriginLocal, func(current *entity.Balance) (*entity.Balance, error) {
		if amount == current.Amount() {
			return nil, nil
		}
		return current.Overridden(amount, r.timeProvider)
	})
	return err
}

// SetBalanceIfVersion overrides the balance only if nothing changed it since version was read.
// Reports whether a new value was written.
func (r *Register) SetBalanceIfVersion(ctx context.Context, amount int64, version uint64) (bool, error) {
	next, err := r.apply(ctx, eventport.OriginSync, func(current *entity.Balance) (*entity.Balance, error) {
		if current.Version != version {
			r.logger.Warn("Balance changed since snapshot, correction skipped", map[string]any{
				"snapshotVersion": version,
				"currentVersion":  current.Version,
				"correction":      amount,
			})
			return nil, nil
		}
		if amount == current.Amount() {
			return nil, nil
		}
		return current.Overridden(amount, r.timeProvider)
	})
	if err != nil {
		return false, err
	}
	return next != nil, nil
}

// apply runs mutate under the write lock. A nil balance from mutate means nothing to do.
func (r *Register) apply(
	ctx context.Context,
	origin eventport.Origin,
	mutate func(current *entity.Balance) (*entity.Balance, error),
) (*entity.Balance, error) {
	next, err := r.applyLocked(ctx, mutate)
	if err != nil || next == nil {
		return nil, err
	}

	if r.bus != nil {
		r.bus.Publish(eventport.Event{
			Topic:      eventport.TopicBalanceChanged,
			Origin:     origin,
			OccurredAt: next.UpdatedAt,
		})
	}

	r.logger.Debug("Balance updated", map[string]any{
		"balance": next.Amount(),
		"version": next.Version,
		"origin":  origin,
	})
	return next, nil
}

func (r *Register) applyLocked(
	ctx context.Context,
	mutate func(current *entity.Balance) (*entity.Balance, error),
) (*entity.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := mutate(r.current)
	if err != nil || next == nil {
		return nil, err
	}

	if err := r.kv.Put(ctx, map[string]string{
		persistence.KeyBalance:        strconv.FormatInt(next.Amount(), 10),
		persistence.KeyBalanceVersion: strconv.FormatUint(next.Version, 10),
	}); err != nil {
		r.logger.Error("Failed to persist balance", map[string]any{
			"balance": next.Amount(),
			"error":   err.Error(),
		})
		return nil, err
	}

	r.current = next
	return next, nil
}
