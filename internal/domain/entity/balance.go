package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
)

// DefaultBalance is the seed used when the store holds no balance yet
const DefaultBalance int64 = 225925

// Balance is the wallet's spendable amount in whole currency units
type Balance struct {
	amount    int64     // never negative (private)
	Version   uint64    // incremented on every applied mutation
	UpdatedAt time.Time // when the balance last changed
}

// NewBalance creates a balance from a stored amount and version
func NewBalance(amount int64, version uint64, updatedAt time.Time) (*Balance, error) {
	if amount < 0 {
		return nil, errs.NewValidationError("balance", amount, errs.ErrNegativeBalance)
	}

	return &Balance{
		amount:    amount,
		Version:   version,
		UpdatedAt: updatedAt,
	}, nil
}

// Amount returns the current amount
func (b *Balance) Amount() int64 {
	return b.amount
}

// Display returns the amount formatted for the UI
func (b *Balance) Display() string {
	return FormatAmount(b.amount)
}

// CanDebit checks if the balance covers the amount
func (b *Balance) CanDebit(amount int64) bool {
	return b.amount >= amount
}

// Credited returns a copy of the balance increased by amount.
// The receiver is left untouched so callers can persist before swapping.
func (b *Balance) Credited(amount int64, timeProvider coreport.TimeProvider) (*Balance, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if b.amount > math.MaxInt64-amount {
		return nil, errs.NewValidationError("amount", amount, errs.ErrAmountOverflow)
	}

	return b.next(b.amount+amount, timeProvider), nil
}

// Debited returns a copy of the balance decreased by amount
// Returns InsufficientFundsError if the balance does not cover the amount
func (b *Balance) Debited(amount int64, timeProvider coreport.TimeProvider) (*Balance, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if !b.CanDebit(amount) {
		return nil, errs.NewInsufficientFundsError(amount, b.amount)
	}

	return b.next(b.amount-amount, timeProvider), nil
}

// Overridden returns a copy of the balance with the amount replaced
func (b *Balance) Overridden(amount int64, timeProvider coreport.TimeProvider) (*Balance, error) {
	if amount < 0 {
		return nil, errs.NewValidationError("balance", amount, errs.ErrNegativeBalance)
	}

	return b.next(amount, timeProvider), nil
}

func (b *Balance) next(amount int64, timeProvider coreport.TimeProvider) *Balance {
	return &Balance{
		amount:    amount,
		Version:   b.Version + 1,
		UpdatedAt: timeProvider.Now(),
	}
}

// BalanceSnapshot is a point-in-time view of the balance and its version
type BalanceSnapshot struct {
	Amount  int64
	Version uint64
}

// Snapshot returns the amount and version of the balance
func (b *Balance) Snapshot() BalanceSnapshot {
	return BalanceSnapshot{Amount: b.amount, Version: b.Version}
}
