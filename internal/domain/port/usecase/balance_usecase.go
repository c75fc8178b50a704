package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
)

// BalanceUseCase defines the wallet's authoritative balance register
type BalanceUseCase interface {
	// GetBalance returns the current amount
	GetBalance() int64

	// Credit increases the balance and returns the new amount
	Credit(ctx context.Context, amount int64) (int64, error)

	// Debit decreases the balance and returns the new amount
	// Returns InsufficientFundsError if the balance does not cover the amount
	Debit(ctx context.Context, amount int64) (int64, error)

	// SetBalance overrides the balance with a non-negative amount
	SetBalance(ctx context.Context, amount int64) error

	// Snapshot returns the amount together with its version
	Snapshot() entity.BalanceSnapshot

	// SetBalanceIfVersion overrides the balance only if its version still equals version.
	// Reports whether the override was applied.
	SetBalanceIfVersion(ctx context.Context, amount int64, version uint64) (bool, error)
}
