package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/payledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBalance(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid balance", func(t *testing.T) {
		b, err := NewBalance(225925, 3, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, int64(225925), b.Amount())
		assert.Equal(t, uint64(3), b.Version)
		assert.Equal(t, "₹2,25,925", b.Display())
	})

	t.Run("Negative balance", func(t *testing.T) {
		b, err := NewBalance(-1, 0, fixedTime)

		assert.Nil(t, b)
		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
	})
}

func TestBalanceMutations(t *testing.T) {
	initialTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := initialTime.Add(time.Minute)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(updateTime).Maybe()

	t.Run("Credit", func(t *testing.T) {
		b, _ := NewBalance(1000, 0, initialTime)

		next, err := b.Credited(500, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(1500), next.Amount())
		assert.Equal(t, uint64(1), next.Version)
		assert.Equal(t, updateTime, next.UpdatedAt)
		assert.Equal(t, int64(1000), b.Amount(), "receiver must stay unchanged")
	})

	t.Run("Credit overflow", func(t *testing.T) {
		b, _ := NewBalance(math.MaxInt64-10, 0, initialTime)

		next, err := b.Credited(11, mockTime)

		assert.Nil(t, next)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})

	t.Run("Debit", func(t *testing.T) {
		b, _ := NewBalance(1000, 4, initialTime)

		next, err := b.Debited(1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), next.Amount())
		assert.Equal(t, uint64(5), next.Version)
	})

	t.Run("Debit insufficient funds", func(t *testing.T) {
		b, _ := NewBalance(700, 0, initialTime)

		next, err := b.Debited(5000, mockTime)

		assert.Nil(t, next)
		assert.True(t, errs.IsInsufficientFundsError(err))
		var ife *errs.InsufficientFundsError
		require.ErrorAs(t, err, &ife)
		assert.Equal(t, int64(700), ife.Available)
		assert.Equal(t, int64(700), b.Amount())
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		b, _ := NewBalance(700, 0, initialTime)

		_, err := b.Credited(0, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = b.Debited(-3, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Override", func(t *testing.T) {
		b, _ := NewBalance(700, 9, initialTime)

		next, err := b.Overridden(0, mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(0), next.Amount())
		assert.Equal(t, uint64(10), next.Version)

		_, err = b.Overridden(-1, mockTime)
		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
	})
}
