package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
)

// MirrorRepository defines the remote mirror's storage operations
type MirrorRepository interface {
	// UpsertTransactions stores transactions keyed by device and transaction id
	UpsertTransactions(ctx context.Context, deviceID string, txns []entity.Transaction) error

	// UpsertContacts stores contacts keyed by device and contact id
	UpsertContacts(ctx context.Context, deviceID string, contacts []entity.Contact) error

	// SaveBalance stores the latest balance reported by the device
	SaveBalance(ctx context.Context, deviceID string, amount int64, syncedAt time.Time) error

	// GetBalance returns the stored balance of a device and whether one exists
	GetBalance(ctx context.Context, deviceID string) (int64, bool, error)

	// CountTransactions returns the number of transactions stored for a device
	CountTransactions(ctx context.Context, deviceID string) (int64, error)
}

// MirrorTransactionManager runs mirror writes atomically
type MirrorTransactionManager interface {
	// WithinTransaction runs fn inside one database transaction, passing a repository bound to it
	WithinTransaction(ctx context.Context, fn func(repo MirrorRepository) error) error
}
