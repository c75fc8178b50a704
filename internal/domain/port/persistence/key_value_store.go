package persistence

import "context"

// Keys written by the wallet core
const (
	KeyTransactions   = "transactions"
	KeyContacts       = "contacts"
	KeyBalance        = "balance"
	KeyBalanceVersion = "balanceVersion"
	KeyLastSyncTime   = "lastSyncTime"
	KeyDeviceID       = "deviceId"
)

// KeyValueStore defines the local durable storage used by the wallet core
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Put writes all entries atomically: either every key is updated or none is
	Put(ctx context.Context, entries map[string]string) error

	// Close releases the underlying resources
	Close() error
}
