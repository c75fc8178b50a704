package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
)

// LedgerUseCase defines the append-only transaction log and its derived contact index
type LedgerUseCase interface {
	// AppendTransaction validates, records and persists a new transaction, upserting its contact
	AppendTransaction(ctx context.Context, name, address string, amount int64, direction entity.Direction) (*entity.Transaction, error)

	// ListTransactions returns transactions most recent first
	ListTransactions(filter *entity.TransactionFilter) []entity.Transaction

	// ListContacts returns contacts ordered by most recent activity
	ListContacts() []entity.Contact

	// RemoveContact drops a contact from the index; unknown ids are ignored
	RemoveContact(ctx context.Context, id int64) error

	// MarkSynced flips every pending record of the kind to synced
	MarkSynced(ctx context.Context, kind entity.RecordKind) error

	// MarkSyncedIDs flips only the listed pending records and returns how many changed
	MarkSyncedIDs(ctx context.Context, kind entity.RecordKind, ids []int64) (int, error)

	// MarkContactsSynced flips pending contacts whose id and revision match an acknowledged copy
	MarkContactsSynced(ctx context.Context, acked []entity.Contact) (int, error)

	// UnsyncedTransactions returns pending transactions
	UnsyncedTransactions() []entity.Transaction

	// UnsyncedContacts returns pending contacts
	UnsyncedContacts() []entity.Contact
}
