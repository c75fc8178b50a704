package entity

import "time"

// RecordKind selects which sync-tracked collection an operation applies to
type RecordKind string

// Record kinds
const (
	KindTransactions RecordKind = "transactions"
	KindContacts     RecordKind = "contacts"
)

// IsValid reports whether the kind is one of the known values
func (k RecordKind) IsValid() bool {
	return k == KindTransactions || k == KindContacts
}

// SyncRequest is the snapshot a device submits to the remote mirror
type SyncRequest struct {
	Transactions []Transaction `json:"transactions" validate:"dive"`
	Contacts     []Contact     `json:"contacts" validate:"dive"`
	Balance      int64         `json:"balance" validate:"gte=0"`
	DeviceID     string        `json:"deviceId" validate:"required"`
	LastSynced   *time.Time    `json:"lastSynced"`
}

// SyncResponse is the mirror's authoritative answer to a SyncRequest
type SyncResponse struct {
	Transactions []Transaction `json:"transactions" validate:"dive"`
	Contacts     []Contact     `json:"contacts" validate:"dive"`
	Balance      *int64        `json:"balance" validate:"omitempty,gte=0"`
	LastSynced   *time.Time    `json:"lastSynced"`
}

// TransactionIDs returns the ids of the response transactions
func (r *SyncResponse) TransactionIDs() []int64 {
	ids := make([]int64, 0, len(r.Transactions))
	for _, txn := range r.Transactions {
		ids = append(ids, txn.ID)
	}
	return ids
}

// ContactIDs returns the ids of the response contacts
func (r *SyncResponse) ContactIDs() []int64 {
	ids := make([]int64, 0, len(r.Contacts))
	for _, c := range r.Contacts {
		ids = append(ids, c.ID)
	}
	return ids
}
