package entity

import "time"

// Contact is a counterparty derived from the transaction log
type Contact struct {
	ID                  int64     `json:"id" validate:"required"`
	DisplayName         string    `json:"displayName" validate:"required"`
	CounterpartyAddress string    `json:"counterpartyAddress" validate:"required,contains=@"`
	LastActivityAt      time.Time `json:"lastActivityAt"`
	SyncState           SyncState `json:"syncState" validate:"oneof=pending synced"`
	// Revision increases on every touch so an acknowledgment of an older copy can be told apart
	Revision uint64 `json:"revision"`
}

// NewContactFromTransaction creates a pending contact for the transaction's counterparty
func NewContactFromTransaction(id int64, txn *Transaction) *Contact {
	return &Contact{
		ID:                  id,
		DisplayName:         txn.CounterpartyName,
		CounterpartyAddress: txn.CounterpartyAddress,
		LastActivityAt:      txn.CreatedAt,
		SyncState:           SyncPending,
		Revision:            1,
	}
}

// Touch records new activity from txn; the first-seen display name is kept
func (c *Contact) Touch(txn *Transaction) {
	c.LastActivityAt = txn.CreatedAt
	c.SyncState = SyncPending
	c.Revision++
}

// IsPending reports whether the remote mirror has not acknowledged the contact yet
func (c *Contact) IsPending() bool {
	return c.SyncState == SyncPending
}
