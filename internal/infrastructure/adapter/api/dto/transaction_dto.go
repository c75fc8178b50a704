package dto

import (
	"strconv"
	"time"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
)

// TransactionResponse represents a ledger transaction in API responses
type TransactionResponse struct {
	ID                  string    `json:"id"`
	CounterpartyName    string    `json:"counterpartyName"`
	CounterpartyAddress string    `json:"counterpartyAddress"`
	Amount              int64     `json:"amount"`
	DisplayAmount       string    `json:"displayAmount"`
	CreatedAt           time.Time `json:"createdAt"`
	DisplayDate         string    `json:"displayDate"`
	Direction           string    `json:"direction"`
	SyncState           string    `json:"syncState"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID                  string    `json:"id"`
	DisplayName         string    `json:"displayName"`
	CounterpartyAddress string    `json:"counterpartyAddress"`
	LastActivityAt      time.Time `json:"lastActivityAt"`
	SyncState           string    `json:"syncState"`
}

// NewTransactionResponse maps a transaction entity to its API response.
// Ids are rendered as strings so JavaScript clients keep full precision.
func NewTransactionResponse(txn entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                  strconv.FormatInt(txn.ID, 10),
		CounterpartyName:    txn.CounterpartyName,
		CounterpartyAddress: txn.CounterpartyAddress,
		Amount:              txn.Amount,
		DisplayAmount:       txn.DisplayAmount,
		CreatedAt:           txn.CreatedAt,
		DisplayDate:         txn.DisplayDate,
		Direction:           string(txn.Direction),
		SyncState:           string(txn.SyncState),
	}
}

// NewTransactionListResponse maps transactions in order
func NewTransactionListResponse(txns []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, NewTransactionResponse(txn))
	}
	return out
}

// NewContactListResponse maps contacts in order
func NewContactListResponse(contacts []entity.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactResponse{
			ID:                  strconv.FormatInt(c.ID, 10),
			DisplayName:         c.DisplayName,
			CounterpartyAddress: c.CounterpartyAddress,
			LastActivityAt:      c.LastActivityAt,
			SyncState:           string(c.SyncState),
		})
	}
	return out
}
