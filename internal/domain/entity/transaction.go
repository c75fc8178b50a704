package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
)

// Direction tells whether money left or entered the wallet
type Direction string

// Directions
const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// SyncState tracks whether the remote mirror acknowledged a record
type SyncState string

// Sync states
const (
	SyncPending SyncState = "pending"
	SyncSynced  SyncState = "synced"
)

// AddressSeparator splits a counterparty address into handle and provider
const AddressSeparator = "@"

// DisplayDateLayout is the layout used for TransactionRecord.DisplayDate
const DisplayDateLayout = "02 Jan 2006, 3:04 PM"

// Transaction is one immutable monetary event in the ledger
type Transaction struct {
	ID                  int64     `json:"id" validate:"required"`
	CounterpartyName    string    `json:"counterpartyName" validate:"required"`
	CounterpartyAddress string    `json:"counterpartyAddress" validate:"required,contains=@"`
	Amount              int64     `json:"amount" validate:"gt=0"`
	DisplayAmount       string    `json:"displayAmount"`
	CreatedAt           time.Time `json:"createdAt"`
	DisplayDate         string    `json:"displayDate"`
	Direction           Direction `json:"direction" validate:"oneof=sent received"`
	SyncState           SyncState `json:"syncState" validate:"oneof=pending synced"`
}

// NewTransaction validates the input and creates a pending transaction
func NewTransaction(
	id int64,
	counterpartyName string,
	counterpartyAddress string,
	amount int64,
	direction Direction,
	createdAt time.Time,
) (*Transaction, error) {
	name, address, err := ValidateTransactionInput(counterpartyName, counterpartyAddress, amount, direction)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		ID:                  id,
		CounterpartyName:    name,
		CounterpartyAddress: address,
		Amount:              amount,
		DisplayAmount:       FormatAmount(amount),
		CreatedAt:           createdAt,
		DisplayDate:         createdAt.Format(DisplayDateLayout),
		Direction:           direction,
		SyncState:           SyncPending,
	}, nil
}

// ValidateTransactionInput checks every field of a prospective transaction and
// returns the normalized name and address
func ValidateTransactionInput(name, address string, amount int64, direction Direction) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", errs.NewValidationError("counterpartyName", name, errs.ErrInvalidName)
	}

	address, err := NormalizeAddress(address)
	if err != nil {
		return "", "", err
	}

	if err := ValidateAmount(amount); err != nil {
		return "", "", err
	}

	if !direction.IsValid() {
		return "", "", errs.NewValidationError("direction", direction, errs.ErrInvalidDirection)
	}

	return name, address, nil
}

// NormalizeAddress trims and lower-cases an address and checks that it is handle@provider
func NormalizeAddress(address string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(address))

	handle, provider, found := strings.Cut(normalized, AddressSeparator)
	if !found || handle == "" || provider == "" ||
		strings.Contains(provider, AddressSeparator) ||
		strings.ContainsAny(normalized, " \t\r\n") {
		return "", errs.NewValidationError("counterpartyAddress", address, errs.ErrInvalidAddress)
	}

	return normalized, nil
}

// ParseDirection converts a string into a Direction
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", errs.NewValidationError("direction", s, errs.ErrInvalidDirection)
	}
	return d, nil
}

// IsValid reports whether the direction is one of the known values
func (d Direction) IsValid() bool {
	return d == DirectionSent || d == DirectionReceived
}

// IsPending reports whether the remote mirror has not acknowledged the transaction yet
func (t *Transaction) IsPending() bool {
	return t.SyncState == SyncPending
}

// String returns a short human readable description
func (t *Transaction) String() string {
	return fmt.Sprintf("%d %s %s %s", t.ID, t.Direction, t.DisplayAmount, t.CounterpartyAddress)
}

// TransactionFilter narrows a history listing
type TransactionFilter struct {
	Direction Direction
}

// Matches reports whether txn passes the filter; a nil filter matches everything
func (f *TransactionFilter) Matches(txn *Transaction) bool {
	if f == nil || f.Direction == "" {
		return true
	}
	return txn.Direction == f.Direction
}
