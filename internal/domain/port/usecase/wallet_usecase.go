package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
)

// PaymentRequest identifies a counterparty and an amount
type PaymentRequest struct {
	Name    string
	Address string
	Amount  int64
}

// BalanceView is the balance as shown to the user
type BalanceView struct {
	Amount  int64  `json:"amount"`
	Display string `json:"display"`
}

// PaymentResult contains the recorded transaction and the resulting balance
type PaymentResult struct {
	Transaction *entity.Transaction
	Balance     BalanceView
}

// WalletUseCase defines the operations offered to the UI
type WalletUseCase interface {
	// Pay debits the balance and records a sent transaction
	Pay(ctx context.Context, req PaymentRequest) (*PaymentResult, error)

	// Receive credits the balance and records a received transaction
	Receive(ctx context.Context, req PaymentRequest) (*PaymentResult, error)

	// TopUp credits the balance from the linked bank account
	TopUp(ctx context.Context, amount int64) (*PaymentResult, error)

	// Withdraw debits the balance to the linked bank account
	Withdraw(ctx context.Context, amount int64) (*PaymentResult, error)

	// GetBalanceDisplay returns the current balance
	GetBalanceDisplay(ctx context.Context) (*BalanceView, error)

	// GetHistory returns transactions most recent first
	GetHistory(ctx context.Context, filter *entity.TransactionFilter) ([]entity.Transaction, error)

	// Contacts returns contacts ordered by most recent activity
	Contacts(ctx context.Context) ([]entity.Contact, error)

	// RemoveContact drops a contact from the index
	RemoveContact(ctx context.Context, id int64) error

	// SyncNow triggers a sync cycle
	SyncNow(ctx context.Context) (*SyncResult, error)

	// SyncStatus returns the sync engine state
	SyncStatus() SyncStatus
}
