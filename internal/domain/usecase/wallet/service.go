package wallet

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"
)

// Default linked bank account used as counterparty for top-ups and withdrawals
const (
	DefaultBankName    = "Linked Bank Account"
	DefaultBankAddress = "self@bank"
)

// BankAccount is the counterparty recorded for top-ups and withdrawals
type BankAccount struct {
	Name    string
	Address string
}

// Service composes the ledger, the balance register and the sync engine into the
// operations offered to the UI
type Service struct {
	ledger  usecase.LedgerUseCase
	balance usecase.BalanceUseCase
	syncer  usecase.SyncUseCase
	logger  coreport.Logger
	bank    BankAccount

	mu sync.Mutex // serializes composed balance + ledger operations
}

// NewService creates a new wallet Service
func NewService(
	ledger usecase.LedgerUseCase,
	balance usecase.BalanceUseCase,
	syncer usecase.SyncUseCase,
	logger coreport.Logger,
	bank BankAccount,
) *Service {
	if bank.Name == "" {
		bank.Name = DefaultBankName
	}
	if bank.Address == "" {
		bank.Address = DefaultBankAddress
	}

	return &Service{
		ledger:  ledger,
		balance: balance,
		syncer:  syncer,
		logger:  logger,
		bank:    bank,
	}
}

// Pay debits the balance and records a sent transaction
func (s *Service) Pay(ctx context.Context, req usecase.PaymentRequest) (*usecase.PaymentResult, error) {
	return s.send(ctx, req.Name, req.Address, req.Amount)
}

// Withdraw debits the balance and records a transfer to the linked bank account
func (s *Service) Withdraw(ctx context.Context, amount int64) (*usecase.PaymentResult, error) {
	return s.send(ctx, s.bank.Name, s.bank.Address, amount)
}

// Receive credits the balance and records a received transaction
func (s *Service) Receive(ctx context.Context, req usecase.PaymentRequest) (*usecase.PaymentResult, error) {
	return s.receive(ctx, req.Name, req.Address, req.Amount)
}

// TopUp credits the balance and records a transfer from the linked bank account
func (s *Service) TopUp(ctx context.Context, amount int64) (*usecase.PaymentResult, error) {
	return s.receive(ctx, s.bank.Name, s.bank.Address, amount)
}

func (s *Service) send(ctx context.Context, name, address string, amount int64) (*usecase.PaymentResult, error) {
	name, address, err := entity.ValidateTransactionInput(name, address, amount, entity.DirectionSent)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, err := s.balance.Debit(ctx, amount)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.AppendTransaction(ctx, name, address, amount, entity.DirectionSent)
	if err != nil {
		s.compensate(ctx, "debit", amount, err)
		return nil, err
	}

	s.logger.Info("Payment sent", map[string]any{
		"transactionId": txn.ID,
		"amount":        amount,
		"counterparty":  address,
		"balance":       remaining,
	})

	return &usecase.PaymentResult{Transaction: txn, Balance: view(remaining)}, nil
}

func (s *Service) receive(ctx context.Context, name, address string, amount int64) (*usecase.PaymentResult, error) {
	name, address, err := entity.ValidateTransactionInput(name, address, amount, entity.DirectionReceived)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total, err := s.balance.Credit(ctx, amount)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.AppendTransaction(ctx, name, address, amount, entity.DirectionReceived)
	if err != nil {
		s.compensate(ctx, "credit", amount, err)
		return nil, err
	}

	s.logger.Info("Payment received", map[string]any{
		"transactionId": txn.ID,
		"amount":        amount,
		"counterparty":  address,
		"balance":       total,
	})

	return &usecase.PaymentResult{Transaction: txn, Balance: view(total)}, nil
}

// compensate reverses a balance change whose transaction could not be recorded
func (s *Service) compensate(ctx context.Context, applied string, amount int64, cause error) {
	var err error
	if applied == "debit" {
		_, err = s.balance.Credit(context.WithoutCancel(ctx), amount)
	} else {
		_, err = s.balance.Debit(context.WithoutCancel(ctx), amount)
	}

	fields := map[string]any{
		"reversed": applied,
		"amount":   amount,
		"cause":    cause.Error(),
	}
	if err != nil {
		fields["error"] = err.Error()
		s.logger.Error("Failed to reverse balance change", fields)
		return
	}
	s.logger.Warn("Balance change reversed after ledger failure", fields)
}

// GetBalanceDisplay returns the current balance
func (s *Service) GetBalanceDisplay(ctx context.Context) (*usecase.BalanceView, error) {
	v := view(s.balance.GetBalance())
	return &v, nil
}

// GetHistory returns transactions most recent first
func (s *Service) GetHistory(ctx context.Context, filter *entity.TransactionFilter) ([]entity.Transaction, error) {
	if filter != nil && filter.Direction != "" && !filter.Direction.IsValid() {
		_, err := entity.ParseDirection(string(filter.Direction))
		return nil, err
	}
	return s.ledger.ListTransactions(filter), nil
}

// Contacts returns contacts ordered by most recent activity
func (s *Service) Contacts(ctx context.Context) ([]entity.Contact, error) {
	return s.ledger.ListContacts(), nil
}

// RemoveContact drops a contact from the index
func (s *Service) RemoveContact(ctx context.Context, id int64) error {
	return s.ledger.RemoveContact(ctx, id)
}

// SyncNow triggers a sync cycle
func (s *Service) SyncNow(ctx context.Context) (*usecase.SyncResult, error) {
	return s.syncer.SyncNow(ctx)
}

// SyncStatus returns the sync engine state
func (s *Service) SyncStatus() usecase.SyncStatus {
	return s.syncer.Status()
}

func view(amount int64) usecase.BalanceView {
	return usecase.BalanceView{
		Amount:  amount,
		Display: entity.FormatAmount(amount),
	}
}
