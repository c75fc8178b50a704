package mirror

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/persistence"
)

// Service stores device snapshots on the remote side of a sync round-trip
type Service struct {
	txManager    persistence.MirrorTransactionManager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validate     *validator.Validate
}

// NewService creates a new mirror Service
func NewService(
	txManager persistence.MirrorTransactionManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
		validate:     validator.New(),
	}
}

// Apply upserts the snapshot by (deviceId, id) and answers with the stored view.
// Replaying the same request leaves the mirror unchanged apart from the sync timestamp.
func (s *Service) Apply(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
	if req == nil {
		return nil, errs.NewValidationError("request", nil, errs.ErrInvalidRequest)
	}
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Rejected sync request", map[string]any{
			"deviceId": req.DeviceID,
			"error":    err.Error(),
		})
		return nil, errs.NewValidationError("request", req.DeviceID, fmt.Errorf("%w: %v", errs.ErrInvalidSyncPayload, err))
	}

	syncedAt := s.timeProvider.Now().UTC()
	var stored int64

	err := s.txManager.WithinTransaction(ctx, func(repo persistence.MirrorRepository) error {
		if err := repo.UpsertTransactions(ctx, req.DeviceID, req.Transactions); err != nil {
			return err
		}
		if err := repo.UpsertContacts(ctx, req.DeviceID, req.Contacts); err != nil {
			return err
		}
		if err := repo.SaveBalance(ctx, req.DeviceID, req.Balance, syncedAt); err != nil {
			return err
		}

		amount, found, err := repo.GetBalance(ctx, req.DeviceID)
		if err != nil {
			return err
		}
		if !found {
			amount = req.Balance
		}
		stored = amount
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to apply sync request", map[string]any{
			"deviceId": req.DeviceID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Sync request applied", map[string]any{
		"deviceId":     req.DeviceID,
		"transactions": len(req.Transactions),
		"contacts":     len(req.Contacts),
		"balance":      stored,
	})

	return &entity.SyncResponse{
		Transactions: markSynced(req.Transactions),
		Contacts:     markSyncedContacts(req.Contacts),
		Balance:      &stored,
		LastSynced:   &syncedAt,
	}, nil
}

func markSynced(txns []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, len(txns))
	for i, txn := range txns {
		txn.SyncState = entity.SyncSynced
		out[i] = txn
	}
	return out
}

func markSyncedContacts(contacts []entity.Contact) []entity.Contact {
	out := make([]entity.Contact, len(contacts))
	for i, c := range contacts {
		c.SyncState = entity.SyncSynced
		out[i] = c
	}
	return out
}
