package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/model"
)

const upsertBatchSize = 200

// MirrorRepository implements persistence.MirrorRepository using GORM
type MirrorRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMirrorRepository creates a new MirrorRepository instance
func NewMirrorRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *MirrorRepository {
	return &MirrorRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// transactionToModel converts a transaction entity to a database model
func transactionToModel(deviceID string, txn entity.Transaction, syncedAt time.Time) model.MirrorTransaction {
	return model.MirrorTransaction{
		DeviceID:            deviceID,
		TransactionID:       txn.ID,
		CounterpartyName:    txn.CounterpartyName,
		CounterpartyAddress: txn.CounterpartyAddress,
		Amount:              txn.Amount,
		Direction:           string(txn.Direction),
		OccurredAt:          txn.CreatedAt,
		SyncedAt:            syncedAt,
	}
}

// contactToModel converts a contact entity to a database model
func contactToModel(deviceID string, c entity.Contact, syncedAt time.Time) model.MirrorContact {
	return model.MirrorContact{
		DeviceID:            deviceID,
		ContactID:           c.ID,
		DisplayName:         c.DisplayName,
		CounterpartyAddress: c.CounterpartyAddress,
		LastActivityAt:      c.LastActivityAt,
		SyncedAt:            syncedAt,
	}
}

// UpsertTransactions stores transactions keyed by (device_id, transaction_id).
// Transactions are immutable, so a replay only refreshes synced_at.
func (r *MirrorRepository) UpsertTransactions(ctx context.Context, deviceID string, txns []entity.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	now := r.timeProvider.Now().UTC()
	rows := make([]model.MirrorTransaction, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, transactionToModel(deviceID, txn, now))
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}, {Name: "transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"synced_at"}),
		}).
		CreateInBatches(&rows, upsertBatchSize)
	if result.Error != nil {
		r.logger.Error("Failed to upsert mirror transactions", map[string]any{
			"deviceId": deviceID,
			"count":    len(rows),
			"error":    result.Error.Error(),
		})
		return r.errorClassifier.MapError("upsert", model.MirrorTransaction{}.TableName(), result.Error)
	}

	r.logger.Debug("Mirror transactions upserted", map[string]any{
		"deviceId": deviceID,
		"count":    len(rows),
	})
	return nil
}

// UpsertContacts stores contacts keyed by (device_id, contact_id)
func (r *MirrorRepository) UpsertContacts(ctx context.Context, deviceID string, contacts []entity.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	now := r.timeProvider.Now().UTC()
	rows := make([]model.MirrorContact, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, contactToModel(deviceID, c, now))
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}, {Name: "contact_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "counterparty_address", "last_activity_at", "synced_at",
			}),
		}).
		CreateInBatches(&rows, upsertBatchSize)
	if result.Error != nil {
		r.logger.Error("Failed to upsert mirror contacts", map[string]any{
			"deviceId": deviceID,
			"count":    len(rows),
			"error":    result.Error.Error(),
		})
		return r.errorClassifier.MapError("upsert", model.MirrorContact{}.TableName(), result.Error)
	}
	return nil
}

// SaveBalance stores the latest balance reported by the device
func (r *MirrorRepository) SaveBalance(ctx context.Context, deviceID string, amount int64, syncedAt time.Time) error {
	row := model.DeviceBalance{
		DeviceID: deviceID,
		Amount:   amount,
		SyncedAt: syncedAt,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "synced_at"}),
		}).
		Create(&row)
	if result.Error != nil {
		r.logger.Error("Failed to save device balance", map[string]any{
			"deviceId": deviceID,
			"error":    result.Error.Error(),
		})
		return r.errorClassifier.MapError("save", row.TableName(), result.Error)
	}
	return nil
}

// GetBalance returns the stored balance of a device and whether one exists
func (r *MirrorRepository) GetBalance(ctx context.Context, deviceID string) (int64, bool, error) {
	var row model.DeviceBalance
	result := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&row)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if result.Error != nil {
		return 0, false, r.errorClassifier.MapError("read", row.TableName(), result.Error)
	}
	return row.Amount, true, nil
}

// CountTransactions returns the number of transactions stored for a device
func (r *MirrorRepository) CountTransactions(ctx context.Context, deviceID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.MirrorTransaction{}).Where("device_id = ?", deviceID).Count(&count)
	if result.Error != nil {
		return 0, r.errorClassifier.MapError("count", model.MirrorTransaction{}.TableName(), result.Error)
	}
	return count, nil
}
