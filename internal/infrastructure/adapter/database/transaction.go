package database

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/repository"
)

// TransactionManager runs mirror writes inside one database transaction
type TransactionManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	classifier   *repository.ErrorClassifier
	retry        RetryConfig
}

// NewTransactionManager creates a TransactionManager over db
func NewTransactionManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, retry RetryConfig) *TransactionManager {
	return &TransactionManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		classifier:   repository.NewErrorClassifier(),
		retry:        retry,
	}
}

// WithinTransaction runs fn with a repository bound to a fresh transaction.
// The whole transaction is retried when it fails with a transient error.
func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(repo persistence.MirrorRepository) error) error {
	return RetryOnTransientError(ctx, m.retry, func() error {
		m.logger.Debug("Beginning mirror transaction", nil)
		return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(repository.NewMirrorRepository(tx, m.timeProvider, m.logger))
		})
	}, m.classifier, m.logger)
}

// Repository returns a repository outside any transaction
func (m *TransactionManager) Repository(ctx context.Context) persistence.MirrorRepository {
	return repository.NewMirrorRepository(m.db.WithContext(ctx), m.timeProvider, m.logger)
}
