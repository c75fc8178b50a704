package remote

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
)

// EchoMirror answers every submission with the submitted snapshot and a fresh
// lastSynced; used when no mirror service is configured
type EchoMirror struct {
	timeProvider coreport.TimeProvider
	latency      time.Duration
}

// NewEchoMirror creates an EchoMirror that waits latency before answering
func NewEchoMirror(timeProvider coreport.TimeProvider, latency time.Duration) *EchoMirror {
	return &EchoMirror{timeProvider: timeProvider, latency: latency}
}

// Submit echoes req back with records marked synced
func (m *EchoMirror) Submit(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	txns := make([]entity.Transaction, len(req.Transactions))
	for i, txn := range req.Transactions {
		txn.SyncState = entity.SyncSynced
		txns[i] = txn
	}
	contacts := make([]entity.Contact, len(req.Contacts))
	for i, c := range req.Contacts {
		c.SyncState = entity.SyncSynced
		contacts[i] = c
	}

	balance := req.Balance
	now := m.timeProvider.Now().UTC()
	return &entity.SyncResponse{
		Transactions: txns,
		Contacts:     contacts,
		Balance:      &balance,
		LastSynced:   &now,
	}, nil
}
