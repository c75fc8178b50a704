package usecase

import (
	"context"
	"time"
)

// SyncState is the lifecycle state of the sync engine
type SyncState string

// Sync engine states
const (
	SyncIdle    SyncState = "idle"
	SyncSyncing SyncState = "syncing"
	SyncSuccess SyncState = "success"
	SyncError   SyncState = "error"
)

// SyncResult describes the outcome of one SyncNow call
type SyncResult struct {
	Skipped            bool       `json:"skipped"`
	Outcome            SyncState  `json:"outcome"`
	LastSynced         *time.Time `json:"lastSynced,omitempty"`
	TransactionsSynced int        `json:"transactionsSynced"`
	ContactsSynced     int        `json:"contactsSynced"`
	BalanceCorrected   bool       `json:"balanceCorrected"`
}

// SyncStatus is a point-in-time view of the sync engine
type SyncStatus struct {
	State       SyncState  `json:"state"`
	LastOutcome SyncState  `json:"lastOutcome,omitempty"`
	LastSynced  *time.Time `json:"lastSynced,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
	DeviceID    string     `json:"deviceId,omitempty"`
}

// SyncUseCase defines reconciliation with the remote mirror
type SyncUseCase interface {
	// SyncNow runs one sync cycle unless one is already running
	SyncNow(ctx context.Context) (*SyncResult, error)

	// Status returns the current engine state
	Status() SyncStatus
}
