package model

import (
	"time"
)

// MirrorTransaction is the mirror's copy of a device transaction
type MirrorTransaction struct {
	DeviceID            string    `gorm:"primaryKey;size:64"`
	TransactionID       int64     `gorm:"primaryKey;autoIncrement:false"`
	CounterpartyName    string    `gorm:"not null;size:255"`
	CounterpartyAddress string    `gorm:"not null;size:255;index"`
	Amount              int64     `gorm:"not null"`
	Direction           string    `gorm:"not null;size:16"`
	OccurredAt          time.Time `gorm:"not null"`
	SyncedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for MirrorTransaction
func (MirrorTransaction) TableName() string {
	return "mirror_transactions"
}
