package model

import "time"

// DeviceBalance holds the last balance reported by a device
type DeviceBalance struct {
	DeviceID string    `gorm:"primaryKey;size:64"`
	Amount   int64     `gorm:"not null;check:amount >= 0"`
	SyncedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for DeviceBalance
func (DeviceBalance) TableName() string {
	return "device_balances"
}
