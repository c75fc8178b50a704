package model

import "time"

// MirrorContact is the mirror's copy of a device contact
type MirrorContact struct {
	DeviceID            string    `gorm:"primaryKey;size:64"`
	ContactID           int64     `gorm:"primaryKey;autoIncrement:false"`
	DisplayName         string    `gorm:"not null;size:255"`
	CounterpartyAddress string    `gorm:"not null;size:255"`
	LastActivityAt      time.Time `gorm:"not null"`
	SyncedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for MirrorContact
func (MirrorContact) TableName() string {
	return "mirror_contacts"
}
