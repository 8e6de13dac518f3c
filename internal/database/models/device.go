package models

import "time"

// Device binds a client-supplied device fingerprint to the voter name used on its first vote
type Device struct {
	DeviceHash string    `json:"deviceHash" gorm:"column:device_hash;primaryKey;size:255"`
	VoterName  string    `json:"voterName" gorm:"size:40;not null"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName returns the table name for Device
func (Device) TableName() string {
	return "devices"
}
