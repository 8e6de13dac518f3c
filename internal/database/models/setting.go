package models

import "time"

// Setting is a runtime key/value toggle editable by admins
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;size:100"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedBy string    `json:"updatedBy" gorm:"size:255"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
