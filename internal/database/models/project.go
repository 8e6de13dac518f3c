package models

import "time"

// Project is a competition entry. Its ID is the team number and never changes.
type Project struct {
	ID         string    `json:"id" gorm:"primaryKey;size:50"`
	TeamNumber string    `json:"teamNumber" gorm:"size:50;not null"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	Sector     string    `json:"sector" gorm:"size:50;not null;default:''"`
	Department string    `json:"department" gorm:"size:50;not null;default:''"`
	QRCode     []byte    `json:"-" gorm:"column:qr_png;type:bytea"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
