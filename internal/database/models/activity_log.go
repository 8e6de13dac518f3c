package models

import "encoding/json"

// Activity types
const (
	ActivityTypeVote    = "vote"
	ActivityTypeProject = "project"
	ActivityTypeFilter  = "filter"
	ActivityTypeVoting  = "voting"
	ActivityTypeAuth    = "auth"
	ActivityTypeSystem  = "system"
)

// ActivityLog is an append-only audit record
type ActivityLog struct {
	BaseModel
	Type      string          `json:"type" gorm:"size:30;not null;index"`
	Action    string          `json:"action" gorm:"size:30;not null"`
	Actor     string          `json:"actor" gorm:"size:255;not null"`
	Details   json.RawMessage `json:"details" gorm:"type:jsonb"`
	IPAddress string          `json:"ipAddress" gorm:"column:ip_address;size:64"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}
