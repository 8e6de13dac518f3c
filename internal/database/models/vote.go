package models

// Vote is a single score cast by a device for a project
type Vote struct {
	BaseModel
	ProjectID  string `json:"projectId" gorm:"size:50;not null;uniqueIndex:votes_project_device_unique,priority:1"`
	DeviceHash string `json:"deviceHash" gorm:"size:255;not null;uniqueIndex:votes_project_device_unique,priority:2"`
	VoterName  string `json:"voterName" gorm:"size:40;not null"`
	Score      int    `json:"score" gorm:"not null"`
}

// TableName returns the table name for Vote
func (Vote) TableName() string {
	return "votes"
}

// JoinedVote is a vote enriched with the attributes of its project.
// ProjectFound is false for votes whose project no longer exists.
type JoinedVote struct {
	Vote
	TeamNumber   string `json:"teamNumber"`
	ProjectTitle string `json:"projectTitle"`
	Department   string `json:"department"`
	Sector       string `json:"sector"`
	ProjectFound bool   `json:"-"`
}
