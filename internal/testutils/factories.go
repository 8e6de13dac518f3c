package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"event-voting-backend/internal/database/models"

	"github.com/google/uuid"
)

var sequence atomic.Int64

func nextSeq() int64 {
	return sequence.Add(1)
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with a unique team number
func (f *ProjectFactory) Create() *models.Project {
	id := fmt.Sprintf("T%d", nextSeq())
	return &models.Project{
		ID:         id,
		TeamNumber: id,
		Title:      "Project " + id,
		Sector:     "Energy",
		Department: "Engineering",
	}
}

// WithID creates a test Project with the given team number
func (f *ProjectFactory) WithID(id string) *models.Project {
	project := f.Create()
	project.ID = id
	project.TeamNumber = id
	project.Title = "Project " + id
	return project
}

// DeviceFactory provides methods to create test Device data
type DeviceFactory struct{}

// NewDeviceFactory creates a new DeviceFactory
func NewDeviceFactory() *DeviceFactory {
	return &DeviceFactory{}
}

// Create creates a test Device with a unique hash
func (f *DeviceFactory) Create() *models.Device {
	return &models.Device{
		DeviceHash: fmt.Sprintf("device-%d-%s", nextSeq(), uuid.NewString()[:8]),
		VoterName:  "Alice",
	}
}

// WithName creates a test Device registered under name
func (f *DeviceFactory) WithName(name string) *models.Device {
	device := f.Create()
	device.VoterName = name
	return device
}

// VoteFactory provides methods to create test Vote data
type VoteFactory struct{}

// NewVoteFactory creates a new VoteFactory
func NewVoteFactory() *VoteFactory {
	return &VoteFactory{}
}

// Create creates a test Vote cast by device for project
func (f *VoteFactory) Create(project *models.Project, device *models.Device, score int) *models.Vote {
	return &models.Vote{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		ProjectID:  project.ID,
		DeviceHash: device.DeviceHash,
		VoterName:  device.VoterName,
		Score:      score,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Project *ProjectFactory
	Device  *DeviceFactory
	Vote    *VoteFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project: NewProjectFactory(),
		Device:  NewDeviceFactory(),
		Vote:    NewVoteFactory(),
	}
}
