package service_test

import (
	"context"
	"sort"
	"sync"

	"event-voting-backend/internal/database/models"
	"event-voting-backend/internal/repository"
	"event-voting-backend/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryStore is an in-memory ledger honouring the same uniqueness rules as the database
type memoryStore struct {
	mu       sync.Mutex
	projects map[string]models.Project
	devices  map[string]models.Device
	votes    []models.Vote
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		projects: map[string]models.Project{},
		devices:  map[string]models.Device{},
	}
}

type memoryProjects struct{ *memoryStore }
type memoryDevices struct{ *memoryStore }
type memoryVotes struct{ *memoryStore }

func (s memoryProjects) Create(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; ok {
		return repository.ErrProjectExists
	}
	s.projects[p.ID] = *p
	return nil
}

func (s memoryProjects) GetByID(_ context.Context, id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (s memoryProjects) List(_ context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memoryProjects) Update(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.projects[p.ID] = *p
	return nil
}

func (s memoryProjects) Delete(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return 0, gorm.ErrRecordNotFound
	}
	delete(s.projects, id)
	kept := s.votes[:0]
	var removed int64
	for _, v := range s.votes {
		if v.ProjectID == id {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	s.votes = kept
	return removed, nil
}

func (s memoryProjects) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.projects))
	s.projects = map[string]models.Project{}
	return n, nil
}

func (s memoryDevices) GetByHash(_ context.Context, hash string) (*models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.devices[hash]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (s memoryDevices) Create(_ context.Context, d *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.devices[d.DeviceHash]; ok {
		return repository.ErrDeviceExists
	}
	s.devices[d.DeviceHash] = *d
	return nil
}

func (s memoryDevices) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.devices))
	s.devices = map[string]models.Device{}
	return n, nil
}

func (s memoryVotes) HasVoted(_ context.Context, projectID, deviceHash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasVotedLocked(projectID, deviceHash), nil
}

func (s memoryVotes) hasVotedLocked(projectID, deviceHash string) bool {
	for _, v := range s.votes {
		if v.ProjectID == projectID && v.DeviceHash == deviceHash {
			return true
		}
	}
	return false
}

func (s memoryVotes) Insert(_ context.Context, vote *models.Vote, newDevice *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if newDevice != nil {
		if _, ok := s.devices[newDevice.DeviceHash]; ok {
			return repository.ErrDeviceExists
		}
	}
	if s.hasVotedLocked(vote.ProjectID, vote.DeviceHash) {
		return repository.ErrDuplicateVote
	}
	if newDevice != nil {
		s.devices[newDevice.DeviceHash] = *newDevice
	}
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	s.votes = append(s.votes, *vote)
	return nil
}

func (s memoryVotes) List(_ context.Context, f repository.VoteFilter) ([]models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Vote
	for i := len(s.votes) - 1; i >= 0; i-- {
		v := s.votes[i]
		if f.ProjectID != "" && v.ProjectID != f.ProjectID {
			continue
		}
		if f.MinScore != nil && v.Score < *f.MinScore {
			continue
		}
		if f.MaxScore != nil && v.Score > *f.MaxScore {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s memoryVotes) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.votes {
		if v.ID == id {
			s.votes = append(s.votes[:i], s.votes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s memoryVotes) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.votes))
	s.votes = nil
	return n, nil
}

// staticStatus is a voting switch fixed for the duration of a test
type staticStatus bool

func (s staticStatus) IsVotingEnabled(context.Context) (bool, error) { return bool(s), nil }

func (s staticStatus) GetStatus(context.Context) (*service.VotingStatus, error) {
	return &service.VotingStatus{Enabled: bool(s)}, nil
}

func (s staticStatus) SetStatus(context.Context, bool, service.Actor) (*service.VotingStatus, error) {
	return &service.VotingStatus{Enabled: bool(s)}, nil
}

// recordingActivity collects audit entries
type recordingActivity struct {
	mu      sync.Mutex
	entries []service.ActivityEntry
}

func (r *recordingActivity) Record(_ context.Context, entry service.ActivityEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingActivity) Recent(context.Context, int) ([]service.ActivityLogResponse, error) {
	return nil, nil
}

func (r *recordingActivity) count(typ, action string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Type == typ && e.Action == action {
			n++
		}
	}
	return n
}
