//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"event-voting-backend/internal/database/models"
	"event-voting-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// VoteRepositoryTestSuite tests the VoteRepository
type VoteRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VoteRepository
	projectRepo   *ProjectRepository
	deviceRepo    *DeviceRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *VoteRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewVoteRepository(suite.baseTestSuite.DB)
	suite.projectRepo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.deviceRepo = NewDeviceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *VoteRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VoteRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VoteRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *VoteRepositoryTestSuite) createProject(id, title, department, sector string) *models.Project {
	project := suite.factories.Project.WithID(id)
	project.Title = title
	project.Department = department
	project.Sector = sector
	suite.Require().NoError(suite.projectRepo.Create(suite.ctx, project))
	return project
}

func (suite *VoteRepositoryTestSuite) TestInsertWithNewDevice() {
	project := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	device := suite.factories.Device.WithName("Alice")

	vote := suite.factories.Vote.Create(project, device, 8)
	suite.NoError(suite.repo.Insert(suite.ctx, vote, device))

	stored, err := suite.deviceRepo.GetByHash(suite.ctx, device.DeviceHash)
	suite.NoError(err)
	suite.Equal("Alice", stored.VoterName)

	voted, err := suite.repo.HasVoted(suite.ctx, "T1", device.DeviceHash)
	suite.NoError(err)
	suite.True(voted)
}

func (suite *VoteRepositoryTestSuite) TestInsertDuplicateVote() {
	project := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	device := suite.factories.Device.Create()
	suite.NoError(suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(project, device, 8), device))

	err := suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(project, device, 3), nil)
	suite.ErrorIs(err, ErrDuplicateVote)

	votes, err := suite.repo.List(suite.ctx, VoteFilter{ProjectID: "T1"})
	suite.NoError(err)
	suite.Len(votes, 1)
	suite.Equal(8, votes[0].Score)
}

func (suite *VoteRepositoryTestSuite) TestInsertExistingDeviceRollsBack() {
	project := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	device := suite.factories.Device.Create()
	suite.NoError(suite.deviceRepo.Create(suite.ctx, device))

	err := suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(project, device, 5), device)
	suite.ErrorIs(err, ErrDeviceExists)

	voted, err := suite.repo.HasVoted(suite.ctx, "T1", device.DeviceHash)
	suite.NoError(err)
	suite.False(voted)
}

func (suite *VoteRepositoryTestSuite) TestConcurrentInsertsKeepOneVote() {
	project := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	device := suite.factories.Device.Create()
	suite.Require().NoError(suite.deviceRepo.Create(suite.ctx, device))

	const workers = 10
	var wg sync.WaitGroup
	var succeeded, duplicates atomic.Int32

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			err := suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(project, device, score), nil)
			switch err {
			case nil:
				succeeded.Add(1)
			case ErrDuplicateVote:
				duplicates.Add(1)
			}
		}(i)
	}
	wg.Wait()

	suite.Equal(int32(1), succeeded.Load())
	suite.Equal(int32(workers-1), duplicates.Load())

	votes, err := suite.repo.List(suite.ctx, VoteFilter{ProjectID: "T1"})
	suite.NoError(err)
	suite.Len(votes, 1)
}

func (suite *VoteRepositoryTestSuite) TestListScoreAndTimeFilters() {
	project := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	for _, score := range []int{5, 7, 9, 10} {
		device := suite.factories.Device.Create()
		suite.NoError(suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(project, device, score), device))
	}

	minScore := 8
	votes, err := suite.repo.List(suite.ctx, VoteFilter{MinScore: &minScore})
	suite.NoError(err)
	suite.Len(votes, 2)

	maxScore := 6
	votes, err = suite.repo.List(suite.ctx, VoteFilter{MaxScore: &maxScore})
	suite.NoError(err)
	suite.Len(votes, 1)

	future := time.Now().Add(time.Hour)
	votes, err = suite.repo.List(suite.ctx, VoteFilter{From: &future})
	suite.NoError(err)
	suite.Empty(votes)
}

func (suite *VoteRepositoryTestSuite) TestListJoinedFilters() {
	solar := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	wind := suite.createProject("T2", "Wind_Farm 100%", "Research", "Utilities")

	alice := suite.factories.Device.WithName("Alice")
	bob := suite.factories.Device.WithName("Bob")
	suite.NoError(suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(solar, alice, 9), alice))
	suite.NoError(suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(wind, alice, 4), nil))
	suite.NoError(suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(solar, bob, 6), bob))

	rows, err := suite.repo.ListJoined(suite.ctx, VoteFilter{})
	suite.NoError(err)
	suite.Len(rows, 3)
	for _, row := range rows {
		suite.True(row.ProjectFound)
		suite.NotEmpty(row.ProjectTitle)
	}

	rows, err = suite.repo.ListJoined(suite.ctx, VoteFilter{ProjectTitle: "solar"})
	suite.NoError(err)
	suite.Len(rows, 2)

	rows, err = suite.repo.ListJoined(suite.ctx, VoteFilter{ProjectTitle: "100%"})
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal("T2", rows[0].ProjectID)

	rows, err = suite.repo.ListJoined(suite.ctx, VoteFilter{ProjectTitle: "d_f"})
	suite.NoError(err)
	suite.Len(rows, 1)

	rows, err = suite.repo.ListJoined(suite.ctx, VoteFilter{TeamNumber: "T5"})
	suite.NoError(err)
	suite.Empty(rows)

	rows, err = suite.repo.ListJoined(suite.ctx, VoteFilter{VoterName: "ALI", Department: "eng"})
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal("Solar Roof", rows[0].ProjectTitle)
	suite.Equal("Engineering", rows[0].Department)
	suite.Equal("Energy", rows[0].Sector)
}

func (suite *VoteRepositoryTestSuite) TestDeleteByIDAndProject() {
	project := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	d1 := suite.factories.Device.Create()
	d2 := suite.factories.Device.Create()
	v1 := suite.factories.Vote.Create(project, d1, 5)
	suite.NoError(suite.repo.Insert(suite.ctx, v1, d1))
	suite.NoError(suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(project, d2, 6), d2))

	deleted, err := suite.repo.DeleteByID(suite.ctx, v1.ID)
	suite.NoError(err)
	suite.True(deleted)

	deleted, err = suite.repo.DeleteByID(suite.ctx, uuid.New())
	suite.NoError(err)
	suite.False(deleted)

	voted, err := suite.repo.HasVoted(suite.ctx, "T1", d1.DeviceHash)
	suite.NoError(err)
	suite.False(voted)

	voted, err = suite.repo.HasVoted(suite.ctx, "T1", d2.DeviceHash)
	suite.NoError(err)
	suite.True(voted)
}

func (suite *VoteRepositoryTestSuite) TestDeleteAllInOrder() {
	project := suite.createProject("T1", "Solar Roof", "Engineering", "Energy")
	device := suite.factories.Device.Create()
	suite.NoError(suite.repo.Insert(suite.ctx, suite.factories.Vote.Create(project, device, 5), device))

	votes, err := suite.repo.DeleteAll(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), votes)

	devices, err := suite.deviceRepo.DeleteAll(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), devices)

	projects, err := suite.projectRepo.DeleteAll(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), projects)
}

func TestVoteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VoteRepositoryTestSuite))
}
