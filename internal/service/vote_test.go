package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"event-voting-backend/internal/database/models"
	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/mocks"
	"event-voting-backend/internal/repository"
	"event-voting-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// VoteServiceTestSuite tests the VoteService against gomock repositories
type VoteServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockDeviceRepo  *mocks.MockDeviceRepositoryInterface
	mockVoteRepo    *mocks.MockVoteRepositoryInterface
	mockStatus      *mocks.MockVotingStatusServiceInterface
	mockActivity    *mocks.MockActivityServiceInterface
	voteService     *service.VoteService
	ctx             context.Context
}

// SetupTest sets up the test suite
func (suite *VoteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockDeviceRepo = mocks.NewMockDeviceRepositoryInterface(suite.ctrl)
	suite.mockVoteRepo = mocks.NewMockVoteRepositoryInterface(suite.ctrl)
	suite.mockStatus = mocks.NewMockVotingStatusServiceInterface(suite.ctrl)
	suite.mockActivity = mocks.NewMockActivityServiceInterface(suite.ctrl)
	suite.voteService = service.NewVoteService(
		suite.mockProjectRepo,
		suite.mockDeviceRepo,
		suite.mockVoteRepo,
		suite.mockStatus,
		suite.mockActivity,
		service.NewValidator(),
	)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *VoteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VoteServiceTestSuite) expectProject(id string) {
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), id).Return(&models.Project{ID: id, TeamNumber: id, Title: "Solar"}, nil)
}

func (suite *VoteServiceTestSuite) request(name, score string) *service.SubmitVoteRequest {
	return &service.SubmitVoteRequest{
		ProjectID:  "P1",
		DeviceHash: "d1-0123456789",
		VoterName:  name,
		Score:      json.Number(score),
	}
}

func (suite *VoteServiceTestSuite) TestCheckEligibility_MissingIdentifiers() {
	_, err := suite.voteService.CheckEligibility(suite.ctx, " ", "d1")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.voteService.CheckEligibility(suite.ctx, "P1", "")
	suite.True(apperrors.IsValidation(err))
}

func (suite *VoteServiceTestSuite) TestCheckEligibility_UnstorableText() {
	for _, hash := range []string{"d1\x00", "\xff\xfe"} {
		_, err := suite.voteService.CheckEligibility(suite.ctx, "P1", hash)
		suite.True(apperrors.IsValidation(err), "hash %q should be rejected", hash)
	}

	_, err := suite.voteService.CheckEligibility(suite.ctx, "P\x001", "d1")
	var invalid *apperrors.ValidationError
	suite.Require().ErrorAs(err, &invalid)
	suite.Equal("projectId", invalid.Field)
}

func (suite *VoteServiceTestSuite) TestCheckEligibility_ProjectNotFound() {
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), "P9").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.voteService.CheckEligibility(suite.ctx, "P9", "d1")
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *VoteServiceTestSuite) TestCheckEligibility_NewDevice() {
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), "d1").Return(nil, gorm.ErrRecordNotFound)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", "d1").Return(false, nil)
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)

	resp, err := suite.voteService.CheckEligibility(suite.ctx, "P1", "d1")
	suite.NoError(err)
	suite.True(resp.Eligible)
	suite.Nil(resp.Reason)
	suite.Nil(resp.VoterName)
}

func (suite *VoteServiceTestSuite) TestCheckEligibility_AlreadyVoted() {
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), "d1").Return(&models.Device{DeviceHash: "d1", VoterName: "Alice"}, nil)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", "d1").Return(true, nil)

	resp, err := suite.voteService.CheckEligibility(suite.ctx, "P1", "d1")
	suite.NoError(err)
	suite.False(resp.Eligible)
	suite.Require().NotNil(resp.Reason)
	suite.Equal(apperrors.ReasonDuplicateVote, *resp.Reason)
	suite.Require().NotNil(resp.VoterName)
	suite.Equal("Alice", *resp.VoterName)
}

func (suite *VoteServiceTestSuite) TestCheckEligibility_VotingClosed() {
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), "d1").Return(nil, gorm.ErrRecordNotFound)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", "d1").Return(false, nil)
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(false, nil)

	resp, err := suite.voteService.CheckEligibility(suite.ctx, "P1", "d1")
	suite.NoError(err)
	suite.False(resp.Eligible)
	suite.Equal(apperrors.ReasonVotingClosed, *resp.Reason)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_NewDevice() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), "d1-0123456789").Return(nil, gorm.ErrRecordNotFound)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", "d1-0123456789").Return(false, nil)
	suite.mockVoteRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, vote *models.Vote, device *models.Device) error {
			suite.Equal("Alice", vote.VoterName)
			suite.Equal(7, vote.Score)
			suite.NotEqual(uuid.Nil, vote.ID)
			suite.Require().NotNil(device)
			suite.Equal("Alice", device.VoterName)
			return nil
		})
	suite.mockActivity.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry service.ActivityEntry) {
			suite.Equal(models.ActivityTypeVote, entry.Type)
			suite.Equal("submit", entry.Action)
			suite.Equal("Alice", entry.Actor.Name)
			suite.Equal("10.0.0.7", entry.Actor.IPAddress)
			suite.Equal("d1-01234...", entry.Details["deviceHash"])
		})

	receipt, err := suite.voteService.SubmitVote(suite.ctx, suite.request("  Alice ", "7"), "10.0.0.7")
	suite.NoError(err)
	suite.Equal("Your vote has been recorded successfully.", receipt.Message)
	suite.NotEmpty(receipt.ID)
	suite.Regexp(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, receipt.Timestamp)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_InvalidScore() {
	for _, score := range []string{"11", "-1", "7.5", "abc", "", "1e1"} {
		_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("Alice", score), "")
		suite.True(apperrors.IsValidation(err), "score %q should be rejected", score)
	}
}

func (suite *VoteServiceTestSuite) TestSubmitVote_MissingIdentifiers() {
	req := suite.request("Alice", "5")
	req.DeviceHash = "  "
	_, err := suite.voteService.SubmitVote(suite.ctx, req, "")
	suite.ErrorIs(err, apperrors.ErrMissingIdentifiers)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_VoterNameTooLong() {
	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request(strings.Repeat("a", 41), "5"), "")
	suite.True(apperrors.IsValidation(err))
}

func (suite *VoteServiceTestSuite) TestSubmitVote_UnstorableText() {
	req := suite.request("Alice", "5")
	req.DeviceHash = "d1\x00"
	_, err := suite.voteService.SubmitVote(suite.ctx, req, "")
	var invalid *apperrors.ValidationError
	suite.Require().ErrorAs(err, &invalid)
	suite.Equal("deviceHash", invalid.Field)
	suite.Equal("deviceHash must be valid UTF-8 text", invalid.Message)

	_, err = suite.voteService.SubmitVote(suite.ctx, suite.request("Al\xffice", "5"), "")
	suite.Require().ErrorAs(err, &invalid)
	suite.Equal("voterName", invalid.Field)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_MultibyteDeviceHash() {
	req := suite.request("Zoë", "6")
	req.DeviceHash = "äöüßéèêëïî"
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), req.DeviceHash).Return(nil, gorm.ErrRecordNotFound)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", req.DeviceHash).Return(false, nil)
	suite.mockVoteRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	suite.mockActivity.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry service.ActivityEntry) {
			suite.Equal("äöüßéèêë...", entry.Details["deviceHash"])
		})

	_, err := suite.voteService.SubmitVote(suite.ctx, req, "")
	suite.NoError(err)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_VotingClosed() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(false, nil)

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("Alice", "5"), "")
	suite.ErrorIs(err, apperrors.ErrVotingClosed)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_ProjectNotFound() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), "P1").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("Alice", "5"), "")
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_NameLocked() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(&models.Device{VoterName: "Alice"}, nil)

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("Bob", "5"), "")
	suite.ErrorIs(err, apperrors.ErrNameLocked)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_NameRequiredForNewDevice() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("", "5"), "")
	suite.ErrorIs(err, apperrors.ErrVoterNameRequired)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_DuplicateFromRecheck() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(&models.Device{VoterName: "Alice"}, nil)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", gomock.Any()).Return(true, nil)

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("", "5"), "")
	suite.ErrorIs(err, apperrors.ErrDuplicateVote)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_DuplicateFromConstraint() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(&models.Device{VoterName: "Alice"}, nil)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", gomock.Any()).Return(false, nil)
	suite.mockVoteRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), nil).Return(repository.ErrDuplicateVote)

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("Alice", "5"), "")
	suite.ErrorIs(err, apperrors.ErrDuplicateVote)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_DeviceRegistrationRace() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	gomock.InOrder(
		suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound),
		suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(&models.Device{VoterName: "Alice"}, nil),
	)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", gomock.Any()).Return(false, nil).Times(2)
	gomock.InOrder(
		suite.mockVoteRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).Return(repository.ErrDeviceExists),
		suite.mockVoteRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil),
	)
	suite.mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

	receipt, err := suite.voteService.SubmitVote(suite.ctx, suite.request("Alice", "5"), "")
	suite.NoError(err)
	suite.NotNil(receipt)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_DeviceRaceWithOtherName() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	gomock.InOrder(
		suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound),
		suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(&models.Device{VoterName: "Alice"}, nil),
	)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", gomock.Any()).Return(false, nil)
	suite.mockVoteRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrDeviceExists)

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("Bob", "5"), "")
	suite.ErrorIs(err, apperrors.ErrNameLocked)
}

func (suite *VoteServiceTestSuite) TestSubmitVote_StorageFailure() {
	suite.mockStatus.EXPECT().IsVotingEnabled(gomock.Any()).Return(true, nil)
	suite.expectProject("P1")
	suite.mockDeviceRepo.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(&models.Device{VoterName: "Alice"}, nil)
	suite.mockVoteRepo.EXPECT().HasVoted(gomock.Any(), "P1", gomock.Any()).Return(false, nil)
	suite.mockVoteRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := suite.voteService.SubmitVote(suite.ctx, suite.request("", "5"), "")
	suite.Error(err)
	suite.False(apperrors.IsConflict(err))
	suite.False(apperrors.IsValidation(err))
}

func (suite *VoteServiceTestSuite) TestDeleteVote() {
	err := suite.voteService.DeleteVote(suite.ctx, "not-a-uuid", service.Actor{})
	suite.True(apperrors.IsValidation(err))

	missing := uuid.New()
	suite.mockVoteRepo.EXPECT().DeleteByID(gomock.Any(), missing).Return(false, nil)
	err = suite.voteService.DeleteVote(suite.ctx, missing.String(), service.Actor{})
	suite.ErrorIs(err, apperrors.ErrVoteNotFound)

	existing := uuid.New()
	suite.mockVoteRepo.EXPECT().DeleteByID(gomock.Any(), existing).Return(true, nil)
	suite.mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())
	err = suite.voteService.DeleteVote(suite.ctx, existing.String(), service.Actor{Name: "admin@example.com"})
	suite.NoError(err)
}

func TestVoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoteServiceTestSuite))
}

func TestParseScore(t *testing.T) {
	valid := map[string]int{"0": 0, "7": 7, "10": 10, " 3 ": 3}
	for raw, want := range valid {
		got, err := service.ParseScore(json.Number(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "11", "-1", "7.0", "7.5", "seven"} {
		_, err := service.ParseScore(json.Number(raw))
		assert.True(t, apperrors.IsValidation(err), raw)
	}
}

func newScenarioVoteService(store *memoryStore, open bool, activity *recordingActivity) *service.VoteService {
	return service.NewVoteService(
		memoryProjects{store},
		memoryDevices{store},
		memoryVotes{store},
		staticStatus(open),
		activity,
		service.NewValidator(),
	)
}

// One device, two projects: the name sticks to the device and each project takes one vote
func TestVotingScenario_NameLockAcrossProjects(t *testing.T) {
	store := newMemoryStore()
	store.projects["P1"] = models.Project{ID: "P1", TeamNumber: "P1", Title: "Solar"}
	store.projects["P2"] = models.Project{ID: "P2", TeamNumber: "P2", Title: "Wind"}
	activity := &recordingActivity{}
	svc := newScenarioVoteService(store, true, activity)
	ctx := context.Background()

	submit := func(project, name, score string) error {
		_, err := svc.SubmitVote(ctx, &service.SubmitVoteRequest{
			ProjectID: project, DeviceHash: "d1", VoterName: name, Score: json.Number(score),
		}, "127.0.0.1")
		return err
	}

	require.NoError(t, submit("P1", "Alice", "8"))
	assert.ErrorIs(t, submit("P2", "Bob", "6"), apperrors.ErrNameLocked)
	require.NoError(t, submit("P2", "", "6"))
	assert.ErrorIs(t, submit("P1", "Alice", "9"), apperrors.ErrDuplicateVote)

	require.Len(t, store.votes, 2)
	for _, v := range store.votes {
		assert.Equal(t, "Alice", v.VoterName)
	}
	assert.Equal(t, "Alice", store.devices["d1"].VoterName)
	assert.Equal(t, 2, activity.count(models.ActivityTypeVote, "submit"))

	elig, err := svc.CheckEligibility(ctx, "P2", "d1")
	require.NoError(t, err)
	assert.False(t, elig.Eligible)
	assert.Equal(t, "Alice", *elig.VoterName)

	again, err := svc.CheckEligibility(ctx, "P2", "d1")
	require.NoError(t, err)
	assert.Equal(t, elig, again)
}

func TestVotingScenario_ConcurrentSubmissions(t *testing.T) {
	store := newMemoryStore()
	store.projects["P1"] = models.Project{ID: "P1", TeamNumber: "P1", Title: "Solar"}
	svc := newScenarioVoteService(store, true, &recordingActivity{})
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitVote(ctx, &service.SubmitVoteRequest{
				ProjectID: "P1", DeviceHash: "d1", VoterName: "Alice", Score: json.Number("5"),
			}, "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperrors.ErrDuplicateVote):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, duplicates)
	assert.Len(t, store.votes, 1)
}
