package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event-voting-backend/internal/api/handlers"
	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/mocks"
	"event-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VoteHandlerTestSuite defines the test suite for VoteHandler
type VoteHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockVotes  *mocks.MockVoteServiceInterface
	mockStatus *mocks.MockVotingStatusServiceInterface
	handler    *handlers.VoteHandler
	router     *gin.Engine
}

// SetupTest sets up the test suite
func (suite *VoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVotes = mocks.NewMockVoteServiceInterface(suite.ctrl)
	suite.mockStatus = mocks.NewMockVotingStatusServiceInterface(suite.ctrl)
	suite.handler = handlers.NewVoteHandler(suite.mockVotes, suite.mockStatus)
	suite.router = gin.New()
	suite.router.GET("/api/votes/check", suite.handler.CheckEligibility)
	suite.router.GET("/api/votes/status", suite.handler.VotingStatus)
	suite.router.POST("/api/votes", suite.handler.SubmitVote)
}

// TearDownTest cleans up after each test
func (suite *VoteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VoteHandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *VoteHandlerTestSuite) TestCheckEligibility() {
	reason := apperrors.ReasonDuplicateVote
	name := "Alice"
	suite.mockVotes.EXPECT().CheckEligibility(gomock.Any(), "P1", "d1").
		Return(&service.EligibilityResponse{Eligible: false, Reason: &reason, VoterName: &name}, nil)

	w := suite.do(http.MethodGet, "/api/votes/check?projectId=P1&deviceHash=d1", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"eligible":false,"reason":"DUPLICATE_VOTE","voterName":"Alice"}`, w.Body.String())
}

func (suite *VoteHandlerTestSuite) TestCheckEligibility_Errors() {
	suite.mockVotes.EXPECT().CheckEligibility(gomock.Any(), "", "").Return(nil, apperrors.ErrMissingIdentifiers)
	w := suite.do(http.MethodGet, "/api/votes/check", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"projectId and deviceHash are required"}`, w.Body.String())

	suite.mockVotes.EXPECT().CheckEligibility(gomock.Any(), "P1", "d1").
		Return(nil, fmt.Errorf("check: %w", apperrors.NewValidationError("deviceHash", "deviceHash must be valid UTF-8 text")))
	w = suite.do(http.MethodGet, "/api/votes/check?projectId=P1&deviceHash=d1", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"deviceHash must be valid UTF-8 text"}`, w.Body.String())

	suite.mockVotes.EXPECT().CheckEligibility(gomock.Any(), "P9", "d1").Return(nil, apperrors.ErrProjectNotFound)
	w = suite.do(http.MethodGet, "/api/votes/check?projectId=P9&deviceHash=d1", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VoteHandlerTestSuite) TestSubmitVote_Created() {
	suite.mockVotes.EXPECT().SubmitVote(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.SubmitVoteRequest, _ string) (*service.VoteReceipt, error) {
			suite.Equal("P1", req.ProjectID)
			suite.Equal("8", req.Score.String())
			return &service.VoteReceipt{ID: "v1", Message: "Your vote has been recorded successfully.", Timestamp: "2026-01-01T00:00:00.000Z"}, nil
		})

	w := suite.do(http.MethodPost, "/api/votes", `{"projectId":"P1","deviceHash":"d1","voterName":"Alice","score":8}`)
	suite.Equal(http.StatusCreated, w.Code)

	var receipt service.VoteReceipt
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &receipt))
	suite.Equal("v1", receipt.ID)
}

func (suite *VoteHandlerTestSuite) TestSubmitVote_StringScore() {
	suite.mockVotes.EXPECT().SubmitVote(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.SubmitVoteRequest, _ string) (*service.VoteReceipt, error) {
			suite.Equal("7", req.Score.String())
			return &service.VoteReceipt{ID: "v2"}, nil
		})

	w := suite.do(http.MethodPost, "/api/votes", `{"projectId":"P1","deviceHash":"d1","score":"7"}`)
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *VoteHandlerTestSuite) TestSubmitVote_Conflicts() {
	cases := []struct {
		err    error
		reason string
	}{
		{apperrors.ErrDuplicateVote, "DUPLICATE_VOTE"},
		{apperrors.ErrNameLocked, "NAME_LOCKED"},
		{apperrors.ErrVotingClosed, "VOTING_CLOSED"},
	}
	for _, tc := range cases {
		suite.mockVotes.EXPECT().SubmitVote(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

		w := suite.do(http.MethodPost, "/api/votes", `{"projectId":"P1","deviceHash":"d1","score":5}`)
		suite.Equal(http.StatusConflict, w.Code)

		var body handlers.ErrorResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		suite.Equal(tc.reason, body.Reason)
		suite.NotEmpty(body.Error)
	}
}

func (suite *VoteHandlerTestSuite) TestSubmitVote_BadRequests() {
	w := suite.do(http.MethodPost, "/api/votes", `{"projectId":`)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockVotes.EXPECT().SubmitVote(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidScore)
	w = suite.do(http.MethodPost, "/api/votes", `{"projectId":"P1","deviceHash":"d1","score":11}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "between 0 and 10")
}

func (suite *VoteHandlerTestSuite) TestSubmitVote_InternalErrorHidesDetail() {
	suite.mockVotes.EXPECT().SubmitVote(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: connection refused to 10.0.0.3"))

	w := suite.do(http.MethodPost, "/api/votes", `{"projectId":"P1","deviceHash":"d1","score":5}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Internal server error"}`, w.Body.String())
}

func (suite *VoteHandlerTestSuite) TestVotingStatus() {
	suite.mockStatus.EXPECT().GetStatus(gomock.Any()).Return(&service.VotingStatus{Enabled: true}, nil)

	w := suite.do(http.MethodGet, "/api/votes/status", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"enabled":true}`, w.Body.String())
}

func TestVoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoteHandlerTestSuite))
}
