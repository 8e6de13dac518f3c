package handlers

import (
	"net/http"

	"event-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VoteHandler serves the voter-facing endpoints
type VoteHandler struct {
	voteService   service.VoteServiceInterface
	statusService service.VotingStatusServiceInterface
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(voteService service.VoteServiceInterface, statusService service.VotingStatusServiceInterface) *VoteHandler {
	return &VoteHandler{
		voteService:   voteService,
		statusService: statusService,
	}
}

// CheckEligibility handles GET /api/votes/check
// @Summary Check vote eligibility
// @Description Report whether a device may vote for a project, and the name locked to the device if any
// @Tags votes
// @Produce json
// @Param projectId query string true "Project id (team number)"
// @Param deviceHash query string true "Device fingerprint"
// @Success 200 {object} service.EligibilityResponse
// @Failure 400 {object} ErrorResponse "projectId and deviceHash are required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/votes/check [get]
func (h *VoteHandler) CheckEligibility(c *gin.Context) {
	resp, err := h.voteService.CheckEligibility(c, c.Query("projectId"), c.Query("deviceHash"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitVote handles POST /api/votes
// @Summary Submit a vote
// @Description Record a score for a project from a device. A device votes at most once per project.
// @Tags votes
// @Accept json
// @Produce json
// @Param vote body service.SubmitVoteRequest true "Vote"
// @Success 201 {object} service.VoteReceipt
// @Failure 400 {object} ErrorResponse "Invalid vote"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Duplicate vote, name locked or voting closed"
// @Failure 429 {object} ErrorResponse "Too many votes from this IP"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/votes [post]
func (h *VoteHandler) SubmitVote(c *gin.Context) {
	var req service.SubmitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	receipt, err := h.voteService.SubmitVote(c, &req, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// VotingStatus handles GET /api/votes/status
// @Summary Get voting status
// @Description Report whether voting is currently open
// @Tags votes
// @Produce json
// @Success 200 {object} service.VotingStatus
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/votes/status [get]
func (h *VoteHandler) VotingStatus(c *gin.Context) {
	status, err := h.statusService.GetStatus(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
