package handlers

import (
	"net/http"
	"strconv"

	"event-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin reporting and control endpoints
type AdminHandler struct {
	reportService   service.ReportServiceInterface
	voteService     service.VoteServiceInterface
	statusService   service.VotingStatusServiceInterface
	activityService service.ActivityServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	reportService service.ReportServiceInterface,
	voteService service.VoteServiceInterface,
	statusService service.VotingStatusServiceInterface,
	activityService service.ActivityServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		reportService:   reportService,
		voteService:     voteService,
		statusService:   statusService,
		activityService: activityService,
	}
}

// ListVotes handles GET /api/admin/votes
// @Summary Query votes
// @Description Filter votes by project attributes, voter name and score range, with count, total and average
// @Tags admin
// @Produce json
// @Param projectTitle query string false "Case-insensitive substring of the project title"
// @Param teamNumber query string false "Exact team number"
// @Param department query string false "Case-insensitive substring of the department"
// @Param sector query string false "Case-insensitive substring of the sector"
// @Param voterName query string false "Case-insensitive substring of the voter name"
// @Param minScore query int false "Minimum score, inclusive"
// @Param maxScore query int false "Maximum score, inclusive"
// @Success 200 {object} service.VoteReport
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/admin/votes [get]
func (h *AdminHandler) ListVotes(c *gin.Context) {
	var query service.VoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	report, err := h.reportService.QueryVotes(c, &query, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteVote handles DELETE /api/admin/votes/:voteId
// @Summary Delete a vote
// @Tags admin
// @Param voteId path string true "Vote id (UUID)"
// @Success 204 "Vote deleted"
// @Failure 400 {object} ErrorResponse "Invalid vote id"
// @Failure 404 {object} ErrorResponse "Vote not found"
// @Security BearerAuth
// @Router /api/admin/votes/{voteId} [delete]
func (h *AdminHandler) DeleteVote(c *gin.Context) {
	if err := h.voteService.DeleteVote(c, c.Param("voteId"), actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetVotingStatus handles PUT /api/admin/voting-status
// @Summary Open or close voting
// @Tags admin
// @Accept json
// @Produce json
// @Param status body service.SetVotingStatusRequest true "Voting status"
// @Success 200 {object} service.VotingStatus
// @Failure 400 {object} ErrorResponse "enabled is required"
// @Security BearerAuth
// @Router /api/admin/voting-status [put]
func (h *AdminHandler) SetVotingStatus(c *gin.Context) {
	var req service.SetVotingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "enabled is required"})
		return
	}

	status, err := h.statusService.SetStatus(c, *req.Enabled, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ActivityLogs handles GET /api/admin/activity-logs
// @Summary Recent activity
// @Description Newest audit entries first
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum entries (default 200, max 1000)"
// @Success 200 {array} service.ActivityLogResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Security BearerAuth
// @Router /api/admin/activity-logs [get]
func (h *AdminHandler) ActivityLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	logs, err := h.activityService.Recent(c, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
