package handlers

import (
	"net/http"

	"practice-plan-backend/internal/auth"
	"practice-plan-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team owned by the authenticated user, who becomes its first member
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.CreateTeamRequest true "Team payload"
// @Success 201 {object} service.TeamResponse "Team created"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get a team
// @Description Get a team by ID; only members can see it
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List the authenticated user's teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	teams, err := h.teamService.ListForUser(c.Request.Context(), requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Rename a team
// @Description Rename a team; only the creator may do so
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body service.UpdateTeamRequest true "Team payload"
// @Success 200 {object} service.TeamResponse "Team updated"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the team creator"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team with its memberships, invitations and sharing grants; only the creator may do so. Teams still referenced by drills or plans are refused.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "Team deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the team creator"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team still referenced"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /teams/:id/members
// @Summary List team members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} service.TeamMemberResponse "Members"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	members, err := h.teamService.ListMembers(c.Request.Context(), id, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// RemoveMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a member from a team
// @Description Remove a member; only the creator may do so, and the creator cannot be removed
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Param userId path string true "User ID"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the team creator"
// @Failure 404 {object} ErrorResponse "Team or member not found"
// @Failure 409 {object} ErrorResponse "Creator cannot be removed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	teamID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(c.Request.Context(), teamID, userID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LeaveTeam handles POST /teams/:id/leave
// @Summary Leave a team
// @Description Remove the authenticated user's own membership; the creator cannot leave
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "Left the team"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Creator cannot leave"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/leave [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Leave(c.Request.Context(), id, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
