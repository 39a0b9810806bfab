package handlers

import (
	"net/http"

	"practice-plan-backend/internal/auth"
	"practice-plan-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for team invitations
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// InviteMember handles POST /teams/:id/invitations
// @Summary Invite an email address to a team
// @Description Create a pending invitation; any team member may invite. Re-inviting a still-pending email returns the existing invitation.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body service.InviteMemberRequest true "Invitation payload"
// @Success 201 {object} service.InvitationResponse "Invitation created"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Invitee is already a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/invitations [post]
func (h *InvitationHandler) InviteMember(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	teamID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	invitation, err := h.invitationService.Invite(c.Request.Context(), teamID, &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// ListInvitations handles GET /teams/:id/invitations
// @Summary List a team's pending invitations
// @Tags invitations
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} service.InvitationResponse "Pending invitations"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	teamID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListByTeam(c.Request.Context(), teamID, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// RevokeInvitation handles DELETE /teams/:id/invitations/:invitationId
// @Summary Revoke a pending invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Team ID"
// @Param invitationId path string true "Invitation ID"
// @Success 204 "Invitation revoked"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Team or invitation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/invitations/{invitationId} [delete]
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	teamID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	invitationID, ok := pathUUID(c, "invitationId")
	if !ok {
		return
	}

	if err := h.invitationService.Revoke(c.Request.Context(), teamID, invitationID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AcceptInvitation handles POST /invitations/:id/accept
// @Summary Accept an invitation by ID
// @Description Join the team the invitation was issued for. The invitation must match the authenticated user's email and must not be expired.
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} service.AcceptInvitationResponse "Joined the team"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Invitation issued for a different email"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 410 {object} ErrorResponse "Invitation expired"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations/{id}/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	requesterID, email, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	invitationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.invitationService.Accept(c.Request.Context(), invitationID, requesterID, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AcceptInvitationByToken handles POST /invitations/accept
// @Summary Accept an invitation by token
// @Description Join a team using the token from an invitation link
// @Tags invitations
// @Produce json
// @Param token query string true "Invitation token"
// @Success 200 {object} service.AcceptInvitationResponse "Joined the team"
// @Failure 400 {object} ErrorResponse "Missing token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Invitation issued for a different email"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 410 {object} ErrorResponse "Invitation expired"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitationByToken(c *gin.Context) {
	requesterID, email, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "token query parameter is required"})
		return
	}

	result, err := h.invitationService.AcceptByToken(c.Request.Context(), token, requesterID, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PurgeExpired handles POST /maintenance/invitations/purge
// @Summary Purge expired invitations
// @Description Delete all invitations past their expiry and report how many were removed
// @Tags maintenance
// @Produce json
// @Success 200 {object} map[string]interface{} "Purge result"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /maintenance/invitations/purge [post]
func (h *InvitationHandler) PurgeExpired(c *gin.Context) {
	if _, _, err := auth.CurrentUser(c); err != nil {
		respondError(c, err)
		return
	}

	purged, err := h.invitationService.PurgeExpired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purged": purged})
}
