package handlers

import (
	"net/http"

	"practice-plan-backend/internal/auth"
	"practice-plan-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DrillHandler handles HTTP requests for drill operations
type DrillHandler struct {
	drillService service.DrillServiceInterface
}

// NewDrillHandler creates a new drill handler
func NewDrillHandler(drillService service.DrillServiceInterface) *DrillHandler {
	return &DrillHandler{drillService: drillService}
}

// CreateDrill handles POST /drills
// @Summary Create a drill
// @Description Create a custom drill owned by the authenticated user
// @Tags drills
// @Accept json
// @Produce json
// @Param request body service.CreateDrillRequest true "Drill payload"
// @Success 201 {object} service.DrillResponse "Drill created"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a member of the given team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drills [post]
func (h *DrillHandler) CreateDrill(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.CreateDrillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	drill, err := h.drillService.Create(c.Request.Context(), &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, drill)
}

// GetDrill handles GET /drills/:id
// @Summary Get a drill
// @Description Get a drill by ID, subject to its privacy level
// @Tags drills
// @Produce json
// @Param id path string true "Drill ID"
// @Success 200 {object} service.DrillResponse "Drill"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Drill not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drills/{id} [get]
func (h *DrillHandler) GetDrill(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	drill, err := h.drillService.GetByID(c.Request.Context(), id, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drill)
}

// ListDrills handles GET /drills
// @Summary List drills visible to the authenticated user
// @Description List public drills, the user's own drills and team-shared drills, optionally filtered by sport
// @Tags drills
// @Produce json
// @Param sport query string false "Filter by sport"
// @Success 200 {array} service.DrillResponse "Drills"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drills [get]
func (h *DrillHandler) ListDrills(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	drills, err := h.drillService.ListForUser(c.Request.Context(), requesterID, c.Query("sport"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drills)
}

// UpdateDrill handles PUT /drills/:id
// @Summary Update a drill
// @Description Update a drill; only the owner may do so
// @Tags drills
// @Accept json
// @Produce json
// @Param id path string true "Drill ID"
// @Param request body service.UpdateDrillRequest true "Drill payload"
// @Success 200 {object} service.DrillResponse "Drill updated"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Drill not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drills/{id} [put]
func (h *DrillHandler) UpdateDrill(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDrillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	drill, err := h.drillService.Update(c.Request.Context(), id, &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drill)
}

// DeleteDrill handles DELETE /drills/:id
// @Summary Delete a drill
// @Description Delete a drill and its sharing grants; only the owner may do so. Plans referencing the drill keep their items with a placeholder.
// @Tags drills
// @Produce json
// @Param id path string true "Drill ID"
// @Success 204 "Drill deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Drill not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drills/{id} [delete]
func (h *DrillHandler) DeleteDrill(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.drillService.Delete(c.Request.Context(), id, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ShareDrill handles POST /drills/:id/share/:teamId
// @Summary Share a drill with a team
// @Description Grant an additional team visibility into the drill; only the owner may do so
// @Tags drills
// @Produce json
// @Param id path string true "Drill ID"
// @Param teamId path string true "Team ID"
// @Success 204 "Drill shared"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Drill not found"
// @Failure 409 {object} ErrorResponse "Already shared with this team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drills/{id}/share/{teamId} [post]
func (h *DrillHandler) ShareDrill(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	drillID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	if err := h.drillService.Share(c.Request.Context(), drillID, teamID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UnshareDrill handles DELETE /drills/:id/share/:teamId
// @Summary Unshare a drill from a team
// @Tags drills
// @Produce json
// @Param id path string true "Drill ID"
// @Param teamId path string true "Team ID"
// @Success 204 "Drill unshared"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Drill not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drills/{id}/share/{teamId} [delete]
func (h *DrillHandler) UnshareDrill(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	drillID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	if err := h.drillService.Unshare(c.Request.Context(), drillID, teamID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
