package handlers

import (
	"net/http"

	"practice-plan-backend/internal/auth"
	"practice-plan-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler handles HTTP requests for training plan operations
type PlanHandler struct {
	planService service.PlanServiceInterface
}

// NewPlanHandler creates a new training plan handler
func NewPlanHandler(planService service.PlanServiceInterface) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// CreatePlan handles POST /plans
// @Summary Create a training plan
// @Description Create a plan owned by the authenticated user, optionally with initial drills
// @Tags plans
// @Accept json
// @Produce json
// @Param request body service.CreatePlanRequest true "Plan payload"
// @Success 201 {object} service.PlanResponse "Plan created"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Referenced drill not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /plans/:id
// @Summary Get a training plan
// @Description Get a plan with its ordered items, subject to its privacy level
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} service.PlanResponse "Plan"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	plan, err := h.planService.GetByID(c.Request.Context(), id, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlans handles GET /plans
// @Summary List training plans visible to the authenticated user
// @Description List owned plans, team plans and plans shared with the user's teams
// @Tags plans
// @Produce json
// @Success 200 {array} service.PlanResponse "Plans"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	plans, err := h.planService.ListForUser(c.Request.Context(), requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdatePlan handles PUT /plans/:id
// @Summary Update a training plan's metadata
// @Description Update title, sport, target duration and privacy; only the owner may do so
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body service.UpdatePlanRequest true "Plan payload"
// @Success 200 {object} service.PlanResponse "Plan updated"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	plan, err := h.planService.Update(c.Request.Context(), id, &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /plans/:id
// @Summary Delete a training plan
// @Description Delete a plan with its items and sharing grants; only the owner may do so
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 204 "Plan deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.planService.Delete(c.Request.Context(), id, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddDrill handles POST /plans/:id/items
// @Summary Add a drill to a plan
// @Description Append a drill to the plan, or insert it at a position shifting later items; duration is snapshotted from the drill unless overridden
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body service.AddDrillRequest true "Item payload"
// @Success 200 {object} service.PlanResponse "Plan with updated items"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan or drill not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id}/items [post]
func (h *PlanHandler) AddDrill(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.AddDrillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	plan, err := h.planService.AddDrill(c.Request.Context(), planID, &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ReorderItems handles PUT /plans/:id/items/order
// @Summary Reorder a plan's items
// @Description Reassign positions to match the given item ID order; the list must be an exact permutation of the plan's current items
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body service.ReorderRequest true "New item order"
// @Success 200 {object} service.PlanResponse "Plan with reordered items"
// @Failure 400 {object} ErrorResponse "Not a permutation of the current items"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id}/items/order [put]
func (h *PlanHandler) ReorderItems(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	plan, err := h.planService.Reorder(c.Request.Context(), planID, &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// RemoveItem handles DELETE /plans/:id/items/:itemId
// @Summary Remove an item from a plan
// @Description Remove one item and compact the remaining positions
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} service.PlanResponse "Plan with remaining items"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan or item not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id}/items/{itemId} [delete]
func (h *PlanHandler) RemoveItem(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	plan, err := h.planService.RemoveItem(c.Request.Context(), planID, itemID, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ReplaceItems handles PUT /plans/:id/items
// @Summary Replace a plan's item list
// @Description Atomically swap the plan's full item list for the given one; an empty list clears the plan
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body service.ReplaceItemsRequest true "New item list"
// @Success 200 {object} service.PlanResponse "Plan with replaced items"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan or drill not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id}/items [put]
func (h *PlanHandler) ReplaceItems(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	plan, err := h.planService.ReplaceItems(c.Request.Context(), planID, &req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SharePlan handles POST /plans/:id/share/:teamId
// @Summary Share a plan with a team
// @Description Grant an additional team visibility into the plan; only the owner may do so
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Param teamId path string true "Team ID"
// @Success 204 "Plan shared"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 409 {object} ErrorResponse "Already shared with this team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id}/share/{teamId} [post]
func (h *PlanHandler) SharePlan(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	if err := h.planService.Share(c.Request.Context(), planID, teamID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UnsharePlan handles DELETE /plans/:id/share/:teamId
// @Summary Unshare a plan from a team
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Param teamId path string true "Team ID"
// @Success 204 "Plan unshared"
// @Failure 400 {object} ErrorResponse "Invalid ID format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /plans/{id}/share/{teamId} [delete]
func (h *PlanHandler) UnsharePlan(c *gin.Context) {
	requesterID, _, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	if err := h.planService.Unshare(c.Request.Context(), planID, teamID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
