package service

import (
	"context"
	"errors"
	"time"

	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnknownDrillTitle is shown for plan items whose drill has since been
// deleted. The item keeps its duration snapshot.
const UnknownDrillTitle = "Unknown Drill"

// PlanService handles business logic for training plans and their items
type PlanService struct {
	repo            repository.PlanRepositoryInterface
	memberRepo      repository.TeamMemberRepositoryInterface
	accessRepo      repository.TeamPlanAccessRepositoryInterface
	drillRepo       repository.DrillRepositoryInterface
	drillAccessRepo repository.TeamDrillAccessRepositoryInterface
	validator       *validator.Validate
}

// NewPlanService creates a new training plan service
func NewPlanService(repo repository.PlanRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, accessRepo repository.TeamPlanAccessRepositoryInterface, drillRepo repository.DrillRepositoryInterface, drillAccessRepo repository.TeamDrillAccessRepositoryInterface, validator *validator.Validate) *PlanService {
	return &PlanService{
		repo:            repo,
		memberRepo:      memberRepo,
		accessRepo:      accessRepo,
		drillRepo:       drillRepo,
		drillAccessRepo: drillAccessRepo,
		validator:       validator,
	}
}

// PlanItemRequest represents one drill entry when creating or replacing plan
// items. DurationMinutes overrides the snapshot taken from the drill.
type PlanItemRequest struct {
	DrillID         uuid.UUID `json:"drill_id" validate:"required"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" validate:"omitempty,min=0"`
}

// CreatePlanRequest represents the request to create a training plan
type CreatePlanRequest struct {
	Title           string              `json:"title" validate:"required,min=1,max=200"`
	Sport           string              `json:"sport" validate:"required,max=50"`
	DurationMinutes int                 `json:"duration_minutes" validate:"min=0"`
	PrivacyLevel    models.PrivacyLevel `json:"privacy_level" validate:"required"`
	TeamID          *uuid.UUID          `json:"team_id,omitempty"`
	Items           []PlanItemRequest   `json:"items,omitempty" validate:"dive"`
}

// UpdatePlanRequest represents the request to update a training plan's
// metadata. Items are managed through the item operations.
type UpdatePlanRequest struct {
	Title           string              `json:"title" validate:"required,min=1,max=200"`
	Sport           string              `json:"sport" validate:"required,max=50"`
	DurationMinutes int                 `json:"duration_minutes" validate:"min=0"`
	PrivacyLevel    models.PrivacyLevel `json:"privacy_level" validate:"required"`
	TeamID          *uuid.UUID          `json:"team_id,omitempty"`
}

// AddDrillRequest represents the request to add a drill to a plan. Position
// defaults to the end of the plan.
type AddDrillRequest struct {
	DrillID         uuid.UUID `json:"drill_id" validate:"required"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" validate:"omitempty,min=0"`
	Position        *int      `json:"position,omitempty" validate:"omitempty,min=0"`
}

// ReorderRequest represents the request to reorder a plan's items. ItemIDs
// must be an exact permutation of the plan's current item IDs, which for an
// empty plan is the empty list.
type ReorderRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids"`
}

// ReplaceItemsRequest represents the request to replace a plan's item list
type ReplaceItemsRequest struct {
	Items []PlanItemRequest `json:"items" validate:"dive"`
}

// PlanItemResponse represents one item in a plan response. DrillTitle falls
// back to a placeholder when the drill no longer exists.
type PlanItemResponse struct {
	ID               uuid.UUID `json:"id"`
	DrillID          uuid.UUID `json:"drill_id"`
	Position         int       `json:"position"`
	DurationMinutes  int       `json:"duration_minutes"`
	DrillTitle       string    `json:"drill_title"`
	DrillDescription string    `json:"drill_description,omitempty"`
	DrillMissing     bool      `json:"drill_missing,omitempty"`
}

// PlanResponse represents the response for training plan operations.
// TotalDurationMinutes is the sum of item snapshots and may differ from the
// target DurationMinutes.
type PlanResponse struct {
	ID                   uuid.UUID           `json:"id"`
	Title                string              `json:"title"`
	Sport                string              `json:"sport"`
	DurationMinutes      int                 `json:"duration_minutes"`
	TotalDurationMinutes int                 `json:"total_duration_minutes"`
	UserID               uuid.UUID           `json:"user_id"`
	PrivacyLevel         models.PrivacyLevel `json:"privacy_level"`
	TeamID               *uuid.UUID          `json:"team_id,omitempty"`
	Shared               bool                `json:"shared"`
	Items                []PlanItemResponse  `json:"items"`
	CreatedAt            string              `json:"created_at"`
	UpdatedAt            string              `json:"updated_at"`
}

// Create creates a training plan owned by the requester, with any initial
// items written atomically with the plan itself
func (s *PlanService) Create(ctx context.Context, req *CreatePlanRequest, requesterID uuid.UUID) (*PlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := validatePrivacy(ctx, req.PrivacyLevel, req.TeamID, requesterID, s.memberRepo); err != nil {
		return nil, err
	}

	items := make([]models.PlanItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := s.buildItem(ctx, &itemReq, requesterID)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	plan := &models.TrainingPlan{
		Title:           req.Title,
		Sport:           req.Sport,
		DurationMinutes: req.DurationMinutes,
		UserID:          requesterID,
		PrivacyLevel:    req.PrivacyLevel,
		TeamID:          req.TeamID,
		Items:           items,
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, wrapStorage("create plan", err)
	}

	return s.loadResponse(ctx, plan.ID, requesterID)
}

// GetByID retrieves a plan the requester may view. Hidden plans surface as
// NotFound.
func (s *PlanService) GetByID(ctx context.Context, id, requesterID uuid.UUID) (*PlanResponse, error) {
	if _, err := s.visiblePlan(ctx, id, requesterID); err != nil {
		return nil, err
	}
	return s.loadResponse(ctx, id, requesterID)
}

// ListForUser retrieves every plan visible to the user: plans they own,
// team-scoped plans of their teams, and plans shared with their teams.
// Duplicates are collapsed by plan ID.
func (s *PlanService) ListForUser(ctx context.Context, userID uuid.UUID) ([]PlanResponse, error) {
	owned, err := s.repo.ListOwned(ctx, userID)
	if err != nil {
		return nil, wrapStorage("list owned plans", err)
	}

	teamIDs, err := s.memberRepo.GetTeamIDsForUser(ctx, userID)
	if err != nil {
		return nil, wrapStorage("list user teams", err)
	}

	teamPlans, err := s.repo.ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, wrapStorage("list team plans", err)
	}

	grantedIDs, err := s.accessRepo.ListPlanIDsForTeams(ctx, teamIDs)
	if err != nil {
		return nil, wrapStorage("list plan grants", err)
	}
	granted, err := s.repo.ListByIDs(ctx, grantedIDs)
	if err != nil {
		return nil, wrapStorage("list shared plans", err)
	}

	seen := make(map[uuid.UUID]bool, len(owned)+len(teamPlans)+len(granted))
	responses := make([]PlanResponse, 0, len(owned)+len(teamPlans)+len(granted))
	appendPlans := func(plans []models.TrainingPlan) {
		for i := range plans {
			if seen[plans[i].ID] {
				continue
			}
			seen[plans[i].ID] = true
			responses = append(responses, *s.toResponse(&plans[i], plans[i].UserID != userID))
		}
	}
	appendPlans(owned)
	appendPlans(teamPlans)
	appendPlans(granted)

	return responses, nil
}

// Update updates a plan's metadata. Owner-only.
func (s *PlanService) Update(ctx context.Context, id uuid.UUID, req *UpdatePlanRequest, requesterID uuid.UUID) (*PlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	plan, err := s.ownedPlan(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if err := validatePrivacy(ctx, req.PrivacyLevel, req.TeamID, requesterID, s.memberRepo); err != nil {
		return nil, err
	}

	plan.Title = req.Title
	plan.Sport = req.Sport
	plan.DurationMinutes = req.DurationMinutes
	plan.PrivacyLevel = req.PrivacyLevel
	plan.TeamID = req.TeamID

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, wrapStorage("update plan", err)
	}
	return s.loadResponse(ctx, id, requesterID)
}

// Delete deletes a plan together with its items and sharing grants.
// Owner-only.
func (s *PlanService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	if _, err := s.ownedPlan(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return wrapStorage("delete plan", err)
	}
	return nil
}

// AddDrill adds a drill to the plan, at the given position or at the end.
// The drill must be visible to the requester; its duration is snapshotted
// onto the item. Owner-only.
func (s *PlanService) AddDrill(ctx context.Context, planID uuid.UUID, req *AddDrillRequest, requesterID uuid.UUID) (*PlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.ownedPlan(ctx, planID, requesterID); err != nil {
		return nil, err
	}

	item, err := s.buildItem(ctx, &PlanItemRequest{DrillID: req.DrillID, DurationMinutes: req.DurationMinutes}, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddItem(ctx, planID, item, req.Position); err != nil {
		return nil, wrapStorage("add plan item", err)
	}
	return s.loadResponse(ctx, planID, requesterID)
}

// Reorder reassigns item positions to match the given permutation of the
// plan's item IDs. Owner-only.
func (s *PlanService) Reorder(ctx context.Context, planID uuid.UUID, req *ReorderRequest, requesterID uuid.UUID) (*PlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.ownedPlan(ctx, planID, requesterID); err != nil {
		return nil, err
	}

	if err := s.repo.Reorder(ctx, planID, req.ItemIDs); err != nil {
		if errors.Is(err, apperrors.ErrInvalidOrder) {
			return nil, apperrors.ErrInvalidOrder
		}
		return nil, wrapStorage("reorder plan items", err)
	}
	return s.loadResponse(ctx, planID, requesterID)
}

// RemoveItem removes one item from the plan and compacts the remaining
// positions. Owner-only.
func (s *PlanService) RemoveItem(ctx context.Context, planID, itemID, requesterID uuid.UUID) (*PlanResponse, error) {
	if _, err := s.ownedPlan(ctx, planID, requesterID); err != nil {
		return nil, err
	}

	if err := s.repo.RemoveItem(ctx, planID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanItemNotFound
		}
		return nil, wrapStorage("remove plan item", err)
	}
	return s.loadResponse(ctx, planID, requesterID)
}

// ReplaceItems swaps the plan's full item list for the given one, atomically.
// Owner-only. An empty list clears the plan.
func (s *PlanService) ReplaceItems(ctx context.Context, planID uuid.UUID, req *ReplaceItemsRequest, requesterID uuid.UUID) (*PlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.ownedPlan(ctx, planID, requesterID); err != nil {
		return nil, err
	}

	items := make([]models.PlanItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := s.buildItem(ctx, &itemReq, requesterID)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := s.repo.ReplaceItems(ctx, planID, items); err != nil {
		return nil, wrapStorage("replace plan items", err)
	}
	return s.loadResponse(ctx, planID, requesterID)
}

// Share grants an additional team visibility into the plan. Owner-only.
func (s *PlanService) Share(ctx context.Context, planID, teamID, requesterID uuid.UUID) error {
	if _, err := s.ownedPlan(ctx, planID, requesterID); err != nil {
		return err
	}

	existing, err := s.accessRepo.GetByTeamAndPlan(ctx, teamID, planID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return wrapStorage("check plan grant", err)
	}
	if existing != nil {
		return apperrors.ErrPlanAccessExists
	}

	grant := &models.TeamPlanAccess{TeamID: teamID, TrainingPlanID: planID}
	if err := s.accessRepo.Create(ctx, grant); err != nil {
		return wrapStorage("share plan", err)
	}
	return nil
}

// Unshare revokes a team's grant on the plan. Owner-only.
func (s *PlanService) Unshare(ctx context.Context, planID, teamID, requesterID uuid.UUID) error {
	if _, err := s.ownedPlan(ctx, planID, requesterID); err != nil {
		return err
	}

	if err := s.accessRepo.Delete(ctx, teamID, planID); err != nil {
		return wrapStorage("unshare plan", err)
	}
	return nil
}

// buildItem resolves one item request against its drill: the drill must be
// visible to the requester, and the item's duration is the explicit override
// or the drill's current duration.
func (s *PlanService) buildItem(ctx context.Context, req *PlanItemRequest, requesterID uuid.UUID) (*models.PlanItem, error) {
	drill, err := s.drillRepo.GetByID(ctx, req.DrillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDrillNotFound
		}
		return nil, wrapStorage("get drill", err)
	}

	visible, err := s.canViewDrill(ctx, drill, requesterID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrDrillNotFound
	}

	duration := drill.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	return &models.PlanItem{
		DrillID:         drill.ID,
		DurationMinutes: duration,
	}, nil
}

// ownedPlan loads the plan and verifies the requester owns it. A plan the
// requester cannot even view stays NotFound; a visible but unowned plan is an
// authorization failure.
func (s *PlanService) ownedPlan(ctx context.Context, id, requesterID uuid.UUID) (*models.TrainingPlan, error) {
	plan, err := s.visiblePlan(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != requesterID {
		return nil, apperrors.ErrNotOwner
	}
	return plan, nil
}

// visiblePlan loads the plan and applies the visibility rules, folding
// "hidden" into ErrPlanNotFound
func (s *PlanService) visiblePlan(ctx context.Context, id, requesterID uuid.UUID) (*models.TrainingPlan, error) {
	plan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, wrapStorage("get plan", err)
	}

	visible, err := s.canView(ctx, plan, requesterID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrPlanNotFound
	}
	return plan, nil
}

func (s *PlanService) canView(ctx context.Context, plan *models.TrainingPlan, requesterID uuid.UUID) (bool, error) {
	if plan.PrivacyLevel == models.PrivacyPublic || plan.UserID == requesterID {
		return true, nil
	}
	if plan.PrivacyLevel == models.PrivacyPrivate {
		return false, nil
	}

	teamIDs, err := s.memberRepo.GetTeamIDsForUser(ctx, requesterID)
	if err != nil {
		return false, wrapStorage("list user teams", err)
	}
	if plan.TeamID != nil && contains(teamIDs, *plan.TeamID) {
		return true, nil
	}

	grantTeams, err := s.accessRepo.ListTeamIDsByPlan(ctx, plan.ID)
	if err != nil {
		return false, wrapStorage("list plan grants", err)
	}
	for _, granted := range grantTeams {
		if contains(teamIDs, granted) {
			return true, nil
		}
	}
	return false, nil
}

func (s *PlanService) canViewDrill(ctx context.Context, drill *models.Drill, requesterID uuid.UUID) (bool, error) {
	if drill.PrivacyLevel == models.PrivacyPublic || drill.UserID == requesterID {
		return true, nil
	}
	if drill.PrivacyLevel == models.PrivacyPrivate {
		return false, nil
	}

	teamIDs, err := s.memberRepo.GetTeamIDsForUser(ctx, requesterID)
	if err != nil {
		return false, wrapStorage("list user teams", err)
	}
	if drill.TeamID != nil && contains(teamIDs, *drill.TeamID) {
		return true, nil
	}

	grantTeams, err := s.drillAccessRepo.ListTeamIDsByDrill(ctx, drill.ID)
	if err != nil {
		return false, wrapStorage("list drill grants", err)
	}
	for _, granted := range grantTeams {
		if contains(teamIDs, granted) {
			return true, nil
		}
	}
	return false, nil
}

// loadResponse reloads the plan with ordered items and converts it
func (s *PlanService) loadResponse(ctx context.Context, planID, viewerID uuid.UUID) (*PlanResponse, error) {
	plan, err := s.repo.GetWithItems(ctx, planID)
	if err != nil {
		return nil, wrapStorage("get plan", err)
	}
	return s.toResponse(plan, plan.UserID != viewerID), nil
}

func (s *PlanService) toResponse(plan *models.TrainingPlan, shared bool) *PlanResponse {
	items := make([]PlanItemResponse, 0, len(plan.Items))
	total := 0
	for _, item := range plan.Items {
		resp := PlanItemResponse{
			ID:              item.ID,
			DrillID:         item.DrillID,
			Position:        item.Position,
			DurationMinutes: item.DurationMinutes,
		}
		if item.Drill != nil {
			resp.DrillTitle = item.Drill.Title
			resp.DrillDescription = item.Drill.Description
		} else {
			resp.DrillTitle = UnknownDrillTitle
			resp.DrillMissing = true
		}
		total += item.DurationMinutes
		items = append(items, resp)
	}

	return &PlanResponse{
		ID:                   plan.ID,
		Title:                plan.Title,
		Sport:                plan.Sport,
		DurationMinutes:      plan.DurationMinutes,
		TotalDurationMinutes: total,
		UserID:               plan.UserID,
		PrivacyLevel:         plan.PrivacyLevel,
		TeamID:               plan.TeamID,
		Shared:               shared,
		Items:                items,
		CreatedAt:            plan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            plan.UpdatedAt.Format(time.RFC3339),
	}
}
