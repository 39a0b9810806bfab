package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrillService handles business logic for drills
type DrillService struct {
	repo       repository.DrillRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	accessRepo repository.TeamDrillAccessRepositoryInterface
	validator  *validator.Validate
}

// NewDrillService creates a new drill service
func NewDrillService(repo repository.DrillRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, accessRepo repository.TeamDrillAccessRepositoryInterface, validator *validator.Validate) *DrillService {
	return &DrillService{
		repo:       repo,
		memberRepo: memberRepo,
		accessRepo: accessRepo,
		validator:  validator,
	}
}

// CreateDrillRequest represents the request to create a drill
type CreateDrillRequest struct {
	Title             string              `json:"title" validate:"required,min=1,max=200"`
	Sport             string              `json:"sport" validate:"required,max=50"`
	ActivityType      string              `json:"activity_type" validate:"max=50"`
	Description       string              `json:"description" validate:"max=2000"`
	DurationMinutes   int                 `json:"duration_minutes" validate:"min=0"`
	Equipment         []string            `json:"equipment,omitempty"`
	Participants      int                 `json:"participants" validate:"min=0"`
	SkillLevel        models.SkillLevel   `json:"skill_level,omitempty"`
	Objectives        []string            `json:"objectives,omitempty"`
	SetupInstructions string              `json:"setup_instructions" validate:"max=2000"`
	CoachingPoints    string              `json:"coaching_points" validate:"max=2000"`
	VideoURL          string              `json:"video_url" validate:"omitempty,url,max=500"`
	ImageURL          string              `json:"image_url" validate:"omitempty,url,max=500"`
	PrivacyLevel      models.PrivacyLevel `json:"privacy_level" validate:"required"`
	TeamID            *uuid.UUID          `json:"team_id,omitempty"`
}

// UpdateDrillRequest represents the request to update a drill
type UpdateDrillRequest struct {
	Title             string              `json:"title" validate:"required,min=1,max=200"`
	Sport             string              `json:"sport" validate:"required,max=50"`
	ActivityType      string              `json:"activity_type" validate:"max=50"`
	Description       string              `json:"description" validate:"max=2000"`
	DurationMinutes   int                 `json:"duration_minutes" validate:"min=0"`
	Equipment         []string            `json:"equipment,omitempty"`
	Participants      int                 `json:"participants" validate:"min=0"`
	SkillLevel        models.SkillLevel   `json:"skill_level,omitempty"`
	Objectives        []string            `json:"objectives,omitempty"`
	SetupInstructions string              `json:"setup_instructions" validate:"max=2000"`
	CoachingPoints    string              `json:"coaching_points" validate:"max=2000"`
	VideoURL          string              `json:"video_url" validate:"omitempty,url,max=500"`
	ImageURL          string              `json:"image_url" validate:"omitempty,url,max=500"`
	PrivacyLevel      models.PrivacyLevel `json:"privacy_level" validate:"required"`
	TeamID            *uuid.UUID          `json:"team_id,omitempty"`
}

// DrillResponse represents the response for drill operations
type DrillResponse struct {
	ID                uuid.UUID           `json:"id"`
	Title             string              `json:"title"`
	Sport             string              `json:"sport"`
	ActivityType      string              `json:"activity_type,omitempty"`
	Description       string              `json:"description,omitempty"`
	DurationMinutes   int                 `json:"duration_minutes"`
	Equipment         []string            `json:"equipment,omitempty"`
	Participants      int                 `json:"participants,omitempty"`
	SkillLevel        models.SkillLevel   `json:"skill_level"`
	Objectives        []string            `json:"objectives,omitempty"`
	SetupInstructions string              `json:"setup_instructions,omitempty"`
	CoachingPoints    string              `json:"coaching_points,omitempty"`
	VideoURL          string              `json:"video_url,omitempty"`
	ImageURL          string              `json:"image_url,omitempty"`
	IsCustom          bool                `json:"is_custom"`
	UserID            uuid.UUID           `json:"user_id"`
	PrivacyLevel      models.PrivacyLevel `json:"privacy_level"`
	TeamID            *uuid.UUID          `json:"team_id,omitempty"`
	Shared            bool                `json:"shared"`
	CreatedAt         string              `json:"created_at"`
	UpdatedAt         string              `json:"updated_at"`
}

// Create creates a drill owned by the requester
func (s *DrillService) Create(ctx context.Context, req *CreateDrillRequest, requesterID uuid.UUID) (*DrillResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := validatePrivacy(ctx, req.PrivacyLevel, req.TeamID, requesterID, s.memberRepo); err != nil {
		return nil, err
	}

	skill := req.SkillLevel
	if skill == "" {
		skill = models.SkillAllLevels
	}
	if !skill.IsValid() {
		return nil, apperrors.NewValidationError("skill_level", "must be one of beginner, intermediate, advanced, all")
	}

	drill := &models.Drill{
		Title:             req.Title,
		Sport:             req.Sport,
		ActivityType:      req.ActivityType,
		Description:       req.Description,
		DurationMinutes:   req.DurationMinutes,
		Equipment:         marshalStrings(req.Equipment),
		Participants:      req.Participants,
		SkillLevel:        skill,
		Objectives:        marshalStrings(req.Objectives),
		SetupInstructions: req.SetupInstructions,
		CoachingPoints:    req.CoachingPoints,
		VideoURL:          req.VideoURL,
		ImageURL:          req.ImageURL,
		IsCustom:          true,
		UserID:            requesterID,
		PrivacyLevel:      req.PrivacyLevel,
		TeamID:            req.TeamID,
	}
	if err := s.repo.Create(ctx, drill); err != nil {
		return nil, wrapStorage("create drill", err)
	}

	return s.toResponse(drill, false), nil
}

// GetByID retrieves a drill the requester may view. Hidden drills surface
// as NotFound.
func (s *DrillService) GetByID(ctx context.Context, id, requesterID uuid.UUID) (*DrillResponse, error) {
	drill, err := s.visibleDrill(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	grantTeams, err := s.accessRepo.ListTeamIDsByDrill(ctx, id)
	if err != nil {
		return nil, wrapStorage("list drill grants", err)
	}
	return s.toResponse(drill, len(grantTeams) > 0), nil
}

// ListForUser retrieves all drills visible to the user, optionally filtered
// by sport
func (s *DrillService) ListForUser(ctx context.Context, userID uuid.UUID, sport string) ([]DrillResponse, error) {
	teamIDs, err := s.memberRepo.GetTeamIDsForUser(ctx, userID)
	if err != nil {
		return nil, wrapStorage("list user teams", err)
	}

	drills, err := s.repo.ListForUser(ctx, userID, teamIDs, sport)
	if err != nil {
		return nil, wrapStorage("list drills", err)
	}

	responses := make([]DrillResponse, 0, len(drills))
	for i := range drills {
		responses = append(responses, *s.toResponse(&drills[i], false))
	}
	return responses, nil
}

// Update updates a drill. Owner-only; ownership is never transferred.
func (s *DrillService) Update(ctx context.Context, id uuid.UUID, req *UpdateDrillRequest, requesterID uuid.UUID) (*DrillResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	drill, err := s.visibleDrill(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if drill.UserID != requesterID {
		return nil, apperrors.ErrNotOwner
	}
	if err := validatePrivacy(ctx, req.PrivacyLevel, req.TeamID, requesterID, s.memberRepo); err != nil {
		return nil, err
	}
	if req.SkillLevel != "" && !req.SkillLevel.IsValid() {
		return nil, apperrors.NewValidationError("skill_level", "must be one of beginner, intermediate, advanced, all")
	}

	drill.Title = req.Title
	drill.Sport = req.Sport
	drill.ActivityType = req.ActivityType
	drill.Description = req.Description
	drill.DurationMinutes = req.DurationMinutes
	drill.Equipment = marshalStrings(req.Equipment)
	drill.Participants = req.Participants
	if req.SkillLevel != "" {
		drill.SkillLevel = req.SkillLevel
	}
	drill.Objectives = marshalStrings(req.Objectives)
	drill.SetupInstructions = req.SetupInstructions
	drill.CoachingPoints = req.CoachingPoints
	drill.VideoURL = req.VideoURL
	drill.ImageURL = req.ImageURL
	drill.PrivacyLevel = req.PrivacyLevel
	drill.TeamID = req.TeamID

	if err := s.repo.Update(ctx, drill); err != nil {
		return nil, wrapStorage("update drill", err)
	}
	return s.toResponse(drill, false), nil
}

// Delete deletes a drill and its sharing grants. Owner-only. Plan items
// keep their duration snapshots and degrade to a placeholder in listings.
func (s *DrillService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	drill, err := s.visibleDrill(ctx, id, requesterID)
	if err != nil {
		return err
	}
	if drill.UserID != requesterID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return wrapStorage("delete drill", err)
	}
	return nil
}

// Share grants an additional team visibility into the drill. Owner-only.
func (s *DrillService) Share(ctx context.Context, drillID, teamID, requesterID uuid.UUID) error {
	drill, err := s.visibleDrill(ctx, drillID, requesterID)
	if err != nil {
		return err
	}
	if drill.UserID != requesterID {
		return apperrors.ErrNotOwner
	}

	existing, err := s.accessRepo.GetByTeamAndDrill(ctx, teamID, drillID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return wrapStorage("check drill grant", err)
	}
	if existing != nil {
		return apperrors.ErrDrillAccessExists
	}

	grant := &models.TeamDrillAccess{TeamID: teamID, DrillID: drillID}
	if err := s.accessRepo.Create(ctx, grant); err != nil {
		return wrapStorage("share drill", err)
	}
	return nil
}

// Unshare revokes a team's grant on the drill. Owner-only.
func (s *DrillService) Unshare(ctx context.Context, drillID, teamID, requesterID uuid.UUID) error {
	drill, err := s.visibleDrill(ctx, drillID, requesterID)
	if err != nil {
		return err
	}
	if drill.UserID != requesterID {
		return apperrors.ErrNotOwner
	}

	if err := s.accessRepo.Delete(ctx, teamID, drillID); err != nil {
		return wrapStorage("unshare drill", err)
	}
	return nil
}

// visibleDrill loads the drill and applies the visibility rules, folding
// "hidden" into ErrDrillNotFound.
func (s *DrillService) visibleDrill(ctx context.Context, id, requesterID uuid.UUID) (*models.Drill, error) {
	drill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDrillNotFound
		}
		return nil, wrapStorage("get drill", err)
	}

	visible, err := s.canView(ctx, drill, requesterID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrDrillNotFound
	}
	return drill, nil
}

// canView implements the privacy rules: public is visible to all, private to
// the owner, team to members of the primary team, members of granted teams,
// and the owner.
func (s *DrillService) canView(ctx context.Context, drill *models.Drill, requesterID uuid.UUID) (bool, error) {
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

	grantTeams, err := s.accessRepo.ListTeamIDsByDrill(ctx, drill.ID)
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

func (s *DrillService) toResponse(drill *models.Drill, shared bool) *DrillResponse {
	return &DrillResponse{
		ID:                drill.ID,
		Title:             drill.Title,
		Sport:             drill.Sport,
		ActivityType:      drill.ActivityType,
		Description:       drill.Description,
		DurationMinutes:   drill.DurationMinutes,
		Equipment:         unmarshalStrings(drill.Equipment),
		Participants:      drill.Participants,
		SkillLevel:        drill.SkillLevel,
		Objectives:        unmarshalStrings(drill.Objectives),
		SetupInstructions: drill.SetupInstructions,
		CoachingPoints:    drill.CoachingPoints,
		VideoURL:          drill.VideoURL,
		ImageURL:          drill.ImageURL,
		IsCustom:          drill.IsCustom,
		UserID:            drill.UserID,
		PrivacyLevel:      drill.PrivacyLevel,
		TeamID:            drill.TeamID,
		Shared:            shared,
		CreatedAt:         drill.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         drill.UpdatedAt.Format(time.RFC3339),
	}
}

func marshalStrings(values []string) json.RawMessage {
	if len(values) == 0 {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return raw
}

func unmarshalStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
