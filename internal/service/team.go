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

// TeamService handles business logic for teams and their memberships
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	drillRepo  repository.DrillRepositoryInterface
	planRepo   repository.PlanRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, drillRepo repository.DrillRepositoryInterface, planRepo repository.PlanRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		drillRepo:  drillRepo,
		planRepo:   planRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateTeamRequest represents the request to rename a team
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CreatedBy   uuid.UUID `json:"created_by"`
	MemberCount int64     `json:"member_count"`
	IsOwner     bool      `json:"is_owner"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// TeamMemberResponse represents one member in a team listing
type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsCreator bool      `json:"is_creator"`
	JoinedAt  string    `json:"joined_at"`
}

// Create creates a team owned by the requester. The team row and the owner's
// membership row are written atomically.
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest, requesterID uuid.UUID) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team := &models.Team{
		Name:      req.Name,
		CreatedBy: requesterID,
	}
	if err := s.repo.CreateWithOwner(ctx, team); err != nil {
		return nil, wrapStorage("create team", err)
	}

	return s.toResponse(team, 1, requesterID), nil
}

// GetByID retrieves a team. Only members may see it; non-members get NotFound
// so team existence does not leak.
func (s *TeamService) GetByID(ctx context.Context, id, requesterID uuid.UUID) (*TeamResponse, error) {
	team, err := s.getMemberTeam(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.GetMemberCount(ctx, id)
	if err != nil {
		return nil, wrapStorage("count team members", err)
	}

	return s.toResponse(team, count, requesterID), nil
}

// ListForUser retrieves all teams the user belongs to
func (s *TeamService) ListForUser(ctx context.Context, userID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.repo.GetTeamsForUser(ctx, userID)
	if err != nil {
		return nil, wrapStorage("list teams", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		count, err := s.repo.GetMemberCount(ctx, teams[i].ID)
		if err != nil {
			return nil, wrapStorage("count team members", err)
		}
		responses = append(responses, *s.toResponse(&teams[i], count, userID))
	}
	return responses, nil
}

// Update renames a team. Only the creator may do so.
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest, requesterID uuid.UUID) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.getMemberTeam(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy != requesterID {
		return nil, apperrors.ErrNotTeamCreator
	}

	team.Name = req.Name
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, wrapStorage("update team", err)
	}

	count, err := s.repo.GetMemberCount(ctx, id)
	if err != nil {
		return nil, wrapStorage("count team members", err)
	}
	return s.toResponse(team, count, requesterID), nil
}

// Delete deletes a team with all memberships, invitations and grants. Only
// the creator may delete; teams still referenced by drills or plans are
// refused with a conflict.
func (s *TeamService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	team, err := s.getMemberTeam(ctx, id, requesterID)
	if err != nil {
		return err
	}
	if team.CreatedBy != requesterID {
		return apperrors.ErrNotTeamCreator
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrTeamInUse) {
			return apperrors.ErrTeamInUse
		}
		return wrapStorage("delete team", err)
	}
	return nil
}

// ListMembers retrieves the members of a team. Member-only.
func (s *TeamService) ListMembers(ctx context.Context, teamID, requesterID uuid.UUID) ([]TeamMemberResponse, error) {
	team, err := s.getMemberTeam(ctx, teamID, requesterID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, wrapStorage("list team members", err)
	}

	responses := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		resp := TeamMemberResponse{
			ID:        member.ID,
			UserID:    member.UserID,
			IsCreator: member.UserID == team.CreatedBy,
			JoinedAt:  member.CreatedAt.Format(time.RFC3339),
		}
		if member.User != nil {
			resp.Email = member.User.Email
			resp.Name = member.User.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// RemoveMember removes a user from a team. Only the creator may remove
// members, and the creator's own membership is never removable.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID, requesterID uuid.UUID) error {
	team, err := s.getMemberTeam(ctx, teamID, requesterID)
	if err != nil {
		return err
	}
	if team.CreatedBy != requesterID {
		return apperrors.ErrNotTeamCreator
	}
	if userID == team.CreatedBy {
		return apperrors.ErrCreatorIrremovable
	}

	member, err := s.memberRepo.GetByTeamAndUser(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return wrapStorage("get team member", err)
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		return wrapStorage("remove team member", err)
	}
	return nil
}

// Leave removes the requester's own membership. The creator cannot leave.
func (s *TeamService) Leave(ctx context.Context, teamID, requesterID uuid.UUID) error {
	team, err := s.getMemberTeam(ctx, teamID, requesterID)
	if err != nil {
		return err
	}
	if requesterID == team.CreatedBy {
		return apperrors.ErrCreatorIrremovable
	}

	member, err := s.memberRepo.GetByTeamAndUser(ctx, teamID, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return wrapStorage("get team member", err)
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		return wrapStorage("leave team", err)
	}
	return nil
}

// getMemberTeam loads the team and verifies the requester is a member,
// folding both "missing" and "hidden" into ErrTeamNotFound.
func (s *TeamService) getMemberTeam(ctx context.Context, teamID, requesterID uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, wrapStorage("get team", err)
	}

	isMember, err := s.memberRepo.IsMember(ctx, teamID, requesterID)
	if err != nil {
		return nil, wrapStorage("verify team membership", err)
	}
	if !isMember {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

func (s *TeamService) toResponse(team *models.Team, memberCount int64, viewerID uuid.UUID) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		CreatedBy:   team.CreatedBy,
		MemberCount: memberCount,
		IsOwner:     team.CreatedBy == viewerID,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
}
