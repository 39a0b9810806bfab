package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationService handles the pending-invitation lifecycle: create,
// accept, revoke and expiry cleanup.
type InvitationService struct {
	repo       repository.InvitationRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(repo repository.InvitationRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *InvitationService {
	return &InvitationService{
		repo:       repo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// InviteMemberRequest represents the request to invite an email to a team
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// InvitationResponse represents the response for invitation operations.
// Token is only populated when the invitation is first created.
type InvitationResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	CreatedAt string    `json:"created_at"`
	ExpiresAt string    `json:"expires_at"`
}

// AcceptInvitationResponse represents the outcome of accepting an invitation
type AcceptInvitationResponse struct {
	TeamID uuid.UUID `json:"team_id"`
	UserID uuid.UUID `json:"user_id"`
}

// Invite creates a pending invitation for an email address to join a team.
// Any member may invite. Inviting an email that already has a pending
// invitation returns the existing one; inviting a registered user who is
// already a member fails with a conflict.
func (s *InvitationService) Invite(ctx context.Context, teamID uuid.UUID, req *InviteMemberRequest, requesterID uuid.UUID) (*InvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("email", err.Error())
	}
	email := strings.ToLower(req.Email)

	if _, err := s.memberTeam(ctx, teamID, requesterID); err != nil {
		return nil, err
	}

	// Already a member? Only checkable when the email maps to a known user.
	invitee, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapStorage("look up invitee", err)
	}
	if invitee != nil {
		isMember, err := s.memberRepo.IsMember(ctx, teamID, invitee.ID)
		if err != nil {
			return nil, wrapStorage("verify invitee membership", err)
		}
		if isMember {
			return nil, apperrors.ErrTeamMemberExists
		}
	}

	// Idempotent: a still-pending invitation for this pair is returned as-is.
	existing, err := s.repo.GetByTeamAndEmail(ctx, teamID, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapStorage("check existing invitation", err)
	}
	if existing != nil && !existing.Expired(s.now()) {
		return s.toResponse(existing, false), nil
	}
	if existing != nil {
		// Stale row from an expired invitation; replace it.
		if err := s.repo.Delete(ctx, existing.ID); err != nil {
			return nil, wrapStorage("replace expired invitation", err)
		}
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, wrapStorage("generate invitation token", err)
	}

	createdAt := s.now()
	invitation := &models.PendingInvitation{
		TeamID:    teamID,
		Email:     email,
		Token:     token,
		ExpiresAt: createdAt.Add(models.InvitationTTL),
	}
	if err := s.repo.Create(ctx, invitation); err != nil {
		return nil, wrapStorage("create invitation", err)
	}

	return s.toResponse(invitation, true), nil
}

// ListByTeam retrieves pending invitations for a team. Member-only.
func (s *InvitationService) ListByTeam(ctx context.Context, teamID, requesterID uuid.UUID) ([]InvitationResponse, error) {
	if _, err := s.memberTeam(ctx, teamID, requesterID); err != nil {
		return nil, err
	}

	invitations, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, wrapStorage("list invitations", err)
	}

	responses := make([]InvitationResponse, 0, len(invitations))
	for i := range invitations {
		responses = append(responses, *s.toResponse(&invitations[i], false))
	}
	return responses, nil
}

// Accept converts an invitation into a team membership. The invitation must
// not be expired and must have been issued for the accepting user's email
// (compared case-insensitively). Membership insert and invitation delete are
// atomic, so the user can never end up both a member and still invited, nor
// neither.
func (s *InvitationService) Accept(ctx context.Context, invitationID, requesterID uuid.UUID, requesterEmail string) (*AcceptInvitationResponse, error) {
	invitation, err := s.repo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, wrapStorage("get invitation", err)
	}
	return s.accept(ctx, invitation, requesterID, requesterEmail)
}

// AcceptByToken accepts an invitation located by its unguessable token
func (s *InvitationService) AcceptByToken(ctx context.Context, token string, requesterID uuid.UUID, requesterEmail string) (*AcceptInvitationResponse, error) {
	invitation, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, wrapStorage("get invitation", err)
	}
	return s.accept(ctx, invitation, requesterID, requesterEmail)
}

func (s *InvitationService) accept(ctx context.Context, invitation *models.PendingInvitation, requesterID uuid.UUID, requesterEmail string) (*AcceptInvitationResponse, error) {
	if invitation.Expired(s.now()) {
		return nil, apperrors.ErrInvitationExpired
	}
	if !strings.EqualFold(invitation.Email, requesterEmail) {
		return nil, apperrors.ErrEmailMismatch
	}

	if err := s.repo.Accept(ctx, invitation, requesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost the race against a concurrent accept.
			return nil, apperrors.ErrInvitationNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, wrapStorage("accept invitation", err)
	}

	return &AcceptInvitationResponse{
		TeamID: invitation.TeamID,
		UserID: requesterID,
	}, nil
}

// Revoke deletes a pending invitation. Member-only.
func (s *InvitationService) Revoke(ctx context.Context, teamID, invitationID, requesterID uuid.UUID) error {
	if _, err := s.memberTeam(ctx, teamID, requesterID); err != nil {
		return err
	}

	invitation, err := s.repo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvitationNotFound
		}
		return wrapStorage("get invitation", err)
	}
	if invitation.TeamID != teamID {
		return apperrors.ErrInvitationNotFound
	}

	if err := s.repo.Delete(ctx, invitationID); err != nil {
		return wrapStorage("revoke invitation", err)
	}
	return nil
}

// PurgeExpired deletes all invitations past their expiry and returns how
// many were removed. Intended for periodic maintenance.
func (s *InvitationService) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, wrapStorage("purge expired invitations", err)
	}
	return purged, nil
}

func (s *InvitationService) memberTeam(ctx context.Context, teamID, requesterID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
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

func (s *InvitationService) toResponse(invitation *models.PendingInvitation, includeToken bool) *InvitationResponse {
	resp := &InvitationResponse{
		ID:        invitation.ID,
		TeamID:    invitation.TeamID,
		Email:     invitation.Email,
		CreatedAt: invitation.CreatedAt.Format(time.RFC3339),
		ExpiresAt: invitation.ExpiresAt.Format(time.RFC3339),
	}
	if includeToken {
		resp.Token = invitation.Token
	}
	return resp
}

// newInvitationToken returns a cryptographically random token, distinct from
// the invitation's row id.
func newInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
