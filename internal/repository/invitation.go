package repository

import (
	"context"
	"strings"
	"time"

	"practice-plan-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for pending invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new pending invitation
func (r *InvitationRepository) Create(ctx context.Context, invitation *models.PendingInvitation) error {
	invitation.Email = strings.ToLower(invitation.Email)
	return r.db.WithContext(ctx).Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PendingInvitation, error) {
	var invitation models.PendingInvitation
	err := r.db.WithContext(ctx).First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByToken retrieves an invitation by its token
func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*models.PendingInvitation, error) {
	var invitation models.PendingInvitation
	err := r.db.WithContext(ctx).First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByTeamAndEmail retrieves a pending invitation for a team/email pair
func (r *InvitationRepository) GetByTeamAndEmail(ctx context.Context, teamID uuid.UUID, email string) (*models.PendingInvitation, error) {
	var invitation models.PendingInvitation
	err := r.db.WithContext(ctx).First(&invitation, "team_id = ? AND email = ?", teamID, strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListByTeam retrieves all pending invitations for a team
func (r *InvitationRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.PendingInvitation, error) {
	var invitations []models.PendingInvitation
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("created_at").Find(&invitations).Error
	return invitations, err
}

// Accept converts the invitation into a team membership and deletes the
// invitation row in one transaction. The delete doubles as the serialization
// point for concurrent accepts: the second transaction finds zero rows and
// fails, so exactly one membership is ever created per invitation.
func (r *InvitationRepository) Accept(ctx context.Context, invitation *models.PendingInvitation, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.PendingInvitation{}, "id = ?", invitation.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		member := &models.TeamMember{
			TeamID: invitation.TeamID,
			UserID: userID,
		}
		return tx.Create(member).Error
	})
}

// Delete deletes an invitation row
func (r *InvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PendingInvitation{}, "id = ?", id).Error
}

// DeleteExpired purges invitations whose expiry has passed
func (r *InvitationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.PendingInvitation{}, "expires_at <= ?", now)
	return res.RowsAffected, res.Error
}
