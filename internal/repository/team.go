package repository

import (
	"context"

	apperrors "practice-plan-backend/internal/errors"

	"practice-plan-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithOwner inserts the team row and the creator's membership row in
// one transaction, so a mid-sequence failure leaves no ownerless team.
func (r *TeamRepository) CreateWithOwner(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		owner := &models.TeamMember{
			TeamID: team.ID,
			UserID: team.CreatedBy,
		}
		return tx.Create(owner).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with all its members and their users
func (r *TeamRepository) GetWithMembers(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Preload("Members").Preload("Members.User").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetTeamsForUser retrieves all teams the user belongs to
func (r *TeamRepository) GetTeamsForUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at").
		Find(&teams).Error
	return teams, err
}

// GetMemberCount returns the number of members in a team
func (r *TeamRepository) GetMemberCount(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Update updates a team
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// DeleteCascade deletes a team together with its memberships, pending
// invitations and sharing grants. Fails with ErrTeamInUse while any drill or
// training plan still names the team as its primary team.
func (r *TeamRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Drill{}).Where("team_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return apperrors.ErrTeamInUse
		}
		if err := tx.Model(&models.TrainingPlan{}).Where("team_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return apperrors.ErrTeamInUse
		}

		if err := tx.Delete(&models.TeamMember{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PendingInvitation{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TeamPlanAccess{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TeamDrillAccess{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
