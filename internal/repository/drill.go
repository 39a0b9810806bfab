package repository

import (
	"context"

	"practice-plan-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrillRepository handles database operations for drills
type DrillRepository struct {
	db *gorm.DB
}

// NewDrillRepository creates a new drill repository
func NewDrillRepository(db *gorm.DB) *DrillRepository {
	return &DrillRepository{db: db}
}

// Create creates a new drill
func (r *DrillRepository) Create(ctx context.Context, drill *models.Drill) error {
	return r.db.WithContext(ctx).Create(drill).Error
}

// GetByID retrieves a drill by ID
func (r *DrillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Drill, error) {
	var drill models.Drill
	err := r.db.WithContext(ctx).First(&drill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &drill, nil
}

// ListForUser retrieves all drills visible to the user: owned, public,
// team-scoped for any of the user's teams, or shared through a grant.
// An optional sport filter narrows the result.
func (r *DrillRepository) ListForUser(ctx context.Context, userID uuid.UUID, teamIDs []uuid.UUID, sport string) ([]models.Drill, error) {
	var drills []models.Drill

	query := r.db.WithContext(ctx).Model(&models.Drill{})
	if len(teamIDs) > 0 {
		query = query.Where(
			"user_id = ? OR privacy_level = ? OR (privacy_level = ? AND team_id IN ?) OR id IN (?)",
			userID, models.PrivacyPublic, models.PrivacyTeam, teamIDs,
			r.db.WithContext(ctx).Model(&models.TeamDrillAccess{}).Select("drill_id").Where("team_id IN ?", teamIDs),
		)
	} else {
		query = query.Where("user_id = ? OR privacy_level = ?", userID, models.PrivacyPublic)
	}
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}

	err := query.Order("created_at DESC").Find(&drills).Error
	return drills, err
}

// Update updates a drill
func (r *DrillRepository) Update(ctx context.Context, drill *models.Drill) error {
	return r.db.WithContext(ctx).Save(drill).Error
}

// DeleteCascade deletes a drill and its sharing grants. Plan items that
// reference the drill keep their snapshot and degrade to a placeholder when
// listed, so they are intentionally left in place.
func (r *DrillRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamDrillAccess{}, "drill_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Drill{}, "id = ?", id).Error
	})
}

// CountByTeam returns the number of drills whose primary team is the given team
func (r *DrillRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Drill{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}
