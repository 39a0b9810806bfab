package repository

import (
	"context"

	"practice-plan-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamPlanAccessRepository handles database operations for plan sharing grants
type TeamPlanAccessRepository struct {
	db *gorm.DB
}

// NewTeamPlanAccessRepository creates a new plan access repository
func NewTeamPlanAccessRepository(db *gorm.DB) *TeamPlanAccessRepository {
	return &TeamPlanAccessRepository{db: db}
}

// Create creates a new plan sharing grant
func (r *TeamPlanAccessRepository) Create(ctx context.Context, grant *models.TeamPlanAccess) error {
	return r.db.WithContext(ctx).Create(grant).Error
}

// GetByTeamAndPlan retrieves a grant for a team/plan pair
func (r *TeamPlanAccessRepository) GetByTeamAndPlan(ctx context.Context, teamID, planID uuid.UUID) (*models.TeamPlanAccess, error) {
	var grant models.TeamPlanAccess
	err := r.db.WithContext(ctx).First(&grant, "team_id = ? AND training_plan_id = ?", teamID, planID).Error
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

// ListTeamIDsByPlan retrieves the IDs of all teams a plan is shared with
func (r *TeamPlanAccessRepository) ListTeamIDsByPlan(ctx context.Context, planID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.TeamPlanAccess{}).
		Where("training_plan_id = ?", planID).
		Pluck("team_id", &ids).Error
	return ids, err
}

// ListPlanIDsForTeams retrieves the IDs of all plans shared with any of the teams
func (r *TeamPlanAccessRepository) ListPlanIDsForTeams(ctx context.Context, teamIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.TeamPlanAccess{}).
		Distinct("training_plan_id").
		Where("team_id IN ?", teamIDs).
		Pluck("training_plan_id", &ids).Error
	return ids, err
}

// Delete deletes a grant for a team/plan pair
func (r *TeamPlanAccessRepository) Delete(ctx context.Context, teamID, planID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TeamPlanAccess{}, "team_id = ? AND training_plan_id = ?", teamID, planID).Error
}

// TeamDrillAccessRepository handles database operations for drill sharing grants
type TeamDrillAccessRepository struct {
	db *gorm.DB
}

// NewTeamDrillAccessRepository creates a new drill access repository
func NewTeamDrillAccessRepository(db *gorm.DB) *TeamDrillAccessRepository {
	return &TeamDrillAccessRepository{db: db}
}

// Create creates a new drill sharing grant
func (r *TeamDrillAccessRepository) Create(ctx context.Context, grant *models.TeamDrillAccess) error {
	return r.db.WithContext(ctx).Create(grant).Error
}

// GetByTeamAndDrill retrieves a grant for a team/drill pair
func (r *TeamDrillAccessRepository) GetByTeamAndDrill(ctx context.Context, teamID, drillID uuid.UUID) (*models.TeamDrillAccess, error) {
	var grant models.TeamDrillAccess
	err := r.db.WithContext(ctx).First(&grant, "team_id = ? AND drill_id = ?", teamID, drillID).Error
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

// ListTeamIDsByDrill retrieves the IDs of all teams a drill is shared with
func (r *TeamDrillAccessRepository) ListTeamIDsByDrill(ctx context.Context, drillID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.TeamDrillAccess{}).
		Where("drill_id = ?", drillID).
		Pluck("team_id", &ids).Error
	return ids, err
}

// ListDrillIDsForTeams retrieves the IDs of all drills shared with any of the teams
func (r *TeamDrillAccessRepository) ListDrillIDsForTeams(ctx context.Context, teamIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.TeamDrillAccess{}).
		Distinct("drill_id").
		Where("team_id IN ?", teamIDs).
		Pluck("drill_id", &ids).Error
	return ids, err
}

// Delete deletes a grant for a team/drill pair
func (r *TeamDrillAccessRepository) Delete(ctx context.Context, teamID, drillID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TeamDrillAccess{}, "team_id = ? AND drill_id = ?", teamID, drillID).Error
}
