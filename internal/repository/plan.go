package repository

import (
	"context"

	apperrors "practice-plan-backend/internal/errors"

	"practice-plan-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanRepository handles database operations for training plans and their
// items. Item mutations lock the plan row so concurrent editors of the same
// plan serialize and positions stay dense.
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new training plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create creates a new training plan together with any initial items
func (r *PlanRepository) Create(ctx context.Context, plan *models.TrainingPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := plan.Items
		plan.Items = nil
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].TrainingPlanID = plan.ID
			items[i].Position = i
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		plan.Items = items
		return nil
	})
}

// GetByID retrieves a training plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetWithItems retrieves a training plan with its items in position order,
// each joined to its drill
func (r *PlanRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("plan_items.position") }).
		Preload("Items.Drill").
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListOwned retrieves all plans owned by the user with ordered items
func (r *PlanRepository) ListOwned(ctx context.Context, userID uuid.UUID) ([]models.TrainingPlan, error) {
	var plans []models.TrainingPlan
	err := r.preloadItems(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&plans).Error
	return plans, err
}

// ListByIDs retrieves plans by ID with ordered items
func (r *PlanRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.TrainingPlan, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var plans []models.TrainingPlan
	err := r.preloadItems(r.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Order("updated_at DESC").
		Find(&plans).Error
	return plans, err
}

// ListByTeams retrieves team-scoped plans whose primary team is one of the
// given teams, with ordered items
func (r *PlanRepository) ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.TrainingPlan, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	var plans []models.TrainingPlan
	err := r.preloadItems(r.db.WithContext(ctx)).
		Where("privacy_level = ? AND team_id IN ?", models.PrivacyTeam, teamIDs).
		Order("updated_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *PlanRepository) preloadItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("plan_items.position") }).
		Preload("Items.Drill")
}

// Update updates a training plan
func (r *PlanRepository) Update(ctx context.Context, plan *models.TrainingPlan) error {
	return r.db.WithContext(ctx).Omit("Items").Save(plan).Error
}

// DeleteCascade deletes a plan together with its sharing grants and items
func (r *PlanRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamPlanAccess{}, "training_plan_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PlanItem{}, "training_plan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TrainingPlan{}, "id = ?", id).Error
	})
}

// CountByTeam returns the number of plans whose primary team is the given team
func (r *PlanRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TrainingPlan{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// GetItems retrieves a plan's items in position order
func (r *PlanRepository) GetItems(ctx context.Context, planID uuid.UUID) ([]models.PlanItem, error) {
	var items []models.PlanItem
	err := r.db.WithContext(ctx).Where("training_plan_id = ?", planID).Order("position").Find(&items).Error
	return items, err
}

// lockPlan takes a row lock on the plan for the duration of the transaction
func (r *PlanRepository) lockPlan(tx *gorm.DB, planID uuid.UUID) error {
	var plan models.TrainingPlan
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&plan, "id = ?", planID).Error
}

// AddItem appends the item, or inserts it at atPosition shifting subsequent
// items up by one
func (r *PlanRepository) AddItem(ctx context.Context, planID uuid.UUID, item *models.PlanItem, atPosition *int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockPlan(tx, planID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.PlanItem{}).Where("training_plan_id = ?", planID).Count(&count).Error; err != nil {
			return err
		}

		position := int(count)
		if atPosition != nil && *atPosition >= 0 && *atPosition < int(count) {
			position = *atPosition
			err := tx.Model(&models.PlanItem{}).
				Where("training_plan_id = ? AND position >= ?", planID, position).
				UpdateColumn("position", gorm.Expr("position + 1")).Error
			if err != nil {
				return err
			}
		}

		item.TrainingPlanID = planID
		item.Position = position
		return tx.Create(item).Error
	})
}

// Reorder reassigns positions so that item newOrder[i] gets position i.
// newOrder must be an exact permutation of the plan's current item IDs.
func (r *PlanRepository) Reorder(ctx context.Context, planID uuid.UUID, newOrder []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockPlan(tx, planID); err != nil {
			return err
		}

		var current []models.PlanItem
		if err := tx.Where("training_plan_id = ?", planID).Find(&current).Error; err != nil {
			return err
		}
		if len(newOrder) != len(current) {
			return apperrors.ErrInvalidOrder
		}
		existing := make(map[uuid.UUID]bool, len(current))
		for _, item := range current {
			existing[item.ID] = true
		}
		seen := make(map[uuid.UUID]bool, len(newOrder))
		for _, id := range newOrder {
			if !existing[id] || seen[id] {
				return apperrors.ErrInvalidOrder
			}
			seen[id] = true
		}

		for index, id := range newOrder {
			err := tx.Model(&models.PlanItem{}).
				Where("id = ?", id).
				UpdateColumn("position", index).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveItem deletes the item and compacts the remaining positions so they
// stay dense
func (r *PlanRepository) RemoveItem(ctx context.Context, planID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockPlan(tx, planID); err != nil {
			return err
		}

		var item models.PlanItem
		if err := tx.First(&item, "id = ? AND training_plan_id = ?", itemID, planID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PlanItem{}, "id = ?", item.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.PlanItem{}).
			Where("training_plan_id = ? AND position > ?", planID, item.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
}

// ReplaceItems swaps the plan's full item list for the given one. Delete and
// insert run in a single transaction, so a failed insert can never leave the
// plan transiently empty.
func (r *PlanRepository) ReplaceItems(ctx context.Context, planID uuid.UUID, items []models.PlanItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockPlan(tx, planID); err != nil {
			return err
		}

		if err := tx.Delete(&models.PlanItem{}, "training_plan_id = ?", planID).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].TrainingPlanID = planID
			items[i].Position = i
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
