package models

import (
	"github.com/google/uuid"
)

// TeamPlanAccess grants an additional team visibility into a training plan
// beyond the plan's own team_id.
type TeamPlanAccess struct {
	BaseModel
	TeamID         uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_plan_access_pair" validate:"required"`
	TrainingPlanID uuid.UUID `json:"training_plan_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_plan_access_pair;index" validate:"required"`
}

// TableName returns the table name for TeamPlanAccess
func (TeamPlanAccess) TableName() string {
	return "team_plan_access"
}
