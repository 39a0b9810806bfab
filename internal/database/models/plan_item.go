package models

import (
	"github.com/google/uuid"
)

// PlanItem places a drill at a position within a training plan. Positions
// within one plan are dense and 0-based. DurationMinutes is snapshotted from
// the drill at insertion time and is not kept in sync with later drill edits.
type PlanItem struct {
	BaseModel
	TrainingPlanID  uuid.UUID `json:"training_plan_id" gorm:"type:uuid;not null;index:idx_plan_items_plan_position" validate:"required"`
	DrillID         uuid.UUID `json:"drill_id" gorm:"type:uuid;not null;index" validate:"required"`
	Position        int       `json:"position" gorm:"not null;index:idx_plan_items_plan_position" validate:"min=0"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null;default:0" validate:"min=0"`

	// Relationships. The drill association carries no foreign key constraint:
	// a drill may be deleted while plan items still reference it, and such
	// items degrade to a placeholder when listed.
	Drill *Drill `json:"drill,omitempty" gorm:"foreignKey:DrillID;constraint:-"`
}

// TableName returns the table name for PlanItem
func (PlanItem) TableName() string {
	return "plan_items"
}
