package models

import (
	"github.com/google/uuid"
)

// TrainingPlan is an ordered sequence of drills with a target duration.
// DurationMinutes is the user's target length, not the computed total of the
// plan's items; the two are allowed to diverge.
type TrainingPlan struct {
	BaseModel
	Title           string       `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Sport           string       `json:"sport" gorm:"not null;size:50;index" validate:"required,max=50"`
	DurationMinutes int          `json:"duration_minutes" gorm:"not null;default:0" validate:"min=0"`
	UserID          uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	PrivacyLevel    PrivacyLevel `json:"privacy_level" gorm:"type:varchar(20);not null;default:'private'" validate:"required"`
	TeamID          *uuid.UUID   `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Items []PlanItem `json:"items,omitempty" gorm:"foreignKey:TrainingPlanID"`
	Team  *Team      `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for TrainingPlan
func (TrainingPlan) TableName() string {
	return "training_plans"
}
