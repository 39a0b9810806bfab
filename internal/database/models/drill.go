package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Drill is a reusable template describing a single coaching exercise.
// TeamID is set iff PrivacyLevel is "team"; additional teams see the drill
// through TeamDrillAccess grants.
type Drill struct {
	BaseModel
	Title             string          `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Sport             string          `json:"sport" gorm:"not null;size:50;index" validate:"required,max=50"`
	ActivityType      string          `json:"activity_type" gorm:"size:50" validate:"max=50"`
	Description       string          `json:"description" gorm:"size:2000" validate:"max=2000"`
	DurationMinutes   int             `json:"duration_minutes" gorm:"not null;default:0" validate:"min=0"`
	Equipment         json.RawMessage `json:"equipment" gorm:"type:jsonb"`
	Participants      int             `json:"participants" gorm:"default:0" validate:"min=0"`
	SkillLevel        SkillLevel      `json:"skill_level" gorm:"type:varchar(20);default:'all'"`
	Objectives        json.RawMessage `json:"objectives" gorm:"type:jsonb"`
	SetupInstructions string          `json:"setup_instructions" gorm:"size:2000" validate:"max=2000"`
	CoachingPoints    string          `json:"coaching_points" gorm:"size:2000" validate:"max=2000"`
	VideoURL          string          `json:"video_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	ImageURL          string          `json:"image_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	IsCustom          bool            `json:"is_custom" gorm:"default:true"`
	UserID            uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	PrivacyLevel      PrivacyLevel    `json:"privacy_level" gorm:"type:varchar(20);not null;default:'private'" validate:"required"`
	TeamID            *uuid.UUID      `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Drill
func (Drill) TableName() string {
	return "drills"
}
