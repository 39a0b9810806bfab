package models

import (
	"github.com/google/uuid"
)

// TeamDrillAccess grants an additional team visibility into a drill beyond
// the drill's own team_id.
type TeamDrillAccess struct {
	BaseModel
	TeamID  uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_drill_access_pair" validate:"required"`
	DrillID uuid.UUID `json:"drill_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_drill_access_pair;index" validate:"required"`
}

// TableName returns the table name for TeamDrillAccess
func (TeamDrillAccess) TableName() string {
	return "team_drill_access"
}
