package models

import (
	"github.com/google/uuid"
)

// Team represents a coaching team. CreatedBy is the immutable owner; the
// owner always holds a TeamMember row and cannot be removed through the
// member-removal operation.
type Team struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Members     []TeamMember        `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Invitations []PendingInvitation `json:"invitations,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
