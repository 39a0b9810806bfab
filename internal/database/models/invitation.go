package models

import (
	"time"

	"github.com/google/uuid"
)

// InvitationTTL is how long a pending invitation stays acceptable.
const InvitationTTL = 7 * 24 * time.Hour

// PendingInvitation is a time-limited, token-bearing offer for an email
// address to join a team. Email is stored lower-cased. At most one pending
// invitation exists per (team, email).
type PendingInvitation struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_pending_invitations_team_email" validate:"required"`
	Email     string    `json:"email" gorm:"not null;size:255;uniqueIndex:idx_pending_invitations_team_email" validate:"required,email,max=255"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for PendingInvitation
func (PendingInvitation) TableName() string {
	return "pending_invitations"
}

// Expired reports whether the invitation can no longer be accepted.
func (i *PendingInvitation) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
