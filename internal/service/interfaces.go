package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest, requesterID uuid.UUID) (*TeamResponse, error)
	GetByID(ctx context.Context, id, requesterID uuid.UUID) (*TeamResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]TeamResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest, requesterID uuid.UUID) (*TeamResponse, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
	ListMembers(ctx context.Context, teamID, requesterID uuid.UUID) ([]TeamMemberResponse, error)
	RemoveMember(ctx context.Context, teamID, userID, requesterID uuid.UUID) error
	Leave(ctx context.Context, teamID, requesterID uuid.UUID) error
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Invite(ctx context.Context, teamID uuid.UUID, req *InviteMemberRequest, requesterID uuid.UUID) (*InvitationResponse, error)
	ListByTeam(ctx context.Context, teamID, requesterID uuid.UUID) ([]InvitationResponse, error)
	Accept(ctx context.Context, invitationID, requesterID uuid.UUID, requesterEmail string) (*AcceptInvitationResponse, error)
	AcceptByToken(ctx context.Context, token string, requesterID uuid.UUID, requesterEmail string) (*AcceptInvitationResponse, error)
	Revoke(ctx context.Context, teamID, invitationID, requesterID uuid.UUID) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// DrillServiceInterface defines the interface for drill service
type DrillServiceInterface interface {
	Create(ctx context.Context, req *CreateDrillRequest, requesterID uuid.UUID) (*DrillResponse, error)
	GetByID(ctx context.Context, id, requesterID uuid.UUID) (*DrillResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID, sport string) ([]DrillResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDrillRequest, requesterID uuid.UUID) (*DrillResponse, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
	Share(ctx context.Context, drillID, teamID, requesterID uuid.UUID) error
	Unshare(ctx context.Context, drillID, teamID, requesterID uuid.UUID) error
}

// PlanServiceInterface defines the interface for training plan service
type PlanServiceInterface interface {
	Create(ctx context.Context, req *CreatePlanRequest, requesterID uuid.UUID) (*PlanResponse, error)
	GetByID(ctx context.Context, id, requesterID uuid.UUID) (*PlanResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]PlanResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePlanRequest, requesterID uuid.UUID) (*PlanResponse, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
	AddDrill(ctx context.Context, planID uuid.UUID, req *AddDrillRequest, requesterID uuid.UUID) (*PlanResponse, error)
	Reorder(ctx context.Context, planID uuid.UUID, req *ReorderRequest, requesterID uuid.UUID) (*PlanResponse, error)
	RemoveItem(ctx context.Context, planID, itemID, requesterID uuid.UUID) (*PlanResponse, error)
	ReplaceItems(ctx context.Context, planID uuid.UUID, req *ReplaceItemsRequest, requesterID uuid.UUID) (*PlanResponse, error)
	Share(ctx context.Context, planID, teamID, requesterID uuid.UUID) error
	Unshare(ctx context.Context, planID, teamID, requesterID uuid.UUID) error
}
