package repository

import (
	"context"
	"time"

	"practice-plan-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithOwner(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetWithMembers(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamsForUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error)
	GetMemberCount(ctx context.Context, teamID uuid.UUID) (int64, error)
	Update(ctx context.Context, team *models.Team) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for team membership operations
type TeamMemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.TeamMember) error
	GetByTeamAndUser(ctx context.Context, teamID, userID uuid.UUID) (*models.TeamMember, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TeamMember, error)
	GetTeamIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for pending invitation operations
type InvitationRepositoryInterface interface {
	Create(ctx context.Context, invitation *models.PendingInvitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PendingInvitation, error)
	GetByToken(ctx context.Context, token string) (*models.PendingInvitation, error)
	GetByTeamAndEmail(ctx context.Context, teamID uuid.UUID, email string) (*models.PendingInvitation, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.PendingInvitation, error)
	Accept(ctx context.Context, invitation *models.PendingInvitation, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// DrillRepositoryInterface defines the interface for drill repository operations
type DrillRepositoryInterface interface {
	Create(ctx context.Context, drill *models.Drill) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Drill, error)
	ListForUser(ctx context.Context, userID uuid.UUID, teamIDs []uuid.UUID, sport string) ([]models.Drill, error)
	Update(ctx context.Context, drill *models.Drill) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
}

// PlanRepositoryInterface defines the interface for training plan repository operations
type PlanRepositoryInterface interface {
	Create(ctx context.Context, plan *models.TrainingPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TrainingPlan, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*models.TrainingPlan, error)
	ListOwned(ctx context.Context, userID uuid.UUID) ([]models.TrainingPlan, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.TrainingPlan, error)
	ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.TrainingPlan, error)
	Update(ctx context.Context, plan *models.TrainingPlan) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)

	GetItems(ctx context.Context, planID uuid.UUID) ([]models.PlanItem, error)
	AddItem(ctx context.Context, planID uuid.UUID, item *models.PlanItem, atPosition *int) error
	Reorder(ctx context.Context, planID uuid.UUID, newOrder []uuid.UUID) error
	RemoveItem(ctx context.Context, planID, itemID uuid.UUID) error
	ReplaceItems(ctx context.Context, planID uuid.UUID, items []models.PlanItem) error
}

// TeamPlanAccessRepositoryInterface defines the interface for plan sharing grants
type TeamPlanAccessRepositoryInterface interface {
	Create(ctx context.Context, grant *models.TeamPlanAccess) error
	GetByTeamAndPlan(ctx context.Context, teamID, planID uuid.UUID) (*models.TeamPlanAccess, error)
	ListTeamIDsByPlan(ctx context.Context, planID uuid.UUID) ([]uuid.UUID, error)
	ListPlanIDsForTeams(ctx context.Context, teamIDs []uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, teamID, planID uuid.UUID) error
}

// TeamDrillAccessRepositoryInterface defines the interface for drill sharing grants
type TeamDrillAccessRepositoryInterface interface {
	Create(ctx context.Context, grant *models.TeamDrillAccess) error
	GetByTeamAndDrill(ctx context.Context, teamID, drillID uuid.UUID) (*models.TeamDrillAccess, error)
	ListTeamIDsByDrill(ctx context.Context, drillID uuid.UUID) ([]uuid.UUID, error)
	ListDrillIDsForTeams(ctx context.Context, teamIDs []uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, teamID, drillID uuid.UUID) error
}
