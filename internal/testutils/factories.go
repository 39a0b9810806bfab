package testutils

import (
	"fmt"
	"time"

	"practice-plan-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for convenience in tests
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	TeamMember *TeamMemberFactory
	Invitation *InvitationFactory
	Drill      *DrillFactory
	Plan       *PlanFactory
	PlanItem   *PlanItemFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		TeamMember: NewTeamMemberFactory(),
		Invitation: NewInvitationFactory(),
		Drill:      NewDrillFactory(),
		Plan:       NewPlanFactory(),
		PlanItem:   NewPlanItemFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("coach-%s@test.com", id.String()[:8]),
		Name:         "Test Coach",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUVWXYZ012345",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team owned by the given user
func (f *TeamFactory) Create(createdBy uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Test Team",
		CreatedBy: createdBy,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(createdBy uuid.UUID, name string) *models.Team {
	team := f.Create(createdBy)
	team.Name = name
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership linking the user to the team
func (f *TeamMemberFactory) Create(teamID, userID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		UserID: userID,
	}
}

// InvitationFactory provides methods to create test PendingInvitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending invitation for the email on the team, expiring in
// the standard window
func (f *InvitationFactory) Create(teamID uuid.UUID, email string) *models.PendingInvitation {
	id := uuid.New()
	return &models.PendingInvitation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    teamID,
		Email:     email,
		Token:     fmt.Sprintf("token-%s", id.String()),
		ExpiresAt: time.Now().Add(models.InvitationTTL),
	}
}

// Expired creates an invitation already past its expiry
func (f *InvitationFactory) Expired(teamID uuid.UUID, email string) *models.PendingInvitation {
	invitation := f.Create(teamID, email)
	invitation.ExpiresAt = time.Now().Add(-time.Hour)
	return invitation
}

// DrillFactory provides methods to create test Drill data
type DrillFactory struct{}

// NewDrillFactory creates a new DrillFactory
func NewDrillFactory() *DrillFactory {
	return &DrillFactory{}
}

// Create creates a private test drill owned by the given user
func (f *DrillFactory) Create(userID uuid.UUID) *models.Drill {
	return &models.Drill{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "Passing Square",
		Sport:           "soccer",
		ActivityType:    "technical",
		Description:     "Four players pass around a square, one defender presses.",
		DurationMinutes: 15,
		Participants:    5,
		SkillLevel:      models.SkillAllLevels,
		IsCustom:        true,
		UserID:          userID,
		PrivacyLevel:    models.PrivacyPrivate,
	}
}

// Public creates a public test drill owned by the given user
func (f *DrillFactory) Public(userID uuid.UUID) *models.Drill {
	drill := f.Create(userID)
	drill.PrivacyLevel = models.PrivacyPublic
	return drill
}

// ForTeam creates a team-scoped test drill owned by the given user
func (f *DrillFactory) ForTeam(userID, teamID uuid.UUID) *models.Drill {
	drill := f.Create(userID)
	drill.PrivacyLevel = models.PrivacyTeam
	drill.TeamID = &teamID
	return drill
}

// PlanFactory provides methods to create test TrainingPlan data
type PlanFactory struct{}

// NewPlanFactory creates a new PlanFactory
func NewPlanFactory() *PlanFactory {
	return &PlanFactory{}
}

// Create creates a private test plan owned by the given user
func (f *PlanFactory) Create(userID uuid.UUID) *models.TrainingPlan {
	return &models.TrainingPlan{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "Tuesday Practice",
		Sport:           "soccer",
		DurationMinutes: 90,
		UserID:          userID,
		PrivacyLevel:    models.PrivacyPrivate,
	}
}

// ForTeam creates a team-scoped test plan owned by the given user
func (f *PlanFactory) ForTeam(userID, teamID uuid.UUID) *models.TrainingPlan {
	plan := f.Create(userID)
	plan.PrivacyLevel = models.PrivacyTeam
	plan.TeamID = &teamID
	return plan
}

// PlanItemFactory provides methods to create test PlanItem data
type PlanItemFactory struct{}

// NewPlanItemFactory creates a new PlanItemFactory
func NewPlanItemFactory() *PlanItemFactory {
	return &PlanItemFactory{}
}

// Create creates a plan item at the given position with a 10 minute snapshot
func (f *PlanItemFactory) Create(planID, drillID uuid.UUID, position int) *models.PlanItem {
	return &models.PlanItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TrainingPlanID:  planID,
		DrillID:         drillID,
		Position:        position,
		DurationMinutes: 10,
	}
}
