package service_test

import (
	"context"
	"testing"

	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/mocks"
	"practice-plan-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PlanServiceTestSuite defines the test suite for PlanService
type PlanServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockPlanRepo        *mocks.MockPlanRepositoryInterface
	mockMemberRepo      *mocks.MockTeamMemberRepositoryInterface
	mockAccessRepo      *mocks.MockTeamPlanAccessRepositoryInterface
	mockDrillRepo       *mocks.MockDrillRepositoryInterface
	mockDrillAccessRepo *mocks.MockTeamDrillAccessRepositoryInterface
	planService         *service.PlanService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *PlanServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlanRepo = mocks.NewMockPlanRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockAccessRepo = mocks.NewMockTeamPlanAccessRepositoryInterface(suite.ctrl)
	suite.mockDrillRepo = mocks.NewMockDrillRepositoryInterface(suite.ctrl)
	suite.mockDrillAccessRepo = mocks.NewMockTeamDrillAccessRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.planService = service.NewPlanService(
		suite.mockPlanRepo,
		suite.mockMemberRepo,
		suite.mockAccessRepo,
		suite.mockDrillRepo,
		suite.mockDrillAccessRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *PlanServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlanServiceTestSuite) newPlan(ownerID uuid.UUID, privacy models.PrivacyLevel) *models.TrainingPlan {
	return &models.TrainingPlan{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Title:           "Tuesday Practice",
		Sport:           "soccer",
		DurationMinutes: 90,
		UserID:          ownerID,
		PrivacyLevel:    privacy,
	}
}

func (suite *PlanServiceTestSuite) newDrill(ownerID uuid.UUID, privacy models.PrivacyLevel, duration int) *models.Drill {
	return &models.Drill{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Title:           "Passing Square",
		Sport:           "soccer",
		DurationMinutes: duration,
		UserID:          ownerID,
		PrivacyLevel:    privacy,
	}
}

// TestCreatePlan tests creating a plan with an initial item list
func (suite *PlanServiceTestSuite) TestCreatePlan() {
	requesterID := uuid.New()
	drill := suite.newDrill(requesterID, models.PrivacyPrivate, 20)
	req := &service.CreatePlanRequest{
		Title:           "Tuesday Practice",
		Sport:           "soccer",
		DurationMinutes: 90,
		PrivacyLevel:    models.PrivacyPrivate,
		Items:           []service.PlanItemRequest{{DrillID: drill.ID}},
	}

	planID := uuid.New()
	suite.mockDrillRepo.EXPECT().
		GetByID(gomock.Any(), drill.ID).
		Return(drill, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, plan *models.TrainingPlan) error {
			plan.ID = planID
			return nil
		}).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), planID).
		Return(&models.TrainingPlan{
			BaseModel:       models.BaseModel{ID: planID},
			Title:           "Tuesday Practice",
			Sport:           "soccer",
			DurationMinutes: 90,
			UserID:          requesterID,
			PrivacyLevel:    models.PrivacyPrivate,
			Items: []models.PlanItem{
				{
					BaseModel:       models.BaseModel{ID: uuid.New()},
					TrainingPlanID:  planID,
					DrillID:         drill.ID,
					Position:        0,
					DurationMinutes: 20,
					Drill:           drill,
				},
			},
		}, nil).
		Times(1)

	response, err := suite.planService.Create(context.Background(), req, requesterID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Tuesday Practice", response.Title)
	assert.Len(suite.T(), response.Items, 1)
	assert.Equal(suite.T(), 20, response.Items[0].DurationMinutes)
	assert.Equal(suite.T(), 20, response.TotalDurationMinutes)
	assert.Equal(suite.T(), "Passing Square", response.Items[0].DrillTitle)
	assert.False(suite.T(), response.Shared)
}

// TestCreatePlanDurationOverride tests overriding the drill's duration snapshot
func (suite *PlanServiceTestSuite) TestCreatePlanDurationOverride() {
	requesterID := uuid.New()
	drill := suite.newDrill(requesterID, models.PrivacyPrivate, 20)
	override := 35
	req := &service.CreatePlanRequest{
		Title:        "Tuesday Practice",
		Sport:        "soccer",
		PrivacyLevel: models.PrivacyPrivate,
		Items:        []service.PlanItemRequest{{DrillID: drill.ID, DurationMinutes: &override}},
	}

	planID := uuid.New()
	suite.mockDrillRepo.EXPECT().
		GetByID(gomock.Any(), drill.ID).
		Return(drill, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, plan *models.TrainingPlan) error {
			plan.ID = planID
			assert.Equal(suite.T(), 35, plan.Items[0].DurationMinutes)
			return nil
		}).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), planID).
		Return(&models.TrainingPlan{
			BaseModel: models.BaseModel{ID: planID},
			UserID:    requesterID,
		}, nil).
		Times(1)

	response, err := suite.planService.Create(context.Background(), req, requesterID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestCreatePlanInvisibleDrill tests that a drill the requester cannot see
// cannot be planned
func (suite *PlanServiceTestSuite) TestCreatePlanInvisibleDrill() {
	requesterID := uuid.New()
	drill := suite.newDrill(uuid.New(), models.PrivacyPrivate, 20)
	req := &service.CreatePlanRequest{
		Title:        "Tuesday Practice",
		Sport:        "soccer",
		PrivacyLevel: models.PrivacyPrivate,
		Items:        []service.PlanItemRequest{{DrillID: drill.ID}},
	}

	suite.mockDrillRepo.EXPECT().
		GetByID(gomock.Any(), drill.ID).
		Return(drill, nil).
		Times(1)

	response, err := suite.planService.Create(context.Background(), req, requesterID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDrillNotFound)
}

// TestGetPlanMissingDrillPlaceholder tests the placeholder for deleted drills
func (suite *PlanServiceTestSuite) TestGetPlanMissingDrillPlaceholder() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	loaded := *plan
	loaded.Items = []models.PlanItem{
		{
			BaseModel:       models.BaseModel{ID: uuid.New()},
			TrainingPlanID:  plan.ID,
			DrillID:         uuid.New(),
			Position:        0,
			DurationMinutes: 25,
			Drill:           nil,
		},
	}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(&loaded, nil).
		Times(1)

	response, err := suite.planService.GetByID(context.Background(), plan.ID, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.Items, 1)
	assert.Equal(suite.T(), service.UnknownDrillTitle, response.Items[0].DrillTitle)
	assert.True(suite.T(), response.Items[0].DrillMissing)
	assert.Equal(suite.T(), 25, response.Items[0].DurationMinutes)
}

// TestGetPlanPrivateHidden tests that private plans are hidden from others
func (suite *PlanServiceTestSuite) TestGetPlanPrivateHidden() {
	plan := suite.newPlan(uuid.New(), models.PrivacyPrivate)

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.GetByID(context.Background(), plan.ID, uuid.New())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlanNotFound)
}

// TestListPlansForUser tests the union of owned, team and granted plans
func (suite *PlanServiceTestSuite) TestListPlansForUser() {
	userID := uuid.New()
	teamID := uuid.New()
	owned := suite.newPlan(userID, models.PrivacyPrivate)
	teamPlan := suite.newPlan(uuid.New(), models.PrivacyTeam)
	teamPlan.TeamID = &teamID
	granted := suite.newPlan(uuid.New(), models.PrivacyTeam)

	suite.mockPlanRepo.EXPECT().
		ListOwned(gomock.Any(), userID).
		Return([]models.TrainingPlan{*owned}, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetTeamIDsForUser(gomock.Any(), userID).
		Return([]uuid.UUID{teamID}, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		ListByTeams(gomock.Any(), []uuid.UUID{teamID}).
		Return([]models.TrainingPlan{*teamPlan}, nil).
		Times(1)
	suite.mockAccessRepo.EXPECT().
		ListPlanIDsForTeams(gomock.Any(), []uuid.UUID{teamID}).
		Return([]uuid.UUID{granted.ID, teamPlan.ID}, nil).
		Times(1)
	// teamPlan comes back twice; the listing collapses it
	suite.mockPlanRepo.EXPECT().
		ListByIDs(gomock.Any(), []uuid.UUID{granted.ID, teamPlan.ID}).
		Return([]models.TrainingPlan{*granted, *teamPlan}, nil).
		Times(1)

	responses, err := suite.planService.ListForUser(context.Background(), userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 3)
	assert.Equal(suite.T(), owned.ID, responses[0].ID)
	assert.False(suite.T(), responses[0].Shared)
	assert.True(suite.T(), responses[1].Shared)
	assert.True(suite.T(), responses[2].Shared)
}

// TestUpdatePlanNotOwner tests that a viewer cannot update a plan they can see
func (suite *PlanServiceTestSuite) TestUpdatePlanNotOwner() {
	plan := suite.newPlan(uuid.New(), models.PrivacyPublic)
	req := &service.UpdatePlanRequest{
		Title:        "Wednesday Practice",
		Sport:        "soccer",
		PrivacyLevel: models.PrivacyPublic,
	}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.Update(context.Background(), plan.ID, req, uuid.New())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwner)
}

// TestDeletePlan tests deleting an owned plan
func (suite *PlanServiceTestSuite) TestDeletePlan() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		DeleteCascade(gomock.Any(), plan.ID).
		Return(nil).
		Times(1)

	err := suite.planService.Delete(context.Background(), plan.ID, ownerID)

	assert.NoError(suite.T(), err)
}

// TestAddDrill tests appending a drill to a plan
func (suite *PlanServiceTestSuite) TestAddDrill() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	drill := suite.newDrill(ownerID, models.PrivacyPrivate, 15)
	req := &service.AddDrillRequest{DrillID: drill.ID}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockDrillRepo.EXPECT().
		GetByID(gomock.Any(), drill.ID).
		Return(drill, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		AddItem(gomock.Any(), plan.ID, gomock.Any(), nil).
		DoAndReturn(func(ctx context.Context, planID uuid.UUID, item *models.PlanItem, atPosition *int) error {
			assert.Equal(suite.T(), 15, item.DurationMinutes)
			return nil
		}).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.AddDrill(context.Background(), plan.ID, req, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestAddDrillAtPosition tests inserting a drill at a specific position
func (suite *PlanServiceTestSuite) TestAddDrillAtPosition() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	drill := suite.newDrill(ownerID, models.PrivacyPrivate, 15)
	position := 1
	req := &service.AddDrillRequest{DrillID: drill.ID, Position: &position}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockDrillRepo.EXPECT().
		GetByID(gomock.Any(), drill.ID).
		Return(drill, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		AddItem(gomock.Any(), plan.ID, gomock.Any(), &position).
		Return(nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.AddDrill(context.Background(), plan.ID, req, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestReorder tests reordering plan items
func (suite *PlanServiceTestSuite) TestReorder() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	itemIDs := []uuid.UUID{uuid.New(), uuid.New()}
	req := &service.ReorderRequest{ItemIDs: itemIDs}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		Reorder(gomock.Any(), plan.ID, itemIDs).
		Return(nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.Reorder(context.Background(), plan.ID, req, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestReorderEmptyPlan tests that an empty list reorders an empty plan
func (suite *PlanServiceTestSuite) TestReorderEmptyPlan() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	req := &service.ReorderRequest{ItemIDs: []uuid.UUID{}}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		Reorder(gomock.Any(), plan.ID, req.ItemIDs).
		Return(nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.Reorder(context.Background(), plan.ID, req, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Empty(suite.T(), response.Items)
}

// TestReorderInvalidPermutation tests a reorder that is not an exact permutation
func (suite *PlanServiceTestSuite) TestReorderInvalidPermutation() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	req := &service.ReorderRequest{ItemIDs: []uuid.UUID{uuid.New()}}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		Reorder(gomock.Any(), plan.ID, req.ItemIDs).
		Return(apperrors.ErrInvalidOrder).
		Times(1)

	response, err := suite.planService.Reorder(context.Background(), plan.ID, req, ownerID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidOrder)
}

// TestRemoveItem tests removing an item from a plan
func (suite *PlanServiceTestSuite) TestRemoveItem() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	itemID := uuid.New()

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		RemoveItem(gomock.Any(), plan.ID, itemID).
		Return(nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.RemoveItem(context.Background(), plan.ID, itemID, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestRemoveItemNotFound tests removing an item that is not in the plan
func (suite *PlanServiceTestSuite) TestRemoveItemNotFound() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	itemID := uuid.New()

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		RemoveItem(gomock.Any(), plan.ID, itemID).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.planService.RemoveItem(context.Background(), plan.ID, itemID, ownerID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlanItemNotFound)
}

// TestReplaceItems tests atomically swapping the item list
func (suite *PlanServiceTestSuite) TestReplaceItems() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	drill := suite.newDrill(ownerID, models.PrivacyPrivate, 10)
	req := &service.ReplaceItemsRequest{
		Items: []service.PlanItemRequest{{DrillID: drill.ID}, {DrillID: drill.ID}},
	}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockDrillRepo.EXPECT().
		GetByID(gomock.Any(), drill.ID).
		Return(drill, nil).
		Times(2)
	suite.mockPlanRepo.EXPECT().
		ReplaceItems(gomock.Any(), plan.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, planID uuid.UUID, items []models.PlanItem) error {
			assert.Len(suite.T(), items, 2)
			return nil
		}).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.ReplaceItems(context.Background(), plan.ID, req, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestReplaceItemsEmpty tests clearing a plan with an empty list
func (suite *PlanServiceTestSuite) TestReplaceItemsEmpty() {
	ownerID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	req := &service.ReplaceItemsRequest{Items: []service.PlanItemRequest{}}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		ReplaceItems(gomock.Any(), plan.ID, gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockPlanRepo.EXPECT().
		GetWithItems(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)

	response, err := suite.planService.ReplaceItems(context.Background(), plan.ID, req, ownerID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Empty(suite.T(), response.Items)
}

// TestSharePlan tests granting a team access to a plan
func (suite *PlanServiceTestSuite) TestSharePlan() {
	ownerID := uuid.New()
	teamID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockAccessRepo.EXPECT().
		GetByTeamAndPlan(gomock.Any(), teamID, plan.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockAccessRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.planService.Share(context.Background(), plan.ID, teamID, ownerID)

	assert.NoError(suite.T(), err)
}

// TestSharePlanAlreadyShared tests sharing the same plan with the same team twice
func (suite *PlanServiceTestSuite) TestSharePlanAlreadyShared() {
	ownerID := uuid.New()
	teamID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)
	grant := &models.TeamPlanAccess{TeamID: teamID, TrainingPlanID: plan.ID}

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockAccessRepo.EXPECT().
		GetByTeamAndPlan(gomock.Any(), teamID, plan.ID).
		Return(grant, nil).
		Times(1)

	err := suite.planService.Share(context.Background(), plan.ID, teamID, ownerID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlanAccessExists)
}

// TestUnsharePlan tests revoking a team's grant
func (suite *PlanServiceTestSuite) TestUnsharePlan() {
	ownerID := uuid.New()
	teamID := uuid.New()
	plan := suite.newPlan(ownerID, models.PrivacyPrivate)

	suite.mockPlanRepo.EXPECT().
		GetByID(gomock.Any(), plan.ID).
		Return(plan, nil).
		Times(1)
	suite.mockAccessRepo.EXPECT().
		Delete(gomock.Any(), teamID, plan.ID).
		Return(nil).
		Times(1)

	err := suite.planService.Unshare(context.Background(), plan.ID, teamID, ownerID)

	assert.NoError(suite.T(), err)
}

// TestPlanServiceTestSuite runs the test suite
func TestPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}
