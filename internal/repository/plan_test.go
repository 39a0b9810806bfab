//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlanRepositoryTestSuite tests the PlanRepository
type PlanRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlanRepository
	userRepo      *UserRepository
	drillRepo     *DrillRepository
	factories     *testutils.FactorySet

	owner *models.User
	drill *models.Drill
}

// SetupSuite runs before all tests in the suite
func (suite *PlanRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlanRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.drillRepo = NewDrillRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlanRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a user with a drill
func (suite *PlanRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.owner = suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(context.Background(), suite.owner))
	suite.drill = suite.factories.Drill.Create(suite.owner.ID)
	suite.Require().NoError(suite.drillRepo.Create(context.Background(), suite.drill))
}

// TearDownTest runs after each test
func (suite *PlanRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createPlanWithItems creates a plan with n items for the suite's drill
func (suite *PlanRepositoryTestSuite) createPlanWithItems(n int) *models.TrainingPlan {
	plan := suite.factories.Plan.Create(suite.owner.ID)
	for i := 0; i < n; i++ {
		plan.Items = append(plan.Items, models.PlanItem{
			DrillID:         suite.drill.ID,
			DurationMinutes: 10 + i,
		})
	}
	suite.Require().NoError(suite.repo.Create(context.Background(), plan))
	return plan
}

// positions returns the plan's item positions in storage order
func (suite *PlanRepositoryTestSuite) positions(planID uuid.UUID) []int {
	items, err := suite.repo.GetItems(context.Background(), planID)
	suite.Require().NoError(err)
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.Position)
	}
	return out
}

// TestCreateAssignsDensePositions tests that initial items get positions 0..n-1
func (suite *PlanRepositoryTestSuite) TestCreateAssignsDensePositions() {
	plan := suite.createPlanWithItems(3)

	suite.Equal([]int{0, 1, 2}, suite.positions(plan.ID))
}

// TestGetWithItemsOrdersByPosition tests the ordered preload
func (suite *PlanRepositoryTestSuite) TestGetWithItemsOrdersByPosition() {
	plan := suite.createPlanWithItems(3)

	loaded, err := suite.repo.GetWithItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Len(loaded.Items, 3)
	for i, item := range loaded.Items {
		suite.Equal(i, item.Position)
		suite.NotNil(item.Drill)
		suite.Equal(suite.drill.Title, item.Drill.Title)
	}
}

// TestAddItemAppends tests appending at the end
func (suite *PlanRepositoryTestSuite) TestAddItemAppends() {
	plan := suite.createPlanWithItems(2)

	item := &models.PlanItem{DrillID: suite.drill.ID, DurationMinutes: 5}
	err := suite.repo.AddItem(context.Background(), plan.ID, item, nil)
	suite.NoError(err)

	suite.Equal(2, item.Position)
	suite.Equal([]int{0, 1, 2}, suite.positions(plan.ID))
}

// TestAddItemInserts tests inserting in the middle shifts later items up
func (suite *PlanRepositoryTestSuite) TestAddItemInserts() {
	plan := suite.createPlanWithItems(3)
	before, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.Require().NoError(err)

	at := 1
	item := &models.PlanItem{DrillID: suite.drill.ID, DurationMinutes: 5}
	err = suite.repo.AddItem(context.Background(), plan.ID, item, &at)
	suite.NoError(err)

	after, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Len(after, 4)
	suite.Equal([]int{0, 1, 2, 3}, suite.positions(plan.ID))
	suite.Equal(item.ID, after[1].ID)
	// the item previously at 1 moved to 2
	suite.Equal(before[1].ID, after[2].ID)
}

// TestReorder tests an exact-permutation reorder
func (suite *PlanRepositoryTestSuite) TestReorder() {
	plan := suite.createPlanWithItems(3)
	items, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.Require().NoError(err)

	newOrder := []uuid.UUID{items[2].ID, items[0].ID, items[1].ID}
	err = suite.repo.Reorder(context.Background(), plan.ID, newOrder)
	suite.NoError(err)

	after, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Equal(newOrder[0], after[0].ID)
	suite.Equal(newOrder[1], after[1].ID)
	suite.Equal(newOrder[2], after[2].ID)
	suite.Equal([]int{0, 1, 2}, suite.positions(plan.ID))
}

// TestReorderRejectsBadPermutations tests wrong length, foreign and duplicate IDs
func (suite *PlanRepositoryTestSuite) TestReorderRejectsBadPermutations() {
	plan := suite.createPlanWithItems(2)
	items, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.Require().NoError(err)

	// Too short
	err = suite.repo.Reorder(context.Background(), plan.ID, []uuid.UUID{items[0].ID})
	suite.ErrorIs(err, apperrors.ErrInvalidOrder)

	// Foreign ID
	err = suite.repo.Reorder(context.Background(), plan.ID, []uuid.UUID{items[0].ID, uuid.New()})
	suite.ErrorIs(err, apperrors.ErrInvalidOrder)

	// Duplicate ID
	err = suite.repo.Reorder(context.Background(), plan.ID, []uuid.UUID{items[0].ID, items[0].ID})
	suite.ErrorIs(err, apperrors.ErrInvalidOrder)

	// Original order untouched
	suite.Equal([]int{0, 1}, suite.positions(plan.ID))
}

// TestRemoveItemCompacts tests that removal closes the position gap
func (suite *PlanRepositoryTestSuite) TestRemoveItemCompacts() {
	plan := suite.createPlanWithItems(3)
	items, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.Require().NoError(err)

	err = suite.repo.RemoveItem(context.Background(), plan.ID, items[1].ID)
	suite.NoError(err)

	after, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Len(after, 2)
	suite.Equal([]int{0, 1}, suite.positions(plan.ID))
	suite.Equal(items[0].ID, after[0].ID)
	suite.Equal(items[2].ID, after[1].ID)
}

// TestRemoveItemUnknown tests removing an item that is not in the plan
func (suite *PlanRepositoryTestSuite) TestRemoveItemUnknown() {
	plan := suite.createPlanWithItems(1)

	err := suite.repo.RemoveItem(context.Background(), plan.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestReplaceItems tests the atomic item list swap
func (suite *PlanRepositoryTestSuite) TestReplaceItems() {
	plan := suite.createPlanWithItems(3)

	replacement := []models.PlanItem{
		{DrillID: suite.drill.ID, DurationMinutes: 30},
		{DrillID: suite.drill.ID, DurationMinutes: 40},
	}
	err := suite.repo.ReplaceItems(context.Background(), plan.ID, replacement)
	suite.NoError(err)

	after, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Len(after, 2)
	suite.Equal([]int{0, 1}, suite.positions(plan.ID))
	suite.Equal(30, after[0].DurationMinutes)
	suite.Equal(40, after[1].DurationMinutes)
}

// TestReplaceItemsEmpty tests clearing the plan
func (suite *PlanRepositoryTestSuite) TestReplaceItemsEmpty() {
	plan := suite.createPlanWithItems(2)

	err := suite.repo.ReplaceItems(context.Background(), plan.ID, nil)
	suite.NoError(err)

	after, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Empty(after)
}

// TestDeleteCascade tests that deleting the plan removes items and grants
func (suite *PlanRepositoryTestSuite) TestDeleteCascade() {
	plan := suite.createPlanWithItems(2)

	err := suite.repo.DeleteCascade(context.Background(), plan.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(context.Background(), plan.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	items, err := suite.repo.GetItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Empty(items)
}

// TestDrillDeleteLeavesItems tests that deleting a drill keeps referencing
// plan items in place, with their duration snapshots intact
func (suite *PlanRepositoryTestSuite) TestDrillDeleteLeavesItems() {
	plan := suite.createPlanWithItems(2)

	err := suite.drillRepo.DeleteCascade(context.Background(), suite.drill.ID)
	suite.NoError(err)

	loaded, err := suite.repo.GetWithItems(context.Background(), plan.ID)
	suite.NoError(err)
	suite.Len(loaded.Items, 2)
	for i, item := range loaded.Items {
		suite.Nil(item.Drill)
		suite.Equal(suite.drill.ID, item.DrillID)
		suite.Equal(10+i, item.DurationMinutes)
	}
}

// TestListByTeams tests listing team-scoped plans
func (suite *PlanRepositoryTestSuite) TestListByTeams() {
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	team := suite.factories.Team.Create(suite.owner.ID)
	suite.Require().NoError(teamRepo.CreateWithOwner(context.Background(), team))

	teamPlan := suite.factories.Plan.ForTeam(suite.owner.ID, team.ID)
	suite.Require().NoError(suite.repo.Create(context.Background(), teamPlan))
	privatePlan := suite.factories.Plan.Create(suite.owner.ID)
	suite.Require().NoError(suite.repo.Create(context.Background(), privatePlan))

	plans, err := suite.repo.ListByTeams(context.Background(), []uuid.UUID{team.ID})
	suite.NoError(err)
	suite.Len(plans, 1)
	suite.Equal(teamPlan.ID, plans[0].ID)

	plans, err = suite.repo.ListByTeams(context.Background(), nil)
	suite.NoError(err)
	suite.Empty(plans)
}

// TestPlanRepositoryTestSuite runs the test suite
func TestPlanRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlanRepositoryTestSuite))
}
