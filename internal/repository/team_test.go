//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	memberRepo    *TeamMemberRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(context.Background(), user))
	return user
}

// TestCreateWithOwner tests that the team and the owner membership are
// created together
func (suite *TeamRepositoryTestSuite) TestCreateWithOwner() {
	owner := suite.createUser()
	team := suite.factories.Team.Create(owner.ID)

	err := suite.repo.CreateWithOwner(context.Background(), team)
	suite.NoError(err)

	found, err := suite.repo.GetByID(context.Background(), team.ID)
	suite.NoError(err)
	suite.Equal(team.Name, found.Name)

	isMember, err := suite.memberRepo.IsMember(context.Background(), team.ID, owner.ID)
	suite.NoError(err)
	suite.True(isMember)

	count, err := suite.repo.GetMemberCount(context.Background(), team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestGetTeamsForUser tests listing a user's teams via the membership join
func (suite *TeamRepositoryTestSuite) TestGetTeamsForUser() {
	owner := suite.createUser()
	other := suite.createUser()

	teamA := suite.factories.Team.WithName(owner.ID, "U12 Hawks")
	suite.Require().NoError(suite.repo.CreateWithOwner(context.Background(), teamA))
	teamB := suite.factories.Team.WithName(other.ID, "U14 Falcons")
	suite.Require().NoError(suite.repo.CreateWithOwner(context.Background(), teamB))

	// owner joins the second team as a regular member
	member := suite.factories.TeamMember.Create(teamB.ID, owner.ID)
	suite.Require().NoError(suite.memberRepo.Create(context.Background(), member))

	teams, err := suite.repo.GetTeamsForUser(context.Background(), owner.ID)
	suite.NoError(err)
	suite.Len(teams, 2)

	teams, err = suite.repo.GetTeamsForUser(context.Background(), other.ID)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal("U14 Falcons", teams[0].Name)
}

// TestDuplicateMembership tests the unique constraint on (team, user)
func (suite *TeamRepositoryTestSuite) TestDuplicateMembership() {
	owner := suite.createUser()
	team := suite.factories.Team.Create(owner.ID)
	suite.Require().NoError(suite.repo.CreateWithOwner(context.Background(), team))

	dup := suite.factories.TeamMember.Create(team.ID, owner.ID)
	err := suite.memberRepo.Create(context.Background(), dup)
	suite.Error(err)
}

// TestDeleteCascade tests that delete removes memberships and invitations
func (suite *TeamRepositoryTestSuite) TestDeleteCascade() {
	owner := suite.createUser()
	team := suite.factories.Team.Create(owner.ID)
	suite.Require().NoError(suite.repo.CreateWithOwner(context.Background(), team))

	invitationRepo := NewInvitationRepository(suite.baseTestSuite.DB)
	invitation := suite.factories.Invitation.Create(team.ID, "invitee@test.com")
	suite.Require().NoError(invitationRepo.Create(context.Background(), invitation))

	err := suite.repo.DeleteCascade(context.Background(), team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(context.Background(), team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	isMember, err := suite.memberRepo.IsMember(context.Background(), team.ID, owner.ID)
	suite.NoError(err)
	suite.False(isMember)

	_, err = invitationRepo.GetByID(context.Background(), invitation.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteCascadeTeamInUse tests that delete is refused while content
// still names the team
func (suite *TeamRepositoryTestSuite) TestDeleteCascadeTeamInUse() {
	owner := suite.createUser()
	team := suite.factories.Team.Create(owner.ID)
	suite.Require().NoError(suite.repo.CreateWithOwner(context.Background(), team))

	drill := suite.factories.Drill.ForTeam(owner.ID, team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(drill).Error)

	err := suite.repo.DeleteCascade(context.Background(), team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamInUse)

	// The team must still exist untouched
	found, err := suite.repo.GetByID(context.Background(), team.ID)
	suite.NoError(err)
	suite.Equal(team.Name, found.Name)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
