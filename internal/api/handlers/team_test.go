package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"practice-plan-backend/internal/api/handlers"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/mocks"
	"practice-plan-backend/internal/service"
	"practice-plan-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	// Routes behind a stubbed authenticated identity
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.IdentityStub(suite.userID, "coach@test.com"))
	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/leave", suite.handler.LeaveTeam)
		teams.GET("/:id/members", suite.handler.ListMembers)
		teams.DELETE("/:id/members/:userId", suite.handler.RemoveMember)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"name": "U12 Hawks"}
		expectedResponse := &service.TeamResponse{
			ID:          teamID,
			Name:        "U12 Hawks",
			CreatedBy:   suite.userID,
			MemberCount: 1,
			IsOwner:     true,
			CreatedAt:   "2026-01-01T00:00:00Z",
			UpdatedAt:   "2026-01-01T00:00:00Z",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.Name, response.Name)
		assert.True(t, response.IsOwner)
	})

	suite.T().Run("ValidationError", func(t *testing.T) {
		requestBody := map[string]interface{}{"name": ""}

		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), suite.userID).
			Return(nil, apperrors.NewValidationError("name", "name is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		expectedResponse := &service.TeamResponse{
			ID:          teamID,
			Name:        "U12 Hawks",
			MemberCount: 3,
		}

		suite.mockService.EXPECT().
			GetByID(gomock.Any(), teamID, suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, teamID, response.ID)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(gomock.Any(), teamID, suite.userID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	expected := []service.TeamResponse{
		{ID: uuid.New(), Name: "U12 Hawks"},
		{ID: uuid.New(), Name: "U14 Falcons"},
	}

	suite.mockService.EXPECT().
		ListForUser(gomock.Any(), suite.userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.TeamResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.T().Run("NotCreator", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"name": "U13 Hawks"}

		suite.mockService.EXPECT().
			Update(gomock.Any(), teamID, gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrNotTeamCreator).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s", teamID), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(gomock.Any(), teamID, suite.userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("TeamInUse", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(gomock.Any(), teamID, suite.userID).
			Return(apperrors.ErrTeamInUse).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestRemoveMember tests the RemoveMember handler
func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		memberUserID := uuid.New()

		suite.mockService.EXPECT().
			RemoveMember(gomock.Any(), teamID, memberUserID, suite.userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE",
			fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, memberUserID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("CreatorIrremovable", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			RemoveMember(gomock.Any(), teamID, suite.userID, suite.userID).
			Return(apperrors.ErrCreatorIrremovable).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE",
			fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, suite.userID), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestLeaveTeam tests the LeaveTeam handler
func (suite *TeamHandlerTestSuite) TestLeaveTeam() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		Leave(gomock.Any(), teamID, suite.userID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/leave", teamID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestListMembers tests the ListMembers handler
func (suite *TeamHandlerTestSuite) TestListMembers() {
	teamID := uuid.New()
	expected := []service.TeamMemberResponse{
		{ID: uuid.New(), UserID: suite.userID, Email: "coach@test.com", IsCreator: true},
	}

	suite.mockService.EXPECT().
		ListMembers(gomock.Any(), teamID, suite.userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/members", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.TeamMemberResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.True(suite.T(), response[0].IsCreator)
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
