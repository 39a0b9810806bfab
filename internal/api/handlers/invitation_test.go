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

// InvitationHandlerTestSuite defines the test suite for InvitationHandler
type InvitationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInvitationServiceInterface
	handler     *handlers.InvitationHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *InvitationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInvitationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewInvitationHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.IdentityStub(suite.userID, "coach@test.com"))
	{
		v1.POST("/teams/:id/invitations", suite.handler.InviteMember)
		v1.GET("/teams/:id/invitations", suite.handler.ListInvitations)
		v1.DELETE("/teams/:id/invitations/:invitationId", suite.handler.RevokeInvitation)
		v1.POST("/invitations/accept", suite.handler.AcceptInvitationByToken)
		v1.POST("/invitations/:id/accept", suite.handler.AcceptInvitation)
		v1.POST("/maintenance/invitations/purge", suite.handler.PurgeExpired)
	}
}

// TearDownTest cleans up after each test
func (suite *InvitationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestInviteMember tests the InviteMember handler
func (suite *InvitationHandlerTestSuite) TestInviteMember() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"email": "new.coach@test.com"}
		expectedResponse := &service.InvitationResponse{
			ID:     uuid.New(),
			TeamID: teamID,
			Email:  "new.coach@test.com",
			Token:  "abc123",
		}

		suite.mockService.EXPECT().
			Invite(gomock.Any(), teamID, gomock.Any(), suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/teams/%s/invitations", teamID), requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.InvitationResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "new.coach@test.com", response.Email)
		assert.NotEmpty(t, response.Token)
	})

	suite.T().Run("AlreadyMember", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{"email": "member@test.com"}

		suite.mockService.EXPECT().
			Invite(gomock.Any(), teamID, gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrTeamMemberExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/teams/%s/invitations", teamID), requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestListInvitations tests the ListInvitations handler
func (suite *InvitationHandlerTestSuite) TestListInvitations() {
	teamID := uuid.New()
	expected := []service.InvitationResponse{
		{ID: uuid.New(), TeamID: teamID, Email: "a@test.com"},
		{ID: uuid.New(), TeamID: teamID, Email: "b@test.com"},
	}

	suite.mockService.EXPECT().
		ListByTeam(gomock.Any(), teamID, suite.userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/teams/%s/invitations", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.InvitationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestRevokeInvitation tests the RevokeInvitation handler
func (suite *InvitationHandlerTestSuite) TestRevokeInvitation() {
	teamID := uuid.New()
	invitationID := uuid.New()

	suite.mockService.EXPECT().
		Revoke(gomock.Any(), teamID, invitationID, suite.userID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		fmt.Sprintf("/api/v1/teams/%s/invitations/%s", teamID, invitationID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestAcceptInvitation tests the AcceptInvitation handler
func (suite *InvitationHandlerTestSuite) TestAcceptInvitation() {
	suite.T().Run("Success", func(t *testing.T) {
		invitationID := uuid.New()
		teamID := uuid.New()
		expectedResponse := &service.AcceptInvitationResponse{
			TeamID: teamID,
			UserID: suite.userID,
		}

		suite.mockService.EXPECT().
			Accept(gomock.Any(), invitationID, suite.userID, "coach@test.com").
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/invitations/%s/accept", invitationID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AcceptInvitationResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, teamID, response.TeamID)
	})

	suite.T().Run("Expired", func(t *testing.T) {
		invitationID := uuid.New()

		suite.mockService.EXPECT().
			Accept(gomock.Any(), invitationID, suite.userID, "coach@test.com").
			Return(nil, apperrors.ErrInvitationExpired).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/invitations/%s/accept", invitationID), nil)

		assert.Equal(t, http.StatusGone, recorder.Code)
	})

	suite.T().Run("EmailMismatch", func(t *testing.T) {
		invitationID := uuid.New()

		suite.mockService.EXPECT().
			Accept(gomock.Any(), invitationID, suite.userID, "coach@test.com").
			Return(nil, apperrors.ErrEmailMismatch).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/invitations/%s/accept", invitationID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestAcceptInvitationByToken tests the token-based accept endpoint
func (suite *InvitationHandlerTestSuite) TestAcceptInvitationByToken() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		expectedResponse := &service.AcceptInvitationResponse{
			TeamID: teamID,
			UserID: suite.userID,
		}

		suite.mockService.EXPECT().
			AcceptByToken(gomock.Any(), "tok-123", suite.userID, "coach@test.com").
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/invitations/accept?token=tok-123", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("MissingToken", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/invitations/accept", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestPurgeExpired tests the maintenance purge endpoint
func (suite *InvitationHandlerTestSuite) TestPurgeExpired() {
	suite.mockService.EXPECT().
		PurgeExpired(gomock.Any()).
		Return(int64(5), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/maintenance/invitations/purge", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]int64
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(5), response["purged"])
}

// TestInvitationHandlerTestSuite runs the test suite
func TestInvitationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationHandlerTestSuite))
}
