package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"practice-plan-backend/internal/api/handlers"
	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"
	"practice-plan-backend/internal/mocks"
	"practice-plan-backend/internal/service"
	"practice-plan-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DrillHandlerTestSuite defines the test suite for DrillHandler
type DrillHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDrillServiceInterface
	handler     *handlers.DrillHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DrillHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDrillServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDrillHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.IdentityStub(suite.userID, "coach@test.com"))
	drills := v1.Group("/drills")
	{
		drills.POST("", suite.handler.CreateDrill)
		drills.GET("", suite.handler.ListDrills)
		drills.GET("/:id", suite.handler.GetDrill)
		drills.PUT("/:id", suite.handler.UpdateDrill)
		drills.DELETE("/:id", suite.handler.DeleteDrill)
		drills.POST("/:id/share/:teamId", suite.handler.ShareDrill)
		drills.DELETE("/:id/share/:teamId", suite.handler.UnshareDrill)
	}
}

// TearDownTest cleans up after each test
func (suite *DrillHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateDrill tests the CreateDrill handler
func (suite *DrillHandlerTestSuite) TestCreateDrill() {
	requestBody := map[string]interface{}{
		"title":            "Passing Square",
		"sport":            "soccer",
		"duration_minutes": 15,
		"privacy_level":    "private",
	}
	expectedResponse := &service.DrillResponse{
		ID:              uuid.New(),
		Title:           "Passing Square",
		Sport:           "soccer",
		DurationMinutes: 15,
		SkillLevel:      models.SkillAllLevels,
		UserID:          suite.userID,
		PrivacyLevel:    models.PrivacyPrivate,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), suite.userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/drills", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.DrillResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Passing Square", response.Title)
}

// TestGetDrill tests the GetDrill handler
func (suite *DrillHandlerTestSuite) TestGetDrill() {
	suite.T().Run("Success", func(t *testing.T) {
		drillID := uuid.New()
		expectedResponse := &service.DrillResponse{ID: drillID, Title: "Passing Square", Shared: true}

		suite.mockService.EXPECT().
			GetByID(gomock.Any(), drillID, suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/drills/%s", drillID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.DrillResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Shared)
	})

	suite.T().Run("Hidden", func(t *testing.T) {
		drillID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(gomock.Any(), drillID, suite.userID).
			Return(nil, apperrors.ErrDrillNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/drills/%s", drillID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestListDrills tests the ListDrills handler with a sport filter
func (suite *DrillHandlerTestSuite) TestListDrills() {
	expected := []service.DrillResponse{
		{ID: uuid.New(), Title: "Passing Square", Sport: "soccer"},
	}

	suite.mockService.EXPECT().
		ListForUser(gomock.Any(), suite.userID, "soccer").
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/drills?sport=soccer", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.DrillResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestUpdateDrill tests the UpdateDrill handler
func (suite *DrillHandlerTestSuite) TestUpdateDrill() {
	suite.T().Run("NotOwner", func(t *testing.T) {
		drillID := uuid.New()
		requestBody := map[string]interface{}{
			"title":         "Passing Diamond",
			"sport":         "soccer",
			"privacy_level": "public",
		}

		suite.mockService.EXPECT().
			Update(gomock.Any(), drillID, gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrNotOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/drills/%s", drillID), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestDeleteDrill tests the DeleteDrill handler
func (suite *DrillHandlerTestSuite) TestDeleteDrill() {
	drillID := uuid.New()

	suite.mockService.EXPECT().
		Delete(gomock.Any(), drillID, suite.userID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/drills/%s", drillID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestShareDrill tests the ShareDrill handler
func (suite *DrillHandlerTestSuite) TestShareDrill() {
	suite.T().Run("Success", func(t *testing.T) {
		drillID := uuid.New()
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Share(gomock.Any(), drillID, teamID, suite.userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/drills/%s/share/%s", drillID, teamID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("AlreadyShared", func(t *testing.T) {
		drillID := uuid.New()
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Share(gomock.Any(), drillID, teamID, suite.userID).
			Return(apperrors.ErrDrillAccessExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/drills/%s/share/%s", drillID, teamID), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestUnshareDrill tests the UnshareDrill handler
func (suite *DrillHandlerTestSuite) TestUnshareDrill() {
	drillID := uuid.New()
	teamID := uuid.New()

	suite.mockService.EXPECT().
		Unshare(gomock.Any(), drillID, teamID, suite.userID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		fmt.Sprintf("/api/v1/drills/%s/share/%s", drillID, teamID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDrillHandlerTestSuite runs the test suite
func TestDrillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DrillHandlerTestSuite))
}
