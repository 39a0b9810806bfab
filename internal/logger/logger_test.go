package logger_test

import (
	"net/http/httptest"
	"testing"

	"practice-plan-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

// TestWithContext tests that the caller identity stored by the auth
// middleware ends up on the log entry
func TestWithContext(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		c := testContext()
		c.Set("email", "coach@test.com")

		entry := logger.WithContext(c)
		assert.Equal(t, "coach@test.com", entry.Data["user"])
	})

	t.Run("user id without email", func(t *testing.T) {
		c := testContext()
		id := uuid.New()
		c.Set("user_id", id)

		entry := logger.WithContext(c)
		assert.Equal(t, id.String(), entry.Data["user"])
	})

	t.Run("anonymous", func(t *testing.T) {
		c := testContext()

		entry := logger.WithContext(c)
		assert.Equal(t, "anonymous", entry.Data["user"])
	})
}

// TestWithFields tests field chaining
func TestWithFields(t *testing.T) {
	entry := logger.New().WithFields(map[string]interface{}{
		"method": "GET",
		"status": 200,
	}).WithField("path", "/api/v1/teams")

	assert.Equal(t, "GET", entry.Data["method"])
	assert.Equal(t, 200, entry.Data["status"])
	assert.Equal(t, "/api/v1/teams", entry.Data["path"])
}
