package auth

import (
	"net/http"
	"strings"

	apperrors "practice-plan-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// CurrentUser extracts the authenticated user's ID and email from context.
// Returns ErrMissingIdentity when the request was not authenticated.
func CurrentUser(c *gin.Context) (uuid.UUID, string, error) {
	rawID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, "", apperrors.ErrMissingIdentity
	}
	userID, ok := rawID.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, "", apperrors.ErrMissingIdentity
	}

	email, _ := c.Get("email")
	emailStr, _ := email.(string)
	return userID, emailStr, nil
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
