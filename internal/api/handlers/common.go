package handlers

import (
	"errors"
	"net/http"

	apperrors "practice-plan-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps domain errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsExpired(err):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err), errors.Is(err, apperrors.ErrCreatorIrremovable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathUUID parses a UUID path parameter, answering 400 itself on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
