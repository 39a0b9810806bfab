package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "drill"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrDrillNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPlanNotFound))
		assert.False(t, IsNotFound(ErrTeamMemberExists))
	})

	t.Run("IsNotFound with wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("loading plan: %w", ErrPlanNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team member", Context: "in this team"}
		assert.Equal(t, "team member already exists in this team", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team member"}
		assert.Equal(t, "team member already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		err2 := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestExpiredError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ExpiredError{Entity: "invitation"}
		assert.Equal(t, "invitation has expired", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrInvitationExpired, &ExpiredError{Entity: "invitation"}))
		assert.False(t, errors.Is(ErrInvitationExpired, &ExpiredError{Entity: "token"}))
	})

	t.Run("IsExpired helper", func(t *testing.T) {
		assert.True(t, IsExpired(ErrInvitationExpired))
		assert.False(t, IsExpired(ErrInvitationNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrMissingIdentity))
		assert.False(t, IsAuthentication(ErrNotOwner))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotTeamCreator))
		assert.True(t, IsAuthorization(ErrEmailMismatch))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("IsAuthorization with wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("removing member: %w", ErrNotTeamCreator)
		assert.True(t, IsAuthorization(wrapped))
	})
}

func TestIsConflict(t *testing.T) {
	t.Run("AlreadyExists errors are conflicts", func(t *testing.T) {
		assert.True(t, IsConflict(ErrTeamMemberExists))
		assert.True(t, IsConflict(ErrPlanAccessExists))
	})

	t.Run("In-use errors are conflicts", func(t *testing.T) {
		assert.True(t, IsConflict(ErrTeamInUse))
		assert.True(t, IsConflict(ErrDrillInUse))
	})

	t.Run("Wrapped in-use error is a conflict", func(t *testing.T) {
		wrapped := fmt.Errorf("deleting team: %w", ErrTeamInUse)
		assert.True(t, IsConflict(wrapped))
	})

	t.Run("Other errors are not conflicts", func(t *testing.T) {
		assert.False(t, IsConflict(ErrTeamNotFound))
		assert.False(t, IsConflict(ErrInvalidOrder))
		assert.False(t, IsConflict(ErrCreatorIrremovable))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("season")
		assert.Equal(t, "season not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("season", "for this team")
		assert.Equal(t, "season already exists for this team", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("title", "is required")
		assert.Equal(t, "validation error: title - is required", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewUnavailableError", func(t *testing.T) {
		err := NewUnavailableError("storage temporarily unavailable")
		assert.True(t, IsUnavailable(err))
		assert.False(t, IsUnavailable(ErrTeamNotFound))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Plan ordering errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidOrder)
	})

	t.Run("Referential integrity errors", func(t *testing.T) {
		assert.Error(t, ErrTeamInUse)
		assert.Error(t, ErrDrillInUse)
		assert.Error(t, ErrCreatorIrremovable)
	})
}
