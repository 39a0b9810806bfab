package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. Entities
// hidden from the caller by privacy rules surface as NotFoundError too, so
// existence never leaks.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ExpiredError represents an operation against an entity past its expiry
type ExpiredError struct {
	Entity string
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%s has expired", e.Entity)
}

// Is enables errors.Is() comparison for ExpiredError
func (e *ExpiredError) Is(target error) bool {
	t, ok := target.(*ExpiredError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// UnavailableError represents a transient storage failure; safe to retry
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound  = &NotFoundError{Entity: "team member"}
	ErrInvitationNotFound  = &NotFoundError{Entity: "invitation"}
	ErrDrillNotFound       = &NotFoundError{Entity: "drill"}
	ErrPlanNotFound        = &NotFoundError{Entity: "training plan"}
	ErrPlanItemNotFound    = &NotFoundError{Entity: "plan item"}
	ErrAccessGrantNotFound = &NotFoundError{Entity: "access grant"}
)

// Already Exists Errors
var (
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTeamMemberExists  = &AlreadyExistsError{Entity: "team member", Context: "in this team"}
	ErrInvitationExists  = &AlreadyExistsError{Entity: "invitation", Context: "for this email on this team"}
	ErrPlanAccessExists  = &AlreadyExistsError{Entity: "plan access grant", Context: "for this team"}
	ErrDrillAccessExists = &AlreadyExistsError{Entity: "drill access grant", Context: "for this team"}
)

// Expired Errors
var (
	ErrInvitationExpired = &ExpiredError{Entity: "invitation"}
)

// Business Logic Errors
var (
	ErrInvalidOrder       = errors.New("new order is not a permutation of the plan's current items")
	ErrTeamInUse          = errors.New("team is still referenced by drills or training plans")
	ErrCreatorIrremovable = errors.New("the team creator cannot be removed from the team")
	ErrDrillInUse         = errors.New("drill is still referenced by training plans")
)

// Authorization Errors
var (
	ErrNotTeamCreator = &AuthorizationError{Message: "only the team creator may perform this operation"}
	ErrNotTeamMember  = &AuthorizationError{Message: "user is not a member of this team"}
	ErrNotOwner       = &AuthorizationError{Message: "only the owner may perform this operation"}
	ErrEmailMismatch  = &AuthorizationError{Message: "invitation was issued for a different email address"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingIdentity    = &AuthenticationError{Message: "caller identity not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsExpired checks if an error is an ExpiredError
func IsExpired(err error) bool {
	var expiredErr *ExpiredError
	return errors.As(err, &expiredErr)
}

// IsUnavailable checks if an error is an UnavailableError
func IsUnavailable(err error) bool {
	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr)
}

// IsConflict checks if an error maps to a 409: uniqueness or referential
// integrity violations.
func IsConflict(err error) bool {
	return IsAlreadyExists(err) ||
		errors.Is(err, ErrTeamInUse) ||
		errors.Is(err, ErrDrillInUse)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewUnavailableError creates a new UnavailableError
func NewUnavailableError(message string) error {
	return &UnavailableError{Message: message}
}
