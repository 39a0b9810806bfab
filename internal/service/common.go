package service

import (
	"context"
	"errors"
	"fmt"

	"practice-plan-backend/internal/database/models"
	apperrors "practice-plan-backend/internal/errors"

	"github.com/google/uuid"
)

// wrapStorage turns a storage error into the domain taxonomy: request
// deadline overruns become retryable UnavailableError, everything else is
// wrapped with the failed action.
func wrapStorage(action string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewUnavailableError(fmt.Sprintf("storage timeout while trying to %s", action))
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// validatePrivacy enforces the privacy/team pairing rule shared by drills and
// plans: team_id must be set iff privacy is "team", and the owner must belong
// to that team.
func validatePrivacy(ctx context.Context, privacy models.PrivacyLevel, teamID *uuid.UUID, ownerID uuid.UUID, members TeamMemberChecker) error {
	if !privacy.IsValid() {
		return apperrors.NewValidationError("privacy_level", "must be one of private, team, public")
	}
	if privacy == models.PrivacyTeam {
		if teamID == nil {
			return apperrors.NewValidationError("team_id", "required when privacy_level is team")
		}
		isMember, err := members.IsMember(ctx, *teamID, ownerID)
		if err != nil {
			return wrapStorage("verify team membership", err)
		}
		if !isMember {
			return apperrors.ErrNotTeamMember
		}
	} else if teamID != nil {
		return apperrors.NewValidationError("team_id", "must be empty unless privacy_level is team")
	}
	return nil
}

// TeamMemberChecker is the slice of the membership repository the privacy
// rule needs.
type TeamMemberChecker interface {
	IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
}

// contains reports whether id is in ids
func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
