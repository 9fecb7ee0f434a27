// File: internal/profile/service.go
package profile

import (
	"context"
	"net/http"

	"quotes_backend/internal/common"
	"quotes_backend/internal/shared"

	"go.uber.org/zap"
)

// Service defines the interface for profile-related business logic.
type Service interface {
	GetOrCreateProfile(ctx context.Context, principal *shared.Principal) (*Profile, bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new profile service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetOrCreateProfile fetches the principal's profile, creating it on first
// access seeded from the token's email and display name. Two concurrent first
// fetches converge on a single row: the loser's insert is rejected by the
// unique index and the winner's row is re-read.
func (s *service) GetOrCreateProfile(ctx context.Context, principal *shared.Principal) (*Profile, bool, error) {
	existing, err := s.repo.FindByFirebaseUID(ctx, principal.UID)
	if err == nil {
		return existing, false, nil
	}
	if !common.IsNotFoundError(err) {
		s.logger.Error("Failed to look up profile", zap.Error(err), zap.String("uid", principal.UID))
		return nil, false, err
	}

	newProfile := &Profile{
		FirebaseUID: principal.UID,
		DisplayName: principal.DisplayName,
		Email:       principal.Email,
	}
	createErr := s.repo.Create(ctx, newProfile)
	if createErr == nil {
		s.logger.Info("Profile created", zap.String("uid", principal.UID), zap.Uint("id", newProfile.ID))
		return newProfile, true, nil
	}

	if apiErr, ok := common.IsAPIError(createErr); ok && apiErr.StatusCode == http.StatusConflict {
		// Lost the creation race; the other writer's row is authoritative.
		winner, findErr := s.repo.FindByFirebaseUID(ctx, principal.UID)
		if findErr != nil {
			return nil, false, findErr
		}
		return winner, false, nil
	}

	s.logger.Error("Failed to create profile", zap.Error(createErr), zap.String("uid", principal.UID))
	return nil, false, createErr
}
