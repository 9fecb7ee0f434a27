// File: internal/profile/repository.go
package profile

import (
	"context"
	"errors"
	"strings"

	"quotes_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for profile data operations.
type Repository interface {
	FindByFirebaseUID(ctx context.Context, firebaseUID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM profile repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// FindByFirebaseUID retrieves a profile by its Firebase UID.
func (r *gormRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*Profile, error) {
	var profileModel Profile
	err := r.db.WithContext(ctx).Where("firebase_uid = ?", firebaseUID).First(&profileModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Profile not found for this Firebase UID.")
		}
		return nil, err
	}
	return &profileModel, nil
}

// Create inserts a new profile record. A concurrent creation for the same uid
// loses at the unique index and surfaces as common.ErrConflict so the caller
// can re-read the winner's row.
func (r *gormRepository) Create(ctx context.Context, profile *Profile) error {
	err := r.db.WithContext(ctx).Create(profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(strings.ToLower(err.Error()), "unique constraint") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return common.ErrConflict.WithDetails("Profile for this Firebase UID already exists.")
		}
		return err
	}
	return nil
}
