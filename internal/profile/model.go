// File: internal/profile/model.go
package profile

import (
	"time"
)

// Profile represents per-user display metadata, keyed by the external
// Firebase UID. There is no local user table; the uid is never validated
// against anything beyond token verification. Rows are created lazily on
// first profile fetch and never deleted by the service.
type Profile struct {
	ID          uint      `gorm:"primaryKey"`
	FirebaseUID string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(200);not null;default:''"`
	Email       string    `gorm:"type:varchar(255);not null;default:''"`
	FirstLogin  time.Time `gorm:"column:first_login;not null;autoCreateTime"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}

// --- DTOs ---

// ProfileResponse defines the structure for profile data sent in API responses.
type ProfileResponse struct {
	ID          uint      `json:"id"`
	FirebaseUID string    `json:"firebase_uid"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	FirstLogin  time.Time `json:"first_login"`
}

// ToProfileResponse converts a Profile model to a ProfileResponse DTO.
func ToProfileResponse(profile *Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID,
		FirebaseUID: profile.FirebaseUID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		FirstLogin:  profile.FirstLogin,
	}
}
