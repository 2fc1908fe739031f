package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription plans
const (
	PlanFree     = "free"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

// ProfileDB represents a user profile row in the database.
// The profile is also the auth identity: it carries the password hash.
type ProfileDB struct {
	ProfileID       uuid.UUID `json:"id" db:"profile_id"`                     // Primary key
	Email           string    `json:"email" db:"email"`                       // Unique email
	PasswordHash    string    `json:"-" db:"password_hash"`                   // Bcrypt password hash
	FullName        *string   `json:"full_name" db:"full_name"`               // Display name, optional
	AvatarURL       *string   `json:"avatar_url" db:"avatar_url"`             // Public URL of the avatar object, optional
	Plan            string    `json:"plan" db:"plan"`                         // Subscription plan (free, pro, business)
	Credits         int64     `json:"credits" db:"credits"`                   // AI generation credits, never negative
	StorageUsed     int64     `json:"storage_used" db:"storage_used"`         // Cumulative uploaded bytes
	GenerationCount int64     `json:"generation_count" db:"generation_count"` // Lifetime completed generations
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`             // Last update timestamp
}
