// internal/profile/models.go

package profile

import (
	"time"

	"github.com/lib/pq"
)

// Profile is the full user record owned by this module. The match module
// reads a narrower view of the same table.
type Profile struct {
	ID        int64          `json:"id" db:"id"`
	Email     string         `json:"email" db:"email"`
	FirstName string         `json:"first_name" db:"first_name"`
	Gender    string         `json:"gender" db:"gender"`
	Type      *string        `json:"type,omitempty" db:"type"`
	Latitude  *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64       `json:"longitude,omitempty" db:"longitude"`
	ImageURLs pq.StringArray `json:"image_urls" db:"image_urls"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// HasLocation reports whether both coordinates are set.
func (p *Profile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// UpdateProfileRequest is a partial profile update; nil fields are untouched.
type UpdateProfileRequest struct {
	FirstName *string  `json:"first_name" validate:"omitempty,min=1,max=100"`
	Gender    *string  `json:"gender" validate:"omitempty,oneof=Men Women Other"`
	Type      *string  `json:"type" validate:"omitempty,max=50"`
	ImageURLs []string `json:"image_urls" validate:"omitempty,max=10,dive,url"`
}

// UpdateLocationRequest carries a full coordinate pair; both fields are
// required so a profile can never end up with half a location.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}
