package match

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Gender is the declared gender on a profile. It is a closed set; the empty
// string means the user never declared one and matches against all genders.
type Gender string

const (
	GenderMen         Gender = "Men"
	GenderWomen       Gender = "Women"
	GenderOther       Gender = "Other"
	GenderUnspecified Gender = ""
)

// Scan implements sql.Scanner. A NULL column reads back as
// GenderUnspecified; rows written before the column gained its default
// carry NULL instead of ''.
func (g *Gender) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*g = GenderUnspecified
	case string:
		*g = Gender(v)
	case []byte:
		*g = Gender(v)
	default:
		return fmt.Errorf("cannot scan %T into Gender", value)
	}
	return nil
}

// Value implements driver.Valuer; the unset gender is stored as ''.
func (g Gender) Value() (driver.Value, error) {
	return string(g), nil
}

// Profile is the matching view of a user record: only the attributes the
// discovery pipeline reads. The full record lives in the profile module.
type Profile struct {
	ID        int64          `json:"id" db:"id"`
	FirstName string         `json:"first_name" db:"first_name"`
	Gender    Gender         `json:"gender" db:"gender"`
	Type      *string        `json:"type,omitempty" db:"type"`
	Latitude  *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64       `json:"longitude,omitempty" db:"longitude"`
	ImageURLs pq.StringArray `json:"image_urls" db:"image_urls"`
}

// HasLocation reports whether both coordinates are set. Profiles without a
// location are excluded from proximity queries, never errored on.
func (p *Profile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Relations are the acting user's relationship sets read by the resolver.
type Relations struct {
	MatchIDs []int64
	CrushIDs []int64
}

// ReceivedLike is the inbound view of a crush, held on the target profile.
// Entries are removed once either party acts on them.
type ReceivedLike struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	LikerID   int64     `json:"liker_id" db:"liker_id"`
	Image     *string   `json:"image,omitempty" db:"image_url"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined preview of the liking profile
	Liker *LikerInfo `json:"liker,omitempty"`
}

// LikerInfo is the preview of the profile that sent a like.
type LikerInfo struct {
	ID        int64          `json:"id" db:"id"`
	FirstName string         `json:"first_name" db:"first_name"`
	ImageURLs pq.StringArray `json:"image_urls" db:"image_urls"`
}
