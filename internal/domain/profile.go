package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the public identity of a user. There is exactly one per
// user and its owner never changes.
type Profile struct {
	UserID          uuid.UUID `json:"user_id"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
	Bio             string    `json:"bio"`
	Experience      string    `json:"experience"`
	Skills          string    `json:"skills"`
	Education       string    `json:"education"`
	Achievements    string    `json:"achievements"`
	Designation     string    `json:"designation"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Website         *string   `json:"website,omitempty"`
	ProfileImage    string    `json:"profile_image"`
	BackgroundImage string    `json:"background_image"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationship projections, loaded from the follows edge table.
	Followers []uuid.UUID `json:"followers"`
	Following []uuid.UUID `json:"following"`
}
