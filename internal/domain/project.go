package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a startup pitch looking for cofounders.
type Project struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Username         string    `json:"username"`
	Designation      string    `json:"designation"`
	ProfileImageURL  string    `json:"profile_image_url"`
	Concept          string    `json:"concept"`
	Roles            []string  `json:"roles"`
	Problem          string    `json:"problem"`
	Solution         string    `json:"solution"`
	StartupType      string    `json:"startup_type"`
	StartupStage     string    `json:"startup_stage"`
	Patent           string    `json:"patent"`
	EmploymentStatus string    `json:"employment_status"`
	SkillCategory    string    `json:"skill_category"`
	SkillSubcategory string    `json:"skill_subcategory"`
	Skills           []string  `json:"skills"`
	PostImage        string    `json:"post_image"`
	PitchDeck        string    `json:"pitch_deck"`
	CreatedAt        time.Time `json:"created_at"`
}

type InterestStatus string

const (
	InterestPending  InterestStatus = "pending"
	InterestApproved InterestStatus = "approved"
)

// ProjectInterest records one user's interest in joining a project.
type ProjectInterest struct {
	ProjectID uuid.UUID      `json:"project_id"`
	UserID    uuid.UUID      `json:"user_id"`
	Status    InterestStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
