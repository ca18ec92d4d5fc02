package domain

import (
	"time"

	"github.com/google/uuid"
)

// Privacy scopes who may read a post.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

func (p Privacy) Valid() bool {
	return p == PrivacyPublic || p == PrivacyPrivate
}

// Post is a feed item. The author display fields (Username, Designation,
// ProfileImageURL) are snapshots taken at creation time and are not updated
// when the author later edits their profile.
type Post struct {
	ID              uuid.UUID `json:"id"`
	AuthorID        uuid.UUID `json:"author_id"`
	Username        string    `json:"username"`
	Designation     string    `json:"designation"`
	ProfileImageURL string    `json:"profile_image_url"`
	Privacy         Privacy   `json:"privacy"`
	Content         string    `json:"content"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Shares          int       `json:"shares"`
	CreatedAt       time.Time `json:"created_at"`

	Likes    []uuid.UUID `json:"likes"`
	Comments []Comment   `json:"comments"`
}

// Comment carries the same kind of author snapshot as Post. Comments are
// append-only and kept in insertion order.
type Comment struct {
	ID              uuid.UUID `json:"id"`
	PostID          uuid.UUID `json:"post_id"`
	AuthorID        uuid.UUID `json:"author_id"`
	Username        string    `json:"username"`
	Designation     string    `json:"designation"`
	ProfileImageURL string    `json:"profile_image_url"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}
