package repository

import (
	"context"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// FollowRepository manages the follow edge table. Follow and Unfollow are
// single conditional statements: they report whether a row was actually
// inserted or deleted so duplicate operations can be rejected without a
// separate read, and there is no dual-write to get half-applied.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// ListVisible returns the posts the viewer may see, newest first:
	// public posts, the viewer's own posts, and private posts whose author
	// the viewer follows.
	ListVisible(ctx context.Context, viewerID uuid.UUID) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error)
	AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	IncrementShares(ctx context.Context, postID uuid.UUID) (int, bool, error)
	AddComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	AddInterest(ctx context.Context, interest *domain.ProjectInterest) (bool, error)
	GetInterest(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectInterest, error)
	SetInterestStatus(ctx context.Context, projectID, userID uuid.UUID, status domain.InterestStatus) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error)
	// Resolve sets the status of an unresolved notification. It reports
	// false when the notification was already in a terminal status, so the
	// check and the write act as one unit.
	Resolve(ctx context.Context, id uuid.UUID, status domain.NotificationStatus) (bool, error)
}
