package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/cofoundhq/cofound/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrAlreadyLiked   = errors.New("you have already liked this post")
	ErrNotLiked       = errors.New("you have not liked this post")
	ErrEmptyContent   = errors.New("post content is required")
	ErrEmptyComment   = errors.New("comment text is required")
	ErrInvalidPrivacy = errors.New("privacy must be public or private")
	ErrNotPostAuthor  = errors.New("only the author can delete this post")
)

// PostService owns post creation, engagement and the visibility-filtered
// feed. Every engagement mutation is a single conditional statement at the
// repository, so concurrent calls cannot lose updates.
type PostService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

func NewPostService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

type CreatePostInput struct {
	Privacy  domain.Privacy
	Content  string
	ImageURL *string
}

// CreatePost snapshots the author's display fields from their profile. The
// snapshot is intentionally not refreshed when the profile changes later.
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}
	if !input.Privacy.Valid() {
		return nil, ErrInvalidPrivacy
	}

	profile, err := s.profileRepo.GetByUserID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("looking up profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	post := &domain.Post{
		ID:              uuid.New(),
		AuthorID:        authorID,
		Username:        profile.Username,
		Designation:     profile.Designation,
		ProfileImageURL: profile.ProfileImage,
		Privacy:         input.Privacy,
		Content:         input.Content,
		ImageURL:        input.ImageURL,
		CreatedAt:       time.Now(),
		Likes:           []uuid.UUID{},
		Comments:        []domain.Comment{},
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return post, nil
}

// Like records the user's like. A duplicate like is reported, not ignored.
func (s *PostService) Like(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	inserted, err := s.postRepo.AddLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("liking post: %w", err)
	}
	if !inserted {
		return nil, ErrAlreadyLiked
	}

	return s.getPost(ctx, postID)
}

// Unlike removes the user's like. Fails if the user had not liked the post.
func (s *PostService) Unlike(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	removed, err := s.postRepo.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("unliking post: %w", err)
	}
	if !removed {
		return nil, ErrNotLiked
	}

	return s.getPost(ctx, postID)
}

// Share bumps the share counter. There is no per-user uniqueness: sharing
// twice counts twice.
func (s *PostService) Share(ctx context.Context, userID, postID uuid.UUID) (int, error) {
	shares, found, err := s.postRepo.IncrementShares(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("sharing post: %w", err)
	}
	if !found {
		return 0, ErrPostNotFound
	}
	return shares, nil
}

// Comment appends a comment with the commenter's profile snapshot.
func (s *PostService) Comment(ctx context.Context, userID, postID uuid.UUID, body string) (*domain.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyComment
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:              uuid.New(),
		PostID:          postID,
		AuthorID:        userID,
		Username:        profile.Username,
		Designation:     profile.Designation,
		ProfileImageURL: profile.ProfileImage,
		Body:            body,
		CreatedAt:       time.Now(),
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	return s.getPost(ctx, postID)
}

// DeletePost hard-deletes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != actorID {
		return ErrNotPostAuthor
	}

	deleted, err := s.postRepo.Delete(ctx, postID)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}

// VisibleFeed returns the posts the viewer may see, newest first. An empty
// feed is a normal result, not an error.
func (s *PostService) VisibleFeed(ctx context.Context, viewerID uuid.UUID) ([]domain.Post, error) {
	posts, err := s.postRepo.ListVisible(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// UserPosts returns all posts by one author, newest first.
func (s *PostService) UserPosts(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (s *PostService) ensurePostExists(ctx context.Context, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return nil
}

func (s *PostService) getPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}
