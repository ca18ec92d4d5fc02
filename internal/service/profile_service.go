package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/cofoundhq/cofound/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrProfileExists   = errors.New("profile already submitted for this user")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	followRepo  repository.FollowRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, followRepo repository.FollowRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		followRepo:  followRepo,
	}
}

type CreateProfileInput struct {
	Username        string
	FullName        string
	Bio             string
	Experience      string
	Skills          string
	Education       string
	Achievements    string
	Designation     string
	Company         string
	Location        string
	Website         *string
	ProfileImage    string
	BackgroundImage string
}

// CreateProfile submits the one-time profile form. The profile owner is
// fixed at creation and never changes.
func (s *ProfileService) CreateProfile(ctx context.Context, userID uuid.UUID, input CreateProfileInput) (*domain.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	taken, err := s.profileRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, ErrUsernameTaken
	}

	now := time.Now()
	profile := &domain.Profile{
		UserID:          userID,
		Username:        input.Username,
		FullName:        input.FullName,
		Bio:             input.Bio,
		Experience:      input.Experience,
		Skills:          input.Skills,
		Education:       input.Education,
		Achievements:    input.Achievements,
		Designation:     input.Designation,
		Company:         input.Company,
		Location:        input.Location,
		Website:         input.Website,
		ProfileImage:    input.ProfileImage,
		BackgroundImage: input.BackgroundImage,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	return profile, nil
}

// GetOwnProfile returns the caller's profile with relationship sets loaded.
func (s *ProfileService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withRelationships(ctx, profile)
}

// GetByUsername returns another user's profile with relationship sets loaded.
func (s *ProfileService) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withRelationships(ctx, profile)
}

// ProfileExists reports whether the user completed the profile form.
func (s *ProfileService) ProfileExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.profileRepo.Exists(ctx, userID)
}

func (s *ProfileService) withRelationships(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	followers, err := s.followRepo.ListFollowers(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.ListFollowing(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if followers == nil {
		followers = []uuid.UUID{}
	}
	if following == nil {
		following = []uuid.UUID{}
	}
	profile.Followers = followers
	profile.Following = following
	return profile, nil
}
