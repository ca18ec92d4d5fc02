package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/cofoundhq/cofound/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

// FollowService maintains the follow graph. Both relationship sets are
// projections of a single edge row, so a follow or unfollow is one atomic
// write and the sets can never disagree.
type FollowService struct {
	profileRepo repository.ProfileRepository
	followRepo  repository.FollowRepository
	notifSvc    *NotificationService
}

func NewFollowService(profileRepo repository.ProfileRepository, followRepo repository.FollowRepository, notifSvc *NotificationService) *FollowService {
	return &FollowService{
		profileRepo: profileRepo,
		followRepo:  followRepo,
		notifSvc:    notifSvc,
	}
}

// Follow adds actor as a follower of the target username.
func (s *FollowService) Follow(ctx context.Context, actorID uuid.UUID, targetUsername string) error {
	target, err := s.profileRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("looking up profile: %w", err)
	}
	if target == nil {
		return ErrProfileNotFound
	}
	if target.UserID == actorID {
		return ErrCannotFollowSelf
	}

	inserted, err := s.followRepo.Follow(ctx, actorID, target.UserID)
	if err != nil {
		return fmt.Errorf("following: %w", err)
	}
	if !inserted {
		return ErrAlreadyFollowing
	}

	actor, err := s.profileRepo.GetByUserID(ctx, actorID)
	if err != nil || actor == nil {
		// Follow already succeeded; the notification just loses the
		// display name.
		return nil
	}

	message := fmt.Sprintf("%s started following you", actor.Username)
	if _, err := s.notifSvc.Emit(ctx, domain.KindFollow, actorID, target.UserID, nil, domain.StatusNone, message); err != nil {
		return fmt.Errorf("emitting follow notification: %w", err)
	}
	return nil
}

// Unfollow removes the edge. Fails if the actor was not following.
func (s *FollowService) Unfollow(ctx context.Context, actorID uuid.UUID, targetUsername string) error {
	target, err := s.profileRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("looking up profile: %w", err)
	}
	if target == nil {
		return ErrProfileNotFound
	}

	removed, err := s.followRepo.Unfollow(ctx, actorID, target.UserID)
	if err != nil {
		return fmt.Errorf("unfollowing: %w", err)
	}
	if !removed {
		return ErrNotFollowing
	}
	return nil
}

// FollowStatus reports whether the actor follows the target username.
func (s *FollowService) FollowStatus(ctx context.Context, actorID uuid.UUID, targetUsername string) (bool, error) {
	target, err := s.profileRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return false, fmt.Errorf("looking up profile: %w", err)
	}
	if target == nil {
		return false, ErrProfileNotFound
	}

	return s.followRepo.IsFollowing(ctx, actorID, target.UserID)
}
