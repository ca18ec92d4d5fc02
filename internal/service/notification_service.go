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
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationResolved = errors.New("notification already resolved")
	ErrNotRecipient         = errors.New("only the recipient can act on this notification")
	ErrWrongKind            = errors.New("notification kind does not allow this action")
	ErrInvalidKind          = errors.New("invalid notification kind")
)

// Notifier pushes freshly persisted notifications to connected clients.
// Delivery is best-effort: a disconnected recipient sees the notification
// on the next list call.
type Notifier interface {
	NotifyNotification(n *domain.Notification)
}

type NotificationService struct {
	notifRepo   repository.NotificationRepository
	projectRepo repository.ProjectRepository
	notifier    Notifier
}

func NewNotificationService(notifRepo repository.NotificationRepository, projectRepo repository.ProjectRepository) *NotificationService {
	return &NotificationService{
		notifRepo:   notifRepo,
		projectRepo: projectRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *NotificationService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Emit persists a notification and signals the delivery channel.
func (s *NotificationService) Emit(ctx context.Context, kind domain.NotificationKind, senderID, recipientID uuid.UUID, subjectID *uuid.UUID, status domain.NotificationStatus, message string) (*domain.Notification, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	n := &domain.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Kind:        kind,
		Status:      status,
		SubjectID:   subjectID,
		Message:     message,
		CreatedAt:   time.Now(),
	}

	if err := s.notifRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNotification(n)
	}

	return n, nil
}

// ListFor returns the recipient's notifications, newest first.
func (s *NotificationService) ListFor(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	ns, err := s.notifRepo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if ns == nil {
		ns = []domain.Notification{}
	}
	return ns, nil
}

// ApproveInterest resolves an interestRequest notification: the project
// interest flips to approved and the original requester is told.
func (s *NotificationService) ApproveInterest(ctx context.Context, actorID, notificationID uuid.UUID) error {
	n, err := s.resolve(ctx, actorID, notificationID, domain.KindInterestRequest)
	if err != nil {
		return err
	}

	if n.SubjectID != nil {
		if _, err := s.projectRepo.SetInterestStatus(ctx, *n.SubjectID, n.SenderID, domain.InterestApproved); err != nil {
			return fmt.Errorf("approving project interest: %w", err)
		}
	}

	message := "Your interest request was approved"
	if n.SubjectID != nil {
		if project, err := s.projectRepo.GetByID(ctx, *n.SubjectID); err == nil && project != nil {
			message = fmt.Sprintf("Your interest in %q was approved", project.Concept)
		}
	}

	_, err = s.Emit(ctx, domain.KindInterestApproval, actorID, n.SenderID, n.SubjectID, domain.StatusApproved, message)
	return err
}

// ApproveInvitation resolves an invitationRequest notification and confirms
// back to the inviter.
func (s *NotificationService) ApproveInvitation(ctx context.Context, actorID, notificationID uuid.UUID) error {
	n, err := s.resolve(ctx, actorID, notificationID, domain.KindInvitationRequest)
	if err != nil {
		return err
	}

	_, err = s.Emit(ctx, domain.KindInvitationConfirmation, actorID, n.SenderID, n.SubjectID, domain.StatusApproved, "Your invitation was accepted")
	return err
}

// resolve loads the notification, checks ownership and kind, and flips the
// status to Approved. The repository update is guarded, so a notification
// that already reached a terminal status fails here no matter how the calls
// interleave.
func (s *NotificationService) resolve(ctx context.Context, actorID, notificationID uuid.UUID, expected domain.NotificationKind) (*domain.Notification, error) {
	n, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotificationNotFound
	}
	if n.RecipientID != actorID {
		return nil, ErrNotRecipient
	}
	if n.Kind != expected {
		return nil, ErrWrongKind
	}
	if n.Status.Resolved() {
		return nil, ErrNotificationResolved
	}

	ok, err := s.notifRepo.Resolve(ctx, n.ID, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotificationResolved
	}

	n.Status = domain.StatusApproved
	return n, nil
}
