package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*domain.Notification
}

func (n *recordingNotifier) NotifyNotification(notification *domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func newNotificationFixture(t *testing.T) (*NotificationService, *fakeNotificationRepo, *fakeProjectRepo, *recordingNotifier) {
	t.Helper()
	notifRepo := newFakeNotificationRepo()
	projectRepo := newFakeProjectRepo()
	svc := NewNotificationService(notifRepo, projectRepo)
	notifier := &recordingNotifier{}
	svc.SetNotifier(notifier)
	return svc, notifRepo, projectRepo, notifier
}

func addTestProject(t *testing.T, repo *fakeProjectRepo, ownerID uuid.UUID) *domain.Project {
	t.Helper()
	project := &domain.Project{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Username:  "owner",
		Concept:   "AI for goats",
		Roles:     []string{"CTO"},
		Skills:    []string{"Go"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), project))
	return project
}

func TestEmit_PersistsAndPushes(t *testing.T) {
	req := require.New(t)
	svc, _, _, notifier := newNotificationFixture(t)
	ctx := context.Background()

	sender := uuid.New()
	recipient := uuid.New()

	n, err := svc.Emit(ctx, domain.KindFollow, sender, recipient, nil, domain.StatusNone, "alice started following you")
	req.NoError(err)
	req.Equal(recipient, n.RecipientID)
	req.Equal(sender, n.SenderID)

	req.Len(notifier.sent, 1)
	req.Equal(n.ID, notifier.sent[0].ID)

	ns, err := svc.ListFor(ctx, recipient)
	req.NoError(err)
	req.Len(ns, 1)
	req.Equal(n.ID, ns[0].ID)
}

func TestEmit_InvalidKind_Fails(t *testing.T) {
	req := require.New(t)
	svc, _, _, _ := newNotificationFixture(t)

	_, err := svc.Emit(context.Background(), domain.NotificationKind("poke"), uuid.New(), uuid.New(), nil, domain.StatusNone, "hi")
	req.ErrorIs(err, ErrInvalidKind)
}

func TestListFor_NewestFirst(t *testing.T) {
	req := require.New(t)
	svc, _, _, _ := newNotificationFixture(t)
	ctx := context.Background()

	recipient := uuid.New()
	first, err := svc.Emit(ctx, domain.KindFollow, uuid.New(), recipient, nil, domain.StatusNone, "first")
	req.NoError(err)
	second, err := svc.Emit(ctx, domain.KindFollow, uuid.New(), recipient, nil, domain.StatusNone, "second")
	req.NoError(err)

	ns, err := svc.ListFor(ctx, recipient)
	req.NoError(err)
	req.Len(ns, 2)
	req.Equal(second.ID, ns[0].ID)
	req.Equal(first.ID, ns[1].ID)
}

func TestListFor_Empty_IsNotAnError(t *testing.T) {
	req := require.New(t)
	svc, _, _, _ := newNotificationFixture(t)

	ns, err := svc.ListFor(context.Background(), uuid.New())
	req.NoError(err)
	req.NotNil(ns)
	req.Empty(ns)
}

func TestApproveInterest_ResolvesAndNotifiesRequester(t *testing.T) {
	req := require.New(t)
	svc, _, projectRepo, _ := newNotificationFixture(t)
	ctx := context.Background()

	owner := uuid.New()
	requester := uuid.New()
	project := addTestProject(t, projectRepo, owner)

	_, err := projectRepo.AddInterest(ctx, &domain.ProjectInterest{
		ProjectID: project.ID,
		UserID:    requester,
		Status:    domain.InterestPending,
		CreatedAt: time.Now(),
	})
	req.NoError(err)

	subject := project.ID
	request, err := svc.Emit(ctx, domain.KindInterestRequest, requester, owner, &subject, domain.StatusRequestSent, "requester is interested")
	req.NoError(err)

	req.NoError(svc.ApproveInterest(ctx, owner, request.ID))

	// Interest flipped to approved
	interest, err := projectRepo.GetInterest(ctx, project.ID, requester)
	req.NoError(err)
	req.Equal(domain.InterestApproved, interest.Status)

	// Original request resolved
	resolvedList, err := svc.ListFor(ctx, owner)
	req.NoError(err)
	req.Len(resolvedList, 1)
	req.Equal(domain.StatusApproved, resolvedList[0].Status)

	// Requester told about the approval
	requesterList, err := svc.ListFor(ctx, requester)
	req.NoError(err)
	req.Len(requesterList, 1)
	req.Equal(domain.KindInterestApproval, requesterList[0].Kind)
	req.Equal(domain.StatusApproved, requesterList[0].Status)
}

func TestApproveInterest_Twice_Fails(t *testing.T) {
	req := require.New(t)
	svc, _, projectRepo, _ := newNotificationFixture(t)
	ctx := context.Background()

	owner := uuid.New()
	requester := uuid.New()
	project := addTestProject(t, projectRepo, owner)

	subject := project.ID
	request, err := svc.Emit(ctx, domain.KindInterestRequest, requester, owner, &subject, domain.StatusRequestSent, "requester is interested")
	req.NoError(err)

	req.NoError(svc.ApproveInterest(ctx, owner, request.ID))
	req.ErrorIs(svc.ApproveInterest(ctx, owner, request.ID), ErrNotificationResolved)
}

func TestApproveInterest_OnlyRecipient(t *testing.T) {
	req := require.New(t)
	svc, _, projectRepo, _ := newNotificationFixture(t)
	ctx := context.Background()

	owner := uuid.New()
	requester := uuid.New()
	project := addTestProject(t, projectRepo, owner)

	subject := project.ID
	request, err := svc.Emit(ctx, domain.KindInterestRequest, requester, owner, &subject, domain.StatusRequestSent, "requester is interested")
	req.NoError(err)

	req.ErrorIs(svc.ApproveInterest(ctx, requester, request.ID), ErrNotRecipient)
}

func TestApproveInterest_WrongKind_Fails(t *testing.T) {
	req := require.New(t)
	svc, _, _, _ := newNotificationFixture(t)
	ctx := context.Background()

	recipient := uuid.New()
	n, err := svc.Emit(ctx, domain.KindFollow, uuid.New(), recipient, nil, domain.StatusNone, "hi")
	req.NoError(err)

	req.ErrorIs(svc.ApproveInterest(ctx, recipient, n.ID), ErrWrongKind)
}

func TestApproveInterest_Missing_Fails(t *testing.T) {
	req := require.New(t)
	svc, _, _, _ := newNotificationFixture(t)

	req.ErrorIs(svc.ApproveInterest(context.Background(), uuid.New(), uuid.New()), ErrNotificationNotFound)
}

func TestApproveInvitation_ConfirmsBackToInviter(t *testing.T) {
	req := require.New(t)
	svc, _, projectRepo, _ := newNotificationFixture(t)
	ctx := context.Background()

	owner := uuid.New()
	invitee := uuid.New()
	project := addTestProject(t, projectRepo, owner)

	subject := project.ID
	invitation, err := svc.Emit(ctx, domain.KindInvitationRequest, owner, invitee, &subject, domain.StatusRequestSent, "join my project")
	req.NoError(err)

	req.NoError(svc.ApproveInvitation(ctx, invitee, invitation.ID))

	ownerList, err := svc.ListFor(ctx, owner)
	req.NoError(err)
	req.Len(ownerList, 1)
	req.Equal(domain.KindInvitationConfirmation, ownerList[0].Kind)

	req.ErrorIs(svc.ApproveInvitation(ctx, invitee, invitation.ID), ErrNotificationResolved)
}
