package service

import (
	"context"
	"testing"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type projectFixture struct {
	svc         *ProjectService
	profileRepo *fakeProfileRepo
	projectRepo *fakeProjectRepo
	notifRepo   *fakeNotificationRepo
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	profileRepo := newFakeProfileRepo()
	projectRepo := newFakeProjectRepo()
	notifRepo := newFakeNotificationRepo()
	notifSvc := NewNotificationService(notifRepo, projectRepo)
	return &projectFixture{
		svc:         NewProjectService(projectRepo, profileRepo, notifSvc),
		profileRepo: profileRepo,
		projectRepo: projectRepo,
		notifRepo:   notifRepo,
	}
}

func TestCreateProject_SnapshotsOwnerFields(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)
	ctx := context.Background()

	owner := newTestProfile("founder")
	req.NoError(fx.profileRepo.Create(ctx, owner))

	project, err := fx.svc.CreateProject(ctx, owner.UserID, CreateProjectInput{
		Concept:      "Fleet charging for e-bikes",
		Roles:        []string{"CTO", "Designer"},
		Problem:      "charging is slow",
		Solution:     "swappable packs",
		StartupType:  "hardware",
		StartupStage: "seed",
		Skills:       []string{"Go", "Embedded"},
	})
	req.NoError(err)
	req.Equal(owner.UserID, project.OwnerID)
	req.Equal("founder", project.Username)
	req.Equal(owner.Designation, project.Designation)
	req.Equal(owner.ProfileImage, project.ProfileImageURL)
	req.Equal([]string{"CTO", "Designer"}, project.Roles)
}

func TestCreateProject_WithoutProfile_Fails(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)

	_, err := fx.svc.CreateProject(context.Background(), uuid.New(), CreateProjectInput{Concept: "x"})
	req.ErrorIs(err, ErrProfileNotFound)
}

func TestGetProject_Missing_Fails(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)

	_, err := fx.svc.GetProject(context.Background(), uuid.New())
	req.ErrorIs(err, ErrProjectNotFound)
}

func TestListProjects_Empty_IsNotAnError(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)

	projects, err := fx.svc.ListProjects(context.Background())
	req.NoError(err)
	req.NotNil(projects)
	req.Empty(projects)
}

func TestExpressInterest_NotifiesBothSides(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)
	ctx := context.Background()

	owner := newTestProfile("founder")
	requester := newTestProfile("maker")
	req.NoError(fx.profileRepo.Create(ctx, owner))
	req.NoError(fx.profileRepo.Create(ctx, requester))

	project, err := fx.svc.CreateProject(ctx, owner.UserID, CreateProjectInput{Concept: "Solar kiosks"})
	req.NoError(err)

	req.NoError(fx.svc.ExpressInterest(ctx, requester.UserID, project.ID))

	interest, err := fx.projectRepo.GetInterest(ctx, project.ID, requester.UserID)
	req.NoError(err)
	req.NotNil(interest)
	req.Equal(domain.InterestPending, interest.Status)

	ownerNs, err := fx.notifRepo.ListByRecipient(ctx, owner.UserID)
	req.NoError(err)
	req.Len(ownerNs, 1)
	req.Equal(domain.KindInterestRequest, ownerNs[0].Kind)
	req.Equal(domain.StatusRequestSent, ownerNs[0].Status)
	req.NotNil(ownerNs[0].SubjectID)
	req.Equal(project.ID, *ownerNs[0].SubjectID)

	requesterNs, err := fx.notifRepo.ListByRecipient(ctx, requester.UserID)
	req.NoError(err)
	req.Len(requesterNs, 1)
	req.Equal(domain.KindInterestConfirmation, requesterNs[0].Kind)
}

func TestExpressInterest_Twice_Fails(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)
	ctx := context.Background()

	owner := newTestProfile("founder")
	requester := newTestProfile("maker")
	req.NoError(fx.profileRepo.Create(ctx, owner))
	req.NoError(fx.profileRepo.Create(ctx, requester))

	project, err := fx.svc.CreateProject(ctx, owner.UserID, CreateProjectInput{Concept: "Solar kiosks"})
	req.NoError(err)

	req.NoError(fx.svc.ExpressInterest(ctx, requester.UserID, project.ID))
	req.ErrorIs(fx.svc.ExpressInterest(ctx, requester.UserID, project.ID), ErrAlreadyInterested)

	// The duplicate attempt must not double the owner's notifications.
	ownerNs, err := fx.notifRepo.ListByRecipient(ctx, owner.UserID)
	req.NoError(err)
	req.Len(ownerNs, 1)
}

func TestExpressInterest_OwnProject_Fails(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)
	ctx := context.Background()

	owner := newTestProfile("founder")
	req.NoError(fx.profileRepo.Create(ctx, owner))

	project, err := fx.svc.CreateProject(ctx, owner.UserID, CreateProjectInput{Concept: "Solar kiosks"})
	req.NoError(err)

	req.ErrorIs(fx.svc.ExpressInterest(ctx, owner.UserID, project.ID), ErrOwnProject)
}

func TestExpressInterest_MissingProject_Fails(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)

	req.ErrorIs(fx.svc.ExpressInterest(context.Background(), uuid.New(), uuid.New()), ErrProjectNotFound)
}

func TestInvite_OwnerOnly(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)
	ctx := context.Background()

	owner := newTestProfile("founder")
	invitee := newTestProfile("maker")
	stranger := newTestProfile("lurker")
	req.NoError(fx.profileRepo.Create(ctx, owner))
	req.NoError(fx.profileRepo.Create(ctx, invitee))
	req.NoError(fx.profileRepo.Create(ctx, stranger))

	project, err := fx.svc.CreateProject(ctx, owner.UserID, CreateProjectInput{Concept: "Solar kiosks"})
	req.NoError(err)

	req.ErrorIs(fx.svc.Invite(ctx, stranger.UserID, project.ID, "maker"), ErrNotProjectOwner)

	req.NoError(fx.svc.Invite(ctx, owner.UserID, project.ID, "maker"))

	ns, err := fx.notifRepo.ListByRecipient(ctx, invitee.UserID)
	req.NoError(err)
	req.Len(ns, 1)
	req.Equal(domain.KindInvitationRequest, ns[0].Kind)
}

func TestInvite_UnknownUsername_Fails(t *testing.T) {
	req := require.New(t)
	fx := newProjectFixture(t)
	ctx := context.Background()

	owner := newTestProfile("founder")
	req.NoError(fx.profileRepo.Create(ctx, owner))

	project, err := fx.svc.CreateProject(ctx, owner.UserID, CreateProjectInput{Concept: "Solar kiosks"})
	req.NoError(err)

	req.ErrorIs(fx.svc.Invite(ctx, owner.UserID, project.ID, "ghost"), ErrProfileNotFound)
}
