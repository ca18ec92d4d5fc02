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
	ErrProjectNotFound   = errors.New("project not found")
	ErrAlreadyInterested = errors.New("interest already registered for this project")
	ErrOwnProject        = errors.New("cannot register interest in your own project")
	ErrNotProjectOwner   = errors.New("only the project owner can invite")
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
	profileRepo repository.ProfileRepository
	notifSvc    *NotificationService
}

func NewProjectService(projectRepo repository.ProjectRepository, profileRepo repository.ProfileRepository, notifSvc *NotificationService) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		notifSvc:    notifSvc,
	}
}

type CreateProjectInput struct {
	Concept          string
	Roles            []string
	Problem          string
	Solution         string
	StartupType      string
	StartupStage     string
	Patent           string
	EmploymentStatus string
	SkillCategory    string
	SkillSubcategory string
	Skills           []string
	PostImage        string
	PitchDeck        string
}

// CreateProject publishes a pitch with the owner's profile snapshot.
func (s *ProjectService) CreateProject(ctx context.Context, ownerID uuid.UUID, input CreateProjectInput) (*domain.Project, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("looking up profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	roles := input.Roles
	if roles == nil {
		roles = []string{}
	}
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	project := &domain.Project{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Username:         profile.Username,
		Designation:      profile.Designation,
		ProfileImageURL:  profile.ProfileImage,
		Concept:          input.Concept,
		Roles:            roles,
		Problem:          input.Problem,
		Solution:         input.Solution,
		StartupType:      input.StartupType,
		StartupStage:     input.StartupStage,
		Patent:           input.Patent,
		EmploymentStatus: input.EmploymentStatus,
		SkillCategory:    input.SkillCategory,
		SkillSubcategory: input.SkillSubcategory,
		Skills:           skills,
		PostImage:        input.PostImage,
		PitchDeck:        input.PitchDeck,
		CreatedAt:        time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

func (s *ProjectService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// ExpressInterest records the user's interest and notifies both sides: an
// interestRequest to the owner and an interestConfirmation back to the
// requester.
func (s *ProjectService) ExpressInterest(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if project.OwnerID == userID {
		return ErrOwnProject
	}

	interest := &domain.ProjectInterest{
		ProjectID: projectID,
		UserID:    userID,
		Status:    domain.InterestPending,
		CreatedAt: time.Now(),
	}

	inserted, err := s.projectRepo.AddInterest(ctx, interest)
	if err != nil {
		return fmt.Errorf("registering interest: %w", err)
	}
	if !inserted {
		return ErrAlreadyInterested
	}

	requester, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up profile: %w", err)
	}
	requesterName := "Someone"
	if requester != nil {
		requesterName = requester.Username
	}

	subject := projectID
	ownerMsg := fmt.Sprintf("%s is interested in your project %q", requesterName, project.Concept)
	if _, err := s.notifSvc.Emit(ctx, domain.KindInterestRequest, userID, project.OwnerID, &subject, domain.StatusRequestSent, ownerMsg); err != nil {
		return err
	}

	confirmMsg := fmt.Sprintf("Your interest in %q was sent to %s", project.Concept, project.Username)
	_, err = s.notifSvc.Emit(ctx, domain.KindInterestConfirmation, project.OwnerID, userID, &subject, domain.StatusRequestSent, confirmMsg)
	return err
}

// Invite asks a user by username to join the project. Owner only.
func (s *ProjectService) Invite(ctx context.Context, ownerID, projectID uuid.UUID, targetUsername string) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if project.OwnerID != ownerID {
		return ErrNotProjectOwner
	}

	target, err := s.profileRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("looking up profile: %w", err)
	}
	if target == nil {
		return ErrProfileNotFound
	}

	subject := projectID
	message := fmt.Sprintf("%s invited you to join %q", project.Username, project.Concept)
	_, err = s.notifSvc.Emit(ctx, domain.KindInvitationRequest, ownerID, target.UserID, &subject, domain.StatusRequestSent, message)
	return err
}
