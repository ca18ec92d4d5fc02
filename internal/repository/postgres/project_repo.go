package postgres

import (
	"context"
	"errors"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, owner_id, username, designation, profile_image_url, concept, roles,
	problem, solution, startup_type, startup_stage, patent, employment_status,
	skill_category, skill_subcategory, skills, post_image, pitch_deck, created_at`

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (id, owner_id, username, designation, profile_image_url, concept, roles,
			problem, solution, startup_type, startup_stage, patent, employment_status,
			skill_category, skill_subcategory, skills, post_image, pitch_deck, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.OwnerID, p.Username, p.Designation, p.ProfileImageURL, p.Concept, p.Roles,
		p.Problem, p.Solution, p.StartupType, p.StartupStage, p.Patent, p.EmploymentStatus,
		p.SkillCategory, p.SkillSubcategory, p.Skills, p.PostImage, p.PitchDeck, p.CreatedAt,
	)
	return err
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var p domain.Project
	err := r.pool.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1", id,
	).Scan(
		&p.ID, &p.OwnerID, &p.Username, &p.Designation, &p.ProfileImageURL, &p.Concept, &p.Roles,
		&p.Problem, &p.Solution, &p.StartupType, &p.StartupStage, &p.Patent, &p.EmploymentStatus,
		&p.SkillCategory, &p.SkillSubcategory, &p.Skills, &p.PostImage, &p.PitchDeck, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *ProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	return r.listProjects(ctx, "SELECT "+projectColumns+" FROM projects ORDER BY created_at DESC")
}

func (r *ProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	return r.listProjects(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE owner_id = $1 ORDER BY created_at DESC",
		ownerID,
	)
}

func (r *ProjectRepo) listProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Username, &p.Designation, &p.ProfileImageURL, &p.Concept, &p.Roles,
			&p.Problem, &p.Solution, &p.StartupType, &p.StartupStage, &p.Patent, &p.EmploymentStatus,
			&p.SkillCategory, &p.SkillSubcategory, &p.Skills, &p.PostImage, &p.PitchDeck, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// AddInterest reports false when the user already registered interest.
func (r *ProjectRepo) AddInterest(ctx context.Context, interest *domain.ProjectInterest) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO project_interests (project_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING`,
		interest.ProjectID, interest.UserID, interest.Status, interest.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProjectRepo) GetInterest(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectInterest, error) {
	var in domain.ProjectInterest
	err := r.pool.QueryRow(ctx, `
		SELECT project_id, user_id, status, created_at
		FROM project_interests
		WHERE project_id = $1 AND user_id = $2`,
		projectID, userID,
	).Scan(&in.ProjectID, &in.UserID, &in.Status, &in.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &in, err
}

func (r *ProjectRepo) SetInterestStatus(ctx context.Context, projectID, userID uuid.UUID, status domain.InterestStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE project_interests SET status = $3 WHERE project_id = $1 AND user_id = $2`,
		projectID, userID, status,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
