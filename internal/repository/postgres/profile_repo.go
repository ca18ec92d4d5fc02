package postgres

import (
	"context"
	"errors"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `user_id, username, full_name, bio, experience, skills, education,
	achievements, designation, company, location, website, profile_image, background_image,
	created_at, updated_at`

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, username, full_name, bio, experience, skills, education,
			achievements, designation, company, location, website, profile_image, background_image,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		p.UserID, p.Username, p.FullName, p.Bio, p.Experience, p.Skills, p.Education,
		p.Achievements, p.Designation, p.Company, p.Location, p.Website,
		p.ProfileImage, p.BackgroundImage, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return r.scanProfile(ctx, "SELECT "+profileColumns+" FROM profiles WHERE user_id = $1", userID)
}

func (r *ProfileRepo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return r.scanProfile(ctx, "SELECT "+profileColumns+" FROM profiles WHERE username = $1", username)
}

func (r *ProfileRepo) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`,
		userID,
	).Scan(&exists)
	return exists, err
}

func (r *ProfileRepo) scanProfile(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.UserID, &p.Username, &p.FullName, &p.Bio, &p.Experience, &p.Skills, &p.Education,
		&p.Achievements, &p.Designation, &p.Company, &p.Location, &p.Website,
		&p.ProfileImage, &p.BackgroundImage, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}
