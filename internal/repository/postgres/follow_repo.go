package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

// Follow inserts the edge if it does not exist. The ON CONFLICT guard makes
// the duplicate check and the insert a single atomic statement, so two
// concurrent follows of the same pair can never double-insert.
func (r *FollowRepo) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		followerID, followeeID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *FollowRepo) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *FollowRepo) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID,
	).Scan(&exists)
	return exists, err
}

func (r *FollowRepo) ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.listEdges(ctx,
		`SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY created_at`,
		userID,
	)
}

func (r *FollowRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.listEdges(ctx,
		`SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at`,
		userID,
	)
}

func (r *FollowRepo) listEdges(ctx context.Context, query string, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
