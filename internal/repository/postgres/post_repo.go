package postgres

import (
	"context"
	"errors"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postColumns = `p.id, p.author_id, p.username, p.designation, p.profile_image_url,
	p.privacy, p.content, p.image_url, p.shares, p.created_at,
	COALESCE(array_agg(pl.user_id) FILTER (WHERE pl.user_id IS NOT NULL), '{}') AS likes`

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, author_id, username, designation, profile_image_url,
			privacy, content, image_url, shares, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.AuthorID, post.Username, post.Designation, post.ProfileImageURL,
		post.Privacy, post.Content, post.ImageURL, post.Shares, post.CreatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		LEFT JOIN post_likes pl ON pl.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`

	var post domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Username, &post.Designation, &post.ProfileImageURL,
		&post.Privacy, &post.Content, &post.ImageURL, &post.Shares, &post.CreatedAt,
		&post.Likes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	comments, err := r.ListComments(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	return &post, nil
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListVisible pushes the whole visibility rule into one predicate instead of
// doing a profile lookup per private post.
func (r *PostRepo) ListVisible(ctx context.Context, viewerID uuid.UUID) ([]domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		LEFT JOIN post_likes pl ON pl.post_id = p.id
		WHERE p.privacy = 'public'
			OR p.author_id = $1
			OR (p.privacy = 'private' AND EXISTS(
				SELECT 1 FROM follows f
				WHERE f.follower_id = $1 AND f.followee_id = p.author_id))
		GROUP BY p.id
		ORDER BY p.created_at DESC`

	return r.listPosts(ctx, query, viewerID)
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		LEFT JOIN post_likes pl ON pl.post_id = p.id
		WHERE p.author_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC`

	return r.listPosts(ctx, query, authorID)
}

func (r *PostRepo) listPosts(ctx context.Context, query string, arg any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Username, &post.Designation, &post.ProfileImageURL,
			&post.Privacy, &post.Content, &post.ImageURL, &post.Shares, &post.CreatedAt,
			&post.Likes,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range posts {
		comments, err := r.ListComments(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Comments = comments
	}
	return posts, nil
}

// AddLike reports false when the user already liked the post. The conflict
// guard keeps the membership check and the insert atomic, so concurrent
// likes from distinct users are all kept and a double like from the same
// user never slips through.
func (r *PostRepo) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		postID, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementShares returns the new counter value and whether the post exists.
func (r *PostRepo) IncrementShares(ctx context.Context, postID uuid.UUID) (int, bool, error) {
	var shares int
	err := r.pool.QueryRow(ctx,
		`UPDATE posts SET shares = shares + 1 WHERE id = $1 RETURNING shares`,
		postID,
	).Scan(&shares)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return shares, true, nil
}

func (r *PostRepo) AddComment(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO post_comments (id, post_id, author_id, username, designation, profile_image_url, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.PostID, c.AuthorID, c.Username, c.Designation, c.ProfileImageURL, c.Body, c.CreatedAt,
	)
	return err
}

func (r *PostRepo) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	query := `
		SELECT id, post_id, author_id, username, designation, profile_image_url, body, created_at
		FROM post_comments
		WHERE post_id = $1
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorID, &c.Username, &c.Designation,
			&c.ProfileImageURL, &c.Body, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
