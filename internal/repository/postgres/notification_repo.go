package postgres

import (
	"context"
	"errors"

	"github.com/cofoundhq/cofound/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, kind, status, subject_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		n.ID, n.RecipientID, n.SenderID, n.Kind, n.Status, n.SubjectID, n.Message, n.CreatedAt,
	)
	return err
}

func (r *NotificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	query := `
		SELECT id, recipient_id, sender_id, kind, status, subject_id, message, created_at
		FROM notifications
		WHERE id = $1`

	var n domain.Notification
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.RecipientID, &n.SenderID, &n.Kind, &n.Status, &n.SubjectID, &n.Message, &n.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &n, err
}

func (r *NotificationRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	query := `
		SELECT id, recipient_id, sender_id, kind, status, subject_id, message, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ns []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.SenderID, &n.Kind, &n.Status, &n.SubjectID, &n.Message, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, rows.Err()
}

// Resolve is a guarded update: the WHERE clause excludes terminal statuses,
// so a notification can only be resolved once even under concurrent calls.
func (r *NotificationRepo) Resolve(ctx context.Context, id uuid.UUID, status domain.NotificationStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications
		SET status = $2
		WHERE id = $1 AND status NOT IN ($3, $4)`,
		id, status, domain.StatusApproved, domain.StatusRejected,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
