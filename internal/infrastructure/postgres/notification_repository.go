package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/repository"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *entity.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, type, chirp_id, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, n.UserID, n.Type, n.ChirpID, data)
	return repository.Wrap("notifications.insert", row.Scan(&n.ID, &n.CreatedAt))
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID string, limit int) ([]entity.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, chirp_id, data, read_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, repository.Wrap("notifications.list", err)
	}
	defer rows.Close()

	out := []entity.Notification{}
	for rows.Next() {
		var (
			n   entity.Notification
			raw []byte
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.ChirpID, &raw, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, repository.Wrap("notifications.list", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &n.Data); err != nil {
				return nil, repository.Wrap("notifications.list", err)
			}
		}
		out = append(out, n)
	}
	return out, repository.Wrap("notifications.list", rows.Err())
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res, err := r.pool.Exec(ctx, `UPDATE notifications SET read_at = now() WHERE user_id = $1 AND read_at IS NULL`, userID)
	if err != nil {
		return 0, repository.Wrap("notifications.mark_read", err)
	}
	return res.RowsAffected(), nil
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
