package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/repository"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *entity.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO notifications (user_id, type, chirp_id, data, created_at)
VALUES (?, ?, ?, ?, ?)`,
		n.UserID, n.Type, n.ChirpID, string(data), toUnix(now),
	)
	if err != nil {
		return repository.Wrap("notifications.insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return repository.Wrap("notifications.insert", err)
	}
	n.ID = id
	n.CreatedAt = now
	return nil
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID string, limit int) ([]entity.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, type, chirp_id, data, read_at, created_at
FROM notifications
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`, userID, limit)
	if err != nil {
		return nil, repository.Wrap("notifications.list", err)
	}
	defer rows.Close()

	out := []entity.Notification{}
	for rows.Next() {
		var (
			n         entity.Notification
			data      string
			readAt    sql.NullInt64
			createdAt int64
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.ChirpID, &data, &readAt, &createdAt); err != nil {
			return nil, repository.Wrap("notifications.list", err)
		}
		if err := json.Unmarshal([]byte(data), &n.Data); err != nil {
			return nil, repository.Wrap("notifications.list", err)
		}
		if readAt.Valid {
			t := fromUnix(readAt.Int64)
			n.ReadAt = &t
		}
		n.CreatedAt = fromUnix(createdAt)
		out = append(out, n)
	}
	return out, repository.Wrap("notifications.list", rows.Err())
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET read_at = ? WHERE user_id = ? AND read_at IS NULL`,
		toUnix(time.Now()), userID)
	if err != nil {
		return 0, repository.Wrap("notifications.mark_read", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
