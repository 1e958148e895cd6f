//go:generate go run go.uber.org/mock/mockgen -source=notification_repository.go -destination=../../../mocks/mock_notification_repository.go -package=mocks
package repository

import (
	"context"

	"github.com/oksasatya/chirper/internal/domain/entity"
)

type NotificationRepository interface {
	Insert(ctx context.Context, n *entity.Notification) error
	ListForUser(ctx context.Context, userID string, limit int) ([]entity.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
