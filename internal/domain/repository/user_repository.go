//go:generate go run go.uber.org/mock/mockgen -source=user_repository.go -destination=../../../mocks/mock_user_repository.go -package=mocks
package repository

import (
	"context"

	"github.com/oksasatya/chirper/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
	// ListExcept returns every user whose ID differs from userID.
	ListExcept(ctx context.Context, userID string) ([]entity.User, error)
}
