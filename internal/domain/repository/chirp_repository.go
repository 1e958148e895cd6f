//go:generate go run go.uber.org/mock/mockgen -source=chirp_repository.go -destination=../../../mocks/mock_chirp_repository.go -package=mocks
package repository

import (
	"context"

	"github.com/oksasatya/chirper/internal/domain/entity"
)

// ChirpRepository persists chirps. Implementations assign ID and timestamps.
type ChirpRepository interface {
	Insert(ctx context.Context, userID, message string) (*entity.Chirp, error)
	FindByID(ctx context.Context, id int64) (*entity.Chirp, error)
	// Update replaces the message and bumps updated_at. The owner is never touched.
	Update(ctx context.Context, id int64, message string) (*entity.Chirp, error)
	Delete(ctx context.Context, id int64) error
	// ListAll returns chirps of all users, newest first (created_at desc, id desc).
	ListAll(ctx context.Context) ([]entity.ChirpWithAuthor, error)
	Count(ctx context.Context) (int, error)
}
