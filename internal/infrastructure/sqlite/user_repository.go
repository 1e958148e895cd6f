package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/repository"
)

const userColumns = `id, email, password_hash, name, avatar_url, created_at, updated_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, email, password_hash, name, avatar_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, u.Email, u.Password, u.Name, u.AvatarURL, toUnix(now), toUnix(now),
	); err != nil {
		return repository.Wrap("users.create", err)
	}
	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	return u, repository.Wrap("users.get_by_id", err)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	return u, repository.Wrap("users.get_by_email", err)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE users SET email = ?, password_hash = ?, name = ?, avatar_url = ?, updated_at = ?
WHERE id = ?`,
		u.Email, u.Password, u.Name, u.AvatarURL, toUnix(now), u.ID,
	)
	if err != nil {
		return repository.Wrap("users.update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, repository.Wrap("users.list", err)
	}
	return collectUsers("users.list", rows)
}

func (r *UserRepository) ListExcept(ctx context.Context, userID string) ([]entity.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users WHERE id <> ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, repository.Wrap("users.list_except", err)
	}
	return collectUsers("users.list_except", rows)
}

func collectUsers(op string, rows *sql.Rows) ([]entity.User, error) {
	defer rows.Close()
	var out []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, repository.Wrap(op, err)
		}
		out = append(out, *u)
	}
	return out, repository.Wrap(op, rows.Err())
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u                    entity.User
		createdAt, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.AvatarURL, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = fromUnix(createdAt)
	u.UpdatedAt = fromUnix(updatedAt)
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
