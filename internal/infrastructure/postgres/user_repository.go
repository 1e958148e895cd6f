package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/repository"
)

const userColumns = `id, email, password_hash, name, avatar_url, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Password, u.Name, u.AvatarURL)

	return repository.Wrap("users.create", row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	return u, repository.Wrap("users.get_by_id", err)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	return u, repository.Wrap("users.get_by_email", err)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, name = $3, avatar_url = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, u.Email, u.Password, u.Name, u.AvatarURL, u.ID)
	err := row.Scan(&u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return repository.Wrap("users.update", err)
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, repository.Wrap("users.list", err)
	}
	return collectUsers("users.list", rows)
}

func (r *UserRepository) ListExcept(ctx context.Context, userID string) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id <> $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, repository.Wrap("users.list_except", err)
	}
	return collectUsers("users.list_except", rows)
}

func collectUsers(op string, rows pgx.Rows) ([]entity.User, error) {
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
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
