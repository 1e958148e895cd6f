package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/repository"
)

const chirpColumns = `id, user_id, message, created_at, updated_at`

type ChirpRepository struct {
	db *sql.DB
}

func NewChirpRepository(db *sql.DB) *ChirpRepository {
	return &ChirpRepository{db: db}
}

func (r *ChirpRepository) Insert(ctx context.Context, userID, message string) (*entity.Chirp, error) {
	now := toUnix(time.Now())
	row := r.db.QueryRowContext(ctx, `
INSERT INTO chirps (user_id, message, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING `+chirpColumns,
		userID, message, now, now,
	)
	c, err := scanChirp(row)
	return c, repository.Wrap("chirps.insert", err)
}

func (r *ChirpRepository) FindByID(ctx context.Context, id int64) (*entity.Chirp, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+chirpColumns+` FROM chirps WHERE id = ?`, id)
	c, err := scanChirp(row)
	return c, repository.Wrap("chirps.find", err)
}

func (r *ChirpRepository) Update(ctx context.Context, id int64, message string) (*entity.Chirp, error) {
	row := r.db.QueryRowContext(ctx, `
UPDATE chirps SET message = ?, updated_at = ?
WHERE id = ?
RETURNING `+chirpColumns,
		message, toUnix(time.Now()), id,
	)
	c, err := scanChirp(row)
	return c, repository.Wrap("chirps.update", err)
}

func (r *ChirpRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chirps WHERE id = ?`, id)
	if err != nil {
		return repository.Wrap("chirps.delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChirpRepository) ListAll(ctx context.Context) ([]entity.ChirpWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT c.id, c.user_id, c.message, c.created_at, c.updated_at, u.name
FROM chirps c
JOIN users u ON u.id = c.user_id
ORDER BY c.created_at DESC, c.id DESC`)
	if err != nil {
		return nil, repository.Wrap("chirps.list", err)
	}
	defer rows.Close()

	out := []entity.ChirpWithAuthor{}
	for rows.Next() {
		var (
			cw                   entity.ChirpWithAuthor
			createdAt, updatedAt int64
		)
		if err := rows.Scan(&cw.ID, &cw.UserID, &cw.Message, &createdAt, &updatedAt, &cw.Author.Name); err != nil {
			return nil, repository.Wrap("chirps.list", err)
		}
		cw.CreatedAt = fromUnix(createdAt)
		cw.UpdatedAt = fromUnix(updatedAt)
		cw.Author.ID = cw.UserID
		out = append(out, cw)
	}
	return out, repository.Wrap("chirps.list", rows.Err())
}

func (r *ChirpRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM chirps`).Scan(&n)
	return n, repository.Wrap("chirps.count", err)
}

func scanChirp(row rowScanner) (*entity.Chirp, error) {
	var (
		c                    entity.Chirp
		createdAt, updatedAt int64
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Message, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	c.CreatedAt = fromUnix(createdAt)
	c.UpdatedAt = fromUnix(updatedAt)
	return &c, nil
}

var _ repository.ChirpRepository = (*ChirpRepository)(nil)
