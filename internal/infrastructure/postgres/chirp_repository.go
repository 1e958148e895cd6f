package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/repository"
)

const chirpColumns = `id, user_id, message, created_at, updated_at`

type ChirpRepository struct {
	pool *pgxpool.Pool
}

func NewChirpRepository(pool *pgxpool.Pool) *ChirpRepository {
	return &ChirpRepository{pool: pool}
}

func (r *ChirpRepository) Insert(ctx context.Context, userID, message string) (*entity.Chirp, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO chirps (user_id, message)
		VALUES ($1, $2)
		RETURNING `+chirpColumns, userID, message)
	c, err := scanChirp(row)
	return c, repository.Wrap("chirps.insert", err)
}

func (r *ChirpRepository) FindByID(ctx context.Context, id int64) (*entity.Chirp, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+chirpColumns+` FROM chirps WHERE id = $1`, id)
	c, err := scanChirp(row)
	return c, repository.Wrap("chirps.find", err)
}

func (r *ChirpRepository) Update(ctx context.Context, id int64, message string) (*entity.Chirp, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE chirps
		SET message = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+chirpColumns, message, id)
	c, err := scanChirp(row)
	return c, repository.Wrap("chirps.update", err)
}

func (r *ChirpRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM chirps WHERE id = $1`, id)
	if err != nil {
		return repository.Wrap("chirps.delete", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChirpRepository) ListAll(ctx context.Context) ([]entity.ChirpWithAuthor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.user_id, c.message, c.created_at, c.updated_at, u.name
		FROM chirps c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.created_at DESC, c.id DESC
	`)
	if err != nil {
		return nil, repository.Wrap("chirps.list", err)
	}
	defer rows.Close()

	out := []entity.ChirpWithAuthor{}
	for rows.Next() {
		var cw entity.ChirpWithAuthor
		if err := rows.Scan(&cw.ID, &cw.UserID, &cw.Message, &cw.CreatedAt, &cw.UpdatedAt, &cw.Author.Name); err != nil {
			return nil, repository.Wrap("chirps.list", err)
		}
		cw.Author.ID = cw.UserID
		out = append(out, cw)
	}
	return out, repository.Wrap("chirps.list", rows.Err())
}

func (r *ChirpRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM chirps`).Scan(&n)
	return n, repository.Wrap("chirps.count", err)
}

func scanChirp(row rowScanner) (*entity.Chirp, error) {
	c := &entity.Chirp{}
	if err := row.Scan(&c.ID, &c.UserID, &c.Message, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

var _ repository.ChirpRepository = (*ChirpRepository)(nil)
