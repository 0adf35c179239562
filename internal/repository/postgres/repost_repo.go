package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whisprhq/whispr/internal/domain"
)

type RepostRepo struct {
	pool *pgxpool.Pool
}

func NewRepostRepo(pool *pgxpool.Pool) *RepostRepo {
	return &RepostRepo{pool: pool}
}

const repostSelect = `
	SELECT r.id, r.content, r.author_id, r.original_post_id, r.created_at, r.updated_at,
		u.username
	FROM reposts r
	JOIN users u ON u.id = r.author_id`

func (r *RepostRepo) Create(ctx context.Context, repost *domain.Repost) error {
	query := `
		INSERT INTO reposts (id, content, author_id, original_post_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		repost.ID, repost.Content, repost.AuthorID, repost.OriginalPostID,
		repost.CreatedAt, repost.UpdatedAt,
	)
	return err
}

func (r *RepostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repost, error) {
	var rp domain.Repost
	err := r.pool.QueryRow(ctx, repostSelect+" WHERE r.id = $1", id).Scan(
		&rp.ID, &rp.Content, &rp.AuthorID, &rp.OriginalPostID,
		&rp.CreatedAt, &rp.UpdatedAt, &rp.AuthorUsername,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *RepostRepo) List(ctx context.Context) ([]domain.Repost, error) {
	rows, err := r.pool.Query(ctx, repostSelect+" ORDER BY r.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reposts []domain.Repost
	for rows.Next() {
		var rp domain.Repost
		if err := rows.Scan(
			&rp.ID, &rp.Content, &rp.AuthorID, &rp.OriginalPostID,
			&rp.CreatedAt, &rp.UpdatedAt, &rp.AuthorUsername,
		); err != nil {
			return nil, err
		}
		reposts = append(reposts, rp)
	}
	return reposts, rows.Err()
}

func (r *RepostRepo) Update(ctx context.Context, repost *domain.Repost) error {
	query := "UPDATE reposts SET content = $2, updated_at = $3 WHERE id = $1"
	_, err := r.pool.Exec(ctx, query, repost.ID, repost.Content, repost.UpdatedAt)
	return err
}

func (r *RepostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM reposts WHERE id = $1", id)
	return err
}
