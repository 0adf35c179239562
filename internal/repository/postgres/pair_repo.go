package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whisprhq/whispr/internal/domain"
	"github.com/whisprhq/whispr/internal/repository"
)

// pairRepo backs both likes and bookmarks; the two tables are
// identical (user_id, post_id, created_at) with a composite PK.
type pairRepo struct {
	pool  *pgxpool.Pool
	table string
}

type LikeRepo struct{ pairRepo }

type BookmarkRepo struct{ pairRepo }

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pairRepo{pool: pool, table: "likes"}}
}

func NewBookmarkRepo(pool *pgxpool.Pool) *BookmarkRepo {
	return &BookmarkRepo{pairRepo{pool: pool, table: "bookmarks"}}
}

func (r *pairRepo) Create(ctx context.Context, userID, postID uuid.UUID) error {
	query := "INSERT INTO " + r.table + " (user_id, post_id, created_at) VALUES ($1, $2, $3)"
	_, err := r.pool.Exec(ctx, query, userID, postID, time.Now())
	if isDuplicate(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *pairRepo) Delete(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	query := "DELETE FROM " + r.table + " WHERE user_id = $1 AND post_id = $2"
	tag, err := r.pool.Exec(ctx, query, userID, postID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pairRepo) Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM " + r.table + " WHERE user_id = $1 AND post_id = $2)"
	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, postID).Scan(&exists)
	return exists, err
}

func (r *pairRepo) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+r.table+" WHERE post_id = $1", postID).Scan(&count)
	return count, err
}

func (r *pairRepo) ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.content, p.image, p.author_id, p.hashtags, p.created_at, p.updated_at,
			u.username, u.firstname, u.lastname, u.profile_picture
		FROM ` + r.table + ` j
		JOIN posts p ON p.id = j.post_id
		JOIN users u ON u.id = p.author_id
		WHERE j.user_id = $1
		ORDER BY j.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}
