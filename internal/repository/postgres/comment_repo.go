package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whisprhq/whispr/internal/domain"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentSelect = `
	SELECT c.id, c.content, c.author_id, c.post_id, c.created_at, c.updated_at,
		u.username, u.firstname, u.lastname, u.profile_picture
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func (r *CommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, content, author_id, post_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.Content, comment.AuthorID, comment.PostID,
		comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, commentSelect+" WHERE c.id = $1", id).Scan(
		&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.CreatedAt, &c.UpdatedAt,
		&c.AuthorUsername, &c.AuthorFirstname, &c.AuthorLastname, &c.AuthorProfilePicture,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) List(ctx context.Context) ([]domain.Comment, error) {
	return r.queryComments(ctx, commentSelect+" ORDER BY c.created_at DESC")
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	return r.queryComments(ctx, commentSelect+" WHERE c.post_id = $1 ORDER BY c.created_at DESC", postID)
}

func (r *CommentRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Comment, error) {
	return r.queryComments(ctx, commentSelect+" WHERE c.author_id = $1 ORDER BY c.created_at DESC", authorID)
}

func (r *CommentRepo) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM comments WHERE post_id = $1", postID).Scan(&count)
	return count, err
}

func (r *CommentRepo) Update(ctx context.Context, comment *domain.Comment) error {
	query := "UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1"
	_, err := r.pool.Exec(ctx, query, comment.ID, comment.Content, comment.UpdatedAt)
	return err
}

func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

func (r *CommentRepo) queryComments(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.CreatedAt, &c.UpdatedAt,
			&c.AuthorUsername, &c.AuthorFirstname, &c.AuthorLastname, &c.AuthorProfilePicture,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
