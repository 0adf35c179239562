package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whisprhq/whispr/internal/domain"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

const postSelect = `
	SELECT p.id, p.content, p.image, p.author_id, p.hashtags, p.created_at, p.updated_at,
		u.username, u.firstname, u.lastname, u.profile_picture
	FROM posts p
	JOIN users u ON u.id = p.author_id`

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, content, image, author_id, hashtags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Content, post.Image, post.AuthorID,
		post.Hashtags, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var p domain.Post
	err := r.pool.QueryRow(ctx, postSelect+" WHERE p.id = $1", id).Scan(
		&p.ID, &p.Content, &p.Image, &p.AuthorID, &p.Hashtags, &p.CreatedAt, &p.UpdatedAt,
		&p.AuthorUsername, &p.AuthorFirstname, &p.AuthorLastname, &p.AuthorProfilePicture,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, postSelect+" ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, postSelect+" WHERE p.author_id = $1 ORDER BY p.created_at DESC", authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM posts WHERE author_id = $1", authorID).Scan(&count)
	return count, err
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET content = $2, image = $3, hashtags = $4, updated_at = $5
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Content, post.Image, post.Hashtags, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Content, &p.Image, &p.AuthorID, &p.Hashtags, &p.CreatedAt, &p.UpdatedAt,
			&p.AuthorUsername, &p.AuthorFirstname, &p.AuthorLastname, &p.AuthorProfilePicture,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
