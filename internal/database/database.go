package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whisprhq/whispr/internal/config"
)

// schema is applied on every connect; all statements are idempotent.
// Foreign keys cascade so deleting a user or post removes everything
// hanging off of it (comments, likes, bookmarks, reposts).
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	firstname TEXT NOT NULL DEFAULT '',
	lastname TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	profile_picture TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS posts (
	id UUID PRIMARY KEY,
	content TEXT NOT NULL,
	image TEXT,
	author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	hashtags TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS comments (
	id UUID PRIMARY KEY,
	content TEXT NOT NULL,
	author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS likes (
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, post_id)
);
CREATE TABLE IF NOT EXISTS bookmarks (
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, post_id)
);
CREATE TABLE IF NOT EXISTS reposts (
	id UUID PRIMARY KEY,
	content TEXT NOT NULL DEFAULT '',
	author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	original_post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author_id);
CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id);
CREATE INDEX IF NOT EXISTS idx_comments_author ON comments(author_id);
CREATE INDEX IF NOT EXISTS idx_likes_post ON likes(post_id);
CREATE INDEX IF NOT EXISTS idx_bookmarks_post ON bookmarks(post_id);
CREATE INDEX IF NOT EXISTS idx_reposts_post ON reposts(original_post_id);
`

func Connect(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	pool, err := pgxpool.New(context.Background(), dsn)

	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(context.Background(), schema); err != nil {
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return pool, nil
}
