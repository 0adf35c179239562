package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/domain"
)

// ErrDuplicate is returned by Create when a uniqueness constraint is
// violated, so callers never have to inspect driver error codes.
var ErrDuplicate = errors.New("duplicate row")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Comment, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PairRepository is the shared contract for the (user, post) join rows.
// Create returns ErrDuplicate instead of a second row; Delete reports
// whether a row actually existed.
type PairRepository interface {
	Create(ctx context.Context, userID, postID uuid.UUID) error
	Delete(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
	ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
}

type LikeRepository interface {
	PairRepository
}

type BookmarkRepository interface {
	PairRepository
}

type RepostRepository interface {
	Create(ctx context.Context, repost *domain.Repost) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repost, error)
	List(ctx context.Context) ([]domain.Repost, error)
	Update(ctx context.Context, repost *domain.Repost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
