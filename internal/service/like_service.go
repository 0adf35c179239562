package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/domain"
	"github.com/whisprhq/whispr/internal/repository"
)

var (
	ErrAlreadyLiked = errors.New("post already liked")
	ErrLikeNotFound = errors.New("like not found")
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *LikeService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Like records a like for (actor, post). A second call for the same
// pair fails with ErrAlreadyLiked; the unique index guarantees a
// second row is never created even under a concurrent double-submit.
func (s *LikeService) Like(ctx context.Context, actorID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := s.likeRepo.Create(ctx, actorID, postID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyLiked
		}
		return fmt.Errorf("creating like: %w", err)
	}

	fanOut(ctx, s.notifier, s.userRepo, domain.NotificationLike, post, actorID, "liked")

	return nil
}

func (s *LikeService) Unlike(ctx context.Context, actorID, postID uuid.UUID) error {
	deleted, err := s.likeRepo.Delete(ctx, actorID, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLikeNotFound
	}
	return nil
}

func (s *LikeService) Status(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	return s.likeRepo.Exists(ctx, actorID, postID)
}

func (s *LikeService) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	return s.likeRepo.CountByPost(ctx, postID)
}

// ListPosts returns the posts the user has liked, newest like first.
func (s *LikeService) ListPosts(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	posts, err := s.likeRepo.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}
