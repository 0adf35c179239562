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
	ErrAlreadyBookmarked = errors.New("post already bookmarked")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
)

type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	notifier     Notifier
}

func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		postRepo:     postRepo,
		userRepo:     userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *BookmarkService) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *BookmarkService) Add(ctx context.Context, actorID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := s.bookmarkRepo.Create(ctx, actorID, postID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyBookmarked
		}
		return fmt.Errorf("creating bookmark: %w", err)
	}

	fanOut(ctx, s.notifier, s.userRepo, domain.NotificationBookmark, post, actorID, "bookmarked")

	return nil
}

func (s *BookmarkService) Remove(ctx context.Context, actorID, postID uuid.UUID) error {
	deleted, err := s.bookmarkRepo.Delete(ctx, actorID, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookmarkNotFound
	}
	return nil
}

func (s *BookmarkService) Status(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	return s.bookmarkRepo.Exists(ctx, actorID, postID)
}

func (s *BookmarkService) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	return s.bookmarkRepo.CountByPost(ctx, postID)
}

func (s *BookmarkService) ListPosts(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	posts, err := s.bookmarkRepo.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}
