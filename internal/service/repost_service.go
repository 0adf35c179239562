package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/domain"
	"github.com/whisprhq/whispr/internal/repository"
)

var (
	ErrRepostNotFound  = errors.New("repost not found")
	ErrNotRepostAuthor = errors.New("only the repost author can perform this action")
)

type RepostService struct {
	repostRepo repository.RepostRepository
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	notifier   Notifier
}

func NewRepostService(
	repostRepo repository.RepostRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *RepostService {
	return &RepostService{
		repostRepo: repostRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *RepostService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreateRepostInput struct {
	Content        string    `json:"content"`
	OriginalPostID uuid.UUID `json:"originalPostId"`
}

func (s *RepostService) Create(ctx context.Context, authorID uuid.UUID, input CreateRepostInput) (*domain.Repost, error) {
	original, err := s.postRepo.GetByID(ctx, input.OriginalPostID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrPostNotFound
	}

	now := time.Now()
	repost := &domain.Repost{
		ID:             uuid.New(),
		Content:        input.Content,
		AuthorID:       authorID,
		OriginalPostID: input.OriginalPostID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repostRepo.Create(ctx, repost); err != nil {
		return nil, fmt.Errorf("creating repost: %w", err)
	}

	fanOut(ctx, s.notifier, s.userRepo, domain.NotificationRepost, original, authorID, "reposted")

	return s.repostRepo.GetByID(ctx, repost.ID)
}

func (s *RepostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repost, error) {
	repost, err := s.repostRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if repost == nil {
		return nil, ErrRepostNotFound
	}

	// Attach the original post for reads; a deleted original cascades
	// the repost away, so it is always present here.
	original, err := s.postRepo.GetByID(ctx, repost.OriginalPostID)
	if err != nil {
		return nil, err
	}
	repost.OriginalPost = original

	return repost, nil
}

func (s *RepostService) List(ctx context.Context) ([]domain.Repost, error) {
	reposts, err := s.repostRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if reposts == nil {
		reposts = []domain.Repost{}
	}
	return reposts, nil
}

func (s *RepostService) Update(ctx context.Context, actorID, repostID uuid.UUID, content string) (*domain.Repost, error) {
	repost, err := s.repostRepo.GetByID(ctx, repostID)
	if err != nil {
		return nil, err
	}
	if repost == nil {
		return nil, ErrRepostNotFound
	}
	if repost.AuthorID != actorID {
		return nil, ErrNotRepostAuthor
	}

	repost.Content = content
	repost.UpdatedAt = time.Now()

	if err := s.repostRepo.Update(ctx, repost); err != nil {
		return nil, fmt.Errorf("updating repost: %w", err)
	}

	return repost, nil
}

func (s *RepostService) Delete(ctx context.Context, actorID, repostID uuid.UUID) error {
	repost, err := s.repostRepo.GetByID(ctx, repostID)
	if err != nil {
		return err
	}
	if repost == nil {
		return ErrRepostNotFound
	}
	if repost.AuthorID != actorID {
		return ErrNotRepostAuthor
	}

	return s.repostRepo.Delete(ctx, repostID)
}
