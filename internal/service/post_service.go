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
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostAuthor = errors.New("only the post author can perform this action")
)

const MaxPostLength = 280

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

type CreatePostInput struct {
	Content  string
	Hashtags []string
	Image    *string
}

type UpdatePostInput struct {
	Content  *string
	Hashtags []string
}

func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	hashtags := input.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	now := time.Now()
	post := &domain.Post{
		ID:        uuid.New(),
		Content:   input.Content,
		Image:     input.Image,
		AuthorID:  authorID,
		Hashtags:  hashtags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	// Reload for the author join.
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (s *PostService) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return s.postRepo.CountByAuthor(ctx, authorID)
}

func (s *PostService) Hashtags(ctx context.Context, postID uuid.UUID) ([]string, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Hashtags, nil
}

func (s *PostService) Update(ctx context.Context, actorID, postID uuid.UUID, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != actorID {
		return nil, ErrNotPostAuthor
	}

	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Hashtags != nil {
		post.Hashtags = input.Hashtags
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, actorID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != actorID {
		return ErrNotPostAuthor
	}

	return s.postRepo.Delete(ctx, postID)
}
