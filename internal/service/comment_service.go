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
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("only the comment author can perform this action")
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *CommentService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreateCommentInput struct {
	Content string    `json:"content"`
	PostID  uuid.UUID `json:"postId"`
}

func (s *CommentService) Create(ctx context.Context, authorID uuid.UUID, input CreateCommentInput) (*domain.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	now := time.Now()
	comment := &domain.Comment{
		ID:        uuid.New(),
		Content:   input.Content,
		AuthorID:  authorID,
		PostID:    input.PostID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	fanOut(ctx, s.notifier, s.userRepo, domain.NotificationComment, post, authorID, "commented on")

	// Reload for the author join.
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context) ([]domain.Comment, error) {
	return emptyIfNil(s.commentRepo.List(ctx))
}

func (s *CommentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	return emptyIfNil(s.commentRepo.ListByPost(ctx, postID))
}

func (s *CommentService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Comment, error) {
	return emptyIfNil(s.commentRepo.ListByAuthor(ctx, authorID))
}

func (s *CommentService) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	return s.commentRepo.CountByPost(ctx, postID)
}

func (s *CommentService) Update(ctx context.Context, actorID, commentID uuid.UUID, content string) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.AuthorID != actorID {
		return nil, ErrNotCommentAuthor
	}

	comment.Content = content
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, actorID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != actorID {
		return ErrNotCommentAuthor
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func emptyIfNil(comments []domain.Comment, err error) ([]domain.Comment, error) {
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}
