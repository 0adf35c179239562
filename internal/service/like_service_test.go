package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/whisprhq/whispr/internal/domain"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedPost(t *testing.T, repo *fakePostRepo, author *domain.User, content string) *domain.Post {
	t.Helper()
	p := &domain.Post{
		ID:        uuid.New(),
		Content:   content,
		AuthorID:  author.ID,
		Hashtags:  []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestLikeNotifiesPostAuthor(t *testing.T) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	notifier := &recordingNotifier{}

	svc := NewLikeService(newFakePairRepo(postRepo), postRepo, userRepo)
	svc.SetNotifier(notifier)

	author := seedUser(t, userRepo, "author")
	actor := seedUser(t, userRepo, "actor")
	post := seedPost(t, postRepo, author, "hello #world")

	require.NoError(t, svc.Like(context.Background(), actor.ID, post.ID))

	require.Equal(t, 1, notifier.count())
	require.Equal(t, author.ID, notifier.toUser[0])

	n := notifier.sent[0]
	require.Equal(t, domain.NotificationLike, n.Type)
	require.Equal(t, post.ID, n.PostID)
	require.Equal(t, actor.ID, n.ActorID)
	require.Contains(t, n.Message, "liked your post")
}

func TestLikeOwnPostDoesNotNotify(t *testing.T) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	notifier := &recordingNotifier{}

	svc := NewLikeService(newFakePairRepo(postRepo), postRepo, userRepo)
	svc.SetNotifier(notifier)

	author := seedUser(t, userRepo, "author")
	post := seedPost(t, postRepo, author, "hello")

	require.NoError(t, svc.Like(context.Background(), author.ID, post.ID))
	require.Zero(t, notifier.count())
}

func TestLikeTwiceKeepsOneRow(t *testing.T) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	svc := NewLikeService(newFakePairRepo(postRepo), postRepo, userRepo)
	ctx := context.Background()

	author := seedUser(t, userRepo, "author")
	actor := seedUser(t, userRepo, "actor")
	post := seedPost(t, postRepo, author, "hello")

	require.NoError(t, svc.Like(ctx, actor.ID, post.ID))
	require.ErrorIs(t, svc.Like(ctx, actor.ID, post.ID), ErrAlreadyLiked)

	count, err := svc.Count(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestLikeMissingPost(t *testing.T) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	svc := NewLikeService(newFakePairRepo(postRepo), postRepo, userRepo)

	actor := seedUser(t, userRepo, "actor")

	err := svc.Like(context.Background(), actor.ID, uuid.New())
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestUnlikeAndStatus(t *testing.T) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	svc := NewLikeService(newFakePairRepo(postRepo), postRepo, userRepo)
	ctx := context.Background()

	author := seedUser(t, userRepo, "author")
	actor := seedUser(t, userRepo, "actor")
	post := seedPost(t, postRepo, author, "hello")

	require.NoError(t, svc.Like(ctx, actor.ID, post.ID))

	liked, err := svc.Status(ctx, actor.ID, post.ID)
	require.NoError(t, err)
	require.True(t, liked)

	require.NoError(t, svc.Unlike(ctx, actor.ID, post.ID))

	liked, err = svc.Status(ctx, actor.ID, post.ID)
	require.NoError(t, err)
	require.False(t, liked)

	require.ErrorIs(t, svc.Unlike(ctx, actor.ID, post.ID), ErrLikeNotFound)
}

func TestBookmarkConflictAndNotify(t *testing.T) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	notifier := &recordingNotifier{}

	svc := NewBookmarkService(newFakePairRepo(postRepo), postRepo, userRepo)
	svc.SetNotifier(notifier)
	ctx := context.Background()

	author := seedUser(t, userRepo, "author")
	actor := seedUser(t, userRepo, "actor")
	post := seedPost(t, postRepo, author, "hello")

	require.NoError(t, svc.Add(ctx, actor.ID, post.ID))
	require.ErrorIs(t, svc.Add(ctx, actor.ID, post.ID), ErrAlreadyBookmarked)

	count, err := svc.Count(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.Equal(t, 1, notifier.count())
	require.Equal(t, domain.NotificationBookmark, notifier.sent[0].Type)
}
