package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/domain"
	"github.com/whisprhq/whispr/internal/repository"
)

// In-memory repositories backing the service tests. They enforce the
// same uniqueness rules as the schema so conflict paths behave like
// the real thing.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u := u
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if id != user.ID && (strings.EqualFold(u.Email, user.Email) || u.Username == user.Username) {
			return repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]domain.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		p := p
		return &p, nil
	}
	return nil, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var posts []domain.Post
	for _, p := range r.posts {
		posts = append(posts, p)
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var posts []domain.Post
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (r *fakePostRepo) CountByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (r *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

func sortPostsNewestFirst(posts []domain.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

type pairKey struct {
	userID uuid.UUID
	postID uuid.UUID
}

type fakePairRepo struct {
	mu    sync.Mutex
	pairs map[pairKey]time.Time
	posts *fakePostRepo
}

func newFakePairRepo(posts *fakePostRepo) *fakePairRepo {
	return &fakePairRepo{pairs: make(map[pairKey]time.Time), posts: posts}
}

func (r *fakePairRepo) Create(_ context.Context, userID, postID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{userID, postID}
	if _, ok := r.pairs[key]; ok {
		return repository.ErrDuplicate
	}
	r.pairs[key] = time.Now()
	return nil
}

func (r *fakePairRepo) Delete(_ context.Context, userID, postID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{userID, postID}
	if _, ok := r.pairs[key]; !ok {
		return false, nil
	}
	delete(r.pairs, key)
	return true, nil
}

func (r *fakePairRepo) Exists(_ context.Context, userID, postID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pairs[pairKey{userID, postID}]
	return ok, nil
}

func (r *fakePairRepo) CountByPost(_ context.Context, postID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for key := range r.pairs {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (r *fakePairRepo) ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	r.mu.Lock()
	var ids []uuid.UUID
	for key := range r.pairs {
		if key.userID == userID {
			ids = append(ids, key.postID)
		}
	}
	r.mu.Unlock()

	var posts []domain.Post
	for _, id := range ids {
		p, err := r.posts.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uuid.UUID]domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]domain.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.comments[id]; ok {
		c := c
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCommentRepo) List(_ context.Context) ([]domain.Comment, error) {
	return r.filter(func(domain.Comment) bool { return true }), nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	return r.filter(func(c domain.Comment) bool { return c.PostID == postID }), nil
}

func (r *fakeCommentRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]domain.Comment, error) {
	return r.filter(func(c domain.Comment) bool { return c.AuthorID == authorID }), nil
}

func (r *fakeCommentRepo) CountByPost(_ context.Context, postID uuid.UUID) (int, error) {
	return len(r.filter(func(c domain.Comment) bool { return c.PostID == postID })), nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) filter(keep func(domain.Comment) bool) []domain.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	var comments []domain.Comment
	for _, c := range r.comments {
		if keep(c) {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments
}

type fakeRepostRepo struct {
	mu      sync.Mutex
	reposts map[uuid.UUID]domain.Repost
}

func newFakeRepostRepo() *fakeRepostRepo {
	return &fakeRepostRepo{reposts: make(map[uuid.UUID]domain.Repost)}
}

func (r *fakeRepostRepo) Create(_ context.Context, repost *domain.Repost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reposts[repost.ID] = *repost
	return nil
}

func (r *fakeRepostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Repost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rp, ok := r.reposts[id]; ok {
		rp := rp
		return &rp, nil
	}
	return nil, nil
}

func (r *fakeRepostRepo) List(_ context.Context) ([]domain.Repost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var reposts []domain.Repost
	for _, rp := range r.reposts {
		reposts = append(reposts, rp)
	}
	sort.Slice(reposts, func(i, j int) bool {
		return reposts[i].CreatedAt.After(reposts[j].CreatedAt)
	})
	return reposts, nil
}

func (r *fakeRepostRepo) Update(_ context.Context, repost *domain.Repost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reposts[repost.ID] = *repost
	return nil
}

func (r *fakeRepostRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reposts, id)
	return nil
}

// recordingNotifier captures fan-out calls for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	sent   []*domain.Notification
	toUser []uuid.UUID
}

func (n *recordingNotifier) Notify(userID uuid.UUID, notification *domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	n.toUser = append(n.toUser, userID)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}
