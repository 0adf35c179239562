package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/domain"
	"github.com/whisprhq/whispr/internal/repository"
)

// Notifier pushes real-time events to a user's connected sessions.
// Delivery is best-effort: no queue, no retry, no persistence.
type Notifier interface {
	Notify(userID uuid.UUID, n *domain.Notification)
}

// fanOut tells a post's author that someone interacted with their
// post. Self-notifications are suppressed; a missing notifier or a
// failed actor lookup just drops the event.
func fanOut(ctx context.Context, n Notifier, userRepo repository.UserRepository, kind string, post *domain.Post, actorID uuid.UUID, verb string) {
	if n == nil || post.AuthorID == actorID {
		return
	}

	actor, err := userRepo.GetByID(ctx, actorID)
	if err != nil || actor == nil {
		return
	}

	msg := fmt.Sprintf("%s %s your post", actor.DisplayName(), verb)
	n.Notify(post.AuthorID, domain.NewNotification(kind, post.ID, actor, msg))
}
