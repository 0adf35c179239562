package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationLike     = "like"
	NotificationBookmark = "bookmark"
	NotificationComment  = "comment"
	NotificationRepost   = "repost"
)

// Notification is an in-flight real-time message. It is never stored:
// a recipient who is not connected when it fires never sees it.
type Notification struct {
	Type        string    `json:"type"`
	PostID      uuid.UUID `json:"post_id"`
	ActorID     uuid.UUID `json:"actor_id"`
	DisplayName string    `json:"display_name"`
	Message     string    `json:"message"`
	Timestamp   int64     `json:"ts"`
}

func NewNotification(kind string, postID uuid.UUID, actor *User, message string) *Notification {
	return &Notification{
		Type:        kind,
		PostID:      postID,
		ActorID:     actor.ID,
		DisplayName: actor.DisplayName(),
		Message:     message,
		Timestamp:   time.Now().Unix(),
	}
}
