package domain

import (
	"time"

	"github.com/google/uuid"
)

// Like is a unique (user, post) pair. Bookmark has the same shape but
// lives in its own table so the two lists stay independent.
type Like struct {
	UserID    uuid.UUID `json:"user_id"`
	PostID    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Bookmark struct {
	UserID    uuid.UUID `json:"user_id"`
	PostID    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
