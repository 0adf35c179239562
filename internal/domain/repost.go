package domain

import (
	"time"

	"github.com/google/uuid"
)

type Repost struct {
	ID             uuid.UUID `json:"id"`
	Content        string    `json:"content"`
	AuthorID       uuid.UUID `json:"author_id"`
	OriginalPostID uuid.UUID `json:"original_post_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	// Joined fields
	AuthorUsername string `json:"author_username,omitempty"`
	OriginalPost   *Post  `json:"original_post,omitempty"`
}
