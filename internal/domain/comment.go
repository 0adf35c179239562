package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"author_id"`
	PostID    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Joined fields
	AuthorUsername       string `json:"author_username,omitempty"`
	AuthorFirstname      string `json:"author_firstname,omitempty"`
	AuthorLastname       string `json:"author_lastname,omitempty"`
	AuthorProfilePicture string `json:"author_profile_picture,omitempty"`
}
