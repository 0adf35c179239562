package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Firstname      string    `json:"firstname"`
	Lastname       string    `json:"lastname"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DisplayName is what notifications and author joins show: the full
// name when one is set, the username otherwise.
func (u *User) DisplayName() string {
	if u.Firstname == "" && u.Lastname == "" {
		return u.Username
	}
	if u.Lastname == "" {
		return u.Firstname
	}
	return u.Firstname + " " + u.Lastname
}
