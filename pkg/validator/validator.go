package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	maxPostLength    = 280
	maxCommentLength = 500
	maxBioLength     = 160
)

func ValidateRegister(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)
	validateUsername(username, errs)
	validatePassword(password, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateUsername(username string) ValidationErrors {
	errs := make(ValidationErrors)
	validateUsername(username, errs)
	return errs
}

func ValidatePassword(password string) ValidationErrors {
	errs := make(ValidationErrors)
	validatePassword(password, errs)
	return errs
}

func ValidatePost(content string) ValidationErrors {
	errs := make(ValidationErrors)

	content = strings.TrimSpace(content)
	if content == "" {
		errs.Add("content", "Content is required")
	} else if utf8.RuneCountInString(content) > maxPostLength {
		errs.Add("content", "Content must be at most 280 characters")
	}

	return errs
}

// ValidateRepost allows empty content: a repost without commentary is
// a plain share.
func ValidateRepost(content string) ValidationErrors {
	errs := make(ValidationErrors)

	if utf8.RuneCountInString(strings.TrimSpace(content)) > maxPostLength {
		errs.Add("content", "Content must be at most 280 characters")
	}

	return errs
}

func ValidateComment(content string) ValidationErrors {
	errs := make(ValidationErrors)

	content = strings.TrimSpace(content)
	if content == "" {
		errs.Add("content", "Content is required")
	} else if utf8.RuneCountInString(content) > maxCommentLength {
		errs.Add("content", "Content must be at most 500 characters")
	}

	return errs
}

func ValidateBio(bio string) ValidationErrors {
	errs := make(ValidationErrors)

	if utf8.RuneCountInString(bio) > maxBioLength {
		errs.Add("bio", "Bio must be at most 160 characters")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func validateUsername(username string, errs ValidationErrors) {
	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
	}
}
