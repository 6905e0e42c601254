package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

const minPasswordLength = 8

// A deliberately loose shape check: one @, a dot in the domain part.
// The mailbox's real existence is the signup confirmation's problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)

// Email is stored lowercased so the unique index on users.email is
// effectively case-insensitive.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password holds the plaintext only until it is bcrypt-hashed at
// registration; it is never persisted.
type Password struct {
	value string
}

func NewPassword(raw string) (Password, error) {
	if len(raw) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: raw}, nil
}

func (p Password) Value() string {
	return p.value
}
