package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxUsernameLength = 150
	MinPasswordLength = 8
)

var (
	ErrUsernameBlank        = errors.New("this field may not be blank")
	ErrUsernameTooLong      = fmt.Errorf("ensure this field has no more than %d characters", MaxUsernameLength)
	ErrUsernameInvalid      = errors.New("enter a valid username; letters, digits and @/./+/-/_ only")
	ErrInvalidEmail         = errors.New("enter a valid email address")
	ErrPasswordTooShort     = fmt.Errorf("this password is too short; it must contain at least %d characters", MinPasswordLength)
	ErrPasswordNumeric      = errors.New("this password is entirely numeric")
	ErrPasswordLikeUsername = errors.New("the password is too similar to the username")
)

var (
	usernameRegex = regexp.MustCompile(`^[\w.@+\-]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitsRegex   = regexp.MustCompile(`^[0-9]+$`)
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrUsernameBlank
	}
	if utf8.RuneCountInString(s) > MaxUsernameLength {
		return Username{}, ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrUsernameInvalid
	}
	return Username{value: s}, nil
}

func (u Username) String() string { return u.value }

// Email is optional; the zero value means no address was given.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, nil
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

func (e Email) IsZero() bool { return e.value == "" }

type Password struct {
	value string
}

// NewPassword applies the strength rules; the plain value never leaves the
// registration flow.
func NewPassword(s string, username string) (Password, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooShort
	}
	if digitsRegex.MatchString(s) {
		return Password{}, ErrPasswordNumeric
	}
	if username != "" && strings.EqualFold(s, username) {
		return Password{}, ErrPasswordLikeUsername
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }
