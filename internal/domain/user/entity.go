package user

import (
	"time"

	"restaurant-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

type Registration struct {
	Username string
	Email    string
	Password string
}

// HashFunc turns a validated plain password into its stored form.
type HashFunc func(plain string) (string, error)

// NewUser validates every field before hashing, so a rejected registration
// never pays for bcrypt.
func NewUser(r Registration, hash HashFunc, now time.Time) (*User, error) {
	fe := errs.NewFieldErrors()

	username, err := NewUsername(r.Username)
	fe.Add("username", err)
	email, err := NewEmail(r.Email)
	fe.Add("email", err)
	pw, err := NewPassword(r.Password, username.String())
	fe.Add("password", err)

	if err := fe.Err(); err != nil {
		return nil, err
	}

	hashed, err := hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: hashed,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, username Username, email Email, passwordHash string, lastLogin *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Username() Username    { return u.username }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
